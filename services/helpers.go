package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// 10–15 цифр, опциональный ведущий плюс.
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// normalizeEmail приводит адрес к каноничной форме для хранения и поиска.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// deleteAssetByURL derives the object key from a stored public URL and asks
// the uploader to remove it. A URL the key cannot be derived from is a
// data-integrity error (ErrInvalidAssetReference), not a missing resource.
func deleteAssetByURL(ctx context.Context, uploader storage.FileUploader, bucket, imageURL string) error {
	key, err := storage.KeyFromURL(imageURL, bucket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetReference, err)
	}
	if err := uploader.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w (key: %s): %v", ErrAssetDeleteFailed, key, err)
	}
	return nil
}
