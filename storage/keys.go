package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidObjectReference означает, что из сохранённого URL невозможно
// вывести ключ объекта. Это ошибка целостности данных, а не "не найдено".
var ErrInvalidObjectReference = errors.New("cannot derive object key from stored URL")

// KeyFromURL derives the object-store key from a public object URL.
//
// Two host shapes are recognized:
//   - virtual-hosted style, the host contains the bucket name
//     (my-bucket.s3.amazonaws.com/sports/foo.jpg -> sports/foo.jpg);
//   - path-style, the host starts with the storage-service prefix and the
//     bucket is the first path segment
//     (s3.us-east-1.amazonaws.com/my-bucket/sports/foo.jpg -> sports/foo.jpg).
//
// Any other host shape fails with ErrInvalidObjectReference. Callers rely on
// the derivation being exact: a wrong key would delete a foreign object or
// silently delete nothing.
func KeyFromURL(rawURL, bucket string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: empty URL", ErrInvalidObjectReference)
	}
	if bucket == "" {
		return "", fmt.Errorf("%w: bucket name is not configured", ErrInvalidObjectReference)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidObjectReference, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: URL %q has no host", ErrInvalidObjectReference, rawURL)
	}

	path := strings.TrimPrefix(parsed.Path, "/")

	switch {
	case strings.Contains(parsed.Host, bucket):
		if path == "" {
			return "", fmt.Errorf("%w: URL %q has empty object path", ErrInvalidObjectReference, rawURL)
		}
		return path, nil

	case strings.HasPrefix(parsed.Host, "s3.") || strings.HasPrefix(parsed.Host, "s3-"):
		// Path-style: первый сегмент пути — имя бакета.
		segments := strings.SplitN(path, "/", 2)
		if len(segments) < 2 || segments[1] == "" {
			return "", fmt.Errorf("%w: URL %q has no key after bucket segment", ErrInvalidObjectReference, rawURL)
		}
		return segments[1], nil

	default:
		return "", fmt.Errorf("%w: unrecognized host %q", ErrInvalidObjectReference, parsed.Host)
	}
}
