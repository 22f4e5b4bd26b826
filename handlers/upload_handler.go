package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

const (
	// Пределы совпадают с клиентской проверкой перед загрузкой; серверная
	// проверка авторитетна.
	maxUploadSize = 1 << 20 // 1 MiB

	defaultUploadFolder = "uploads"
)

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

var folderNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type UploadHandler struct {
	uploader storage.FileUploader
}

func NewUploadHandler(uploader storage.FileUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload принимает multipart-форму с полем file и опциональным folder,
// отклоняет слишком большие файлы и недопустимые MIME-типы до обращения к
// хранилищу и возвращает публичный URL загруженного объекта.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+4096) // запас на поля формы

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, errors.New("file field is required"))
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		badRequestResponse(w, r, fmt.Errorf("file must not be larger than %d bytes", maxUploadSize))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[contentType]; !ok {
		badRequestResponse(w, r, fmt.Errorf("content type %q is not allowed", contentType))
		return
	}

	folder := r.FormValue("folder")
	if folder == "" {
		folder = defaultUploadFolder
	}
	if !folderNameRegex.MatchString(folder) {
		badRequestResponse(w, r, fmt.Errorf("invalid folder name %q", folder))
		return
	}

	key, err := buildObjectKey(folder, header.Filename)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	result, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{"url": result.Location, "key": result.Key}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// buildObjectKey составляет ключ вида folder/<hex>-<имя файла>, отбрасывая
// из имени всё, кроме безопасных символов.
func buildObjectKey(folder, filename string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate object key: %w", err)
	}

	base := path.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "file"
	}

	return folder + "/" + hex.EncodeToString(randomBytes) + "-" + base, nil
}
