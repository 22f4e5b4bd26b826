package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, key)
	return &storage.UploadResult{
		Key:      key,
		Location: "https://psfa-assets.s3.amazonaws.com/" + key,
	}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://psfa-assets.s3.amazonaws.com/" + key
}

func (f *fakeUploader) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// multipartUpload собирает форму с файлом заданного размера и Content-Type.
func multipartUpload(t *testing.T, filename, contentType string, size int, folder string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatalf("failed to write form part: %v", err)
	}

	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			t.Fatalf("failed to write folder field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func TestUploadAcceptsAllowedImage(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body, contentType := multipartUpload(t, "logo.png", "image/png", 512, "sports")
	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if uploader.uploadCount() != 1 {
		t.Fatalf("uploads = %d, want 1", uploader.uploadCount())
	}
	if !strings.HasPrefix(uploader.uploads[0], "sports/") {
		t.Errorf("object key = %q, want it under the sports/ folder", uploader.uploads[0])
	}
	if !strings.HasSuffix(uploader.uploads[0], "-logo.png") {
		t.Errorf("object key = %q, want it to keep the sanitized filename", uploader.uploads[0])
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["url"] == "" || resp["key"] == "" {
		t.Errorf("response %v must carry url and key", resp)
	}
}

func TestUploadDefaultsFolder(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body, contentType := multipartUpload(t, "photo.jpg", "image/jpeg", 512, "")
	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if !strings.HasPrefix(uploader.uploads[0], defaultUploadFolder+"/") {
		t.Errorf("object key = %q, want it under %q", uploader.uploads[0], defaultUploadFolder)
	}
}

func TestUploadRejectsDisallowedContentType(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body, contentType := multipartUpload(t, "resume.pdf", "application/pdf", 512, "")
	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if uploader.uploadCount() != 0 {
		t.Error("storage must not be touched for a disallowed content type")
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body, contentType := multipartUpload(t, "huge.png", "image/png", maxUploadSize+1, "")
	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if uploader.uploadCount() != 0 {
		t.Error("storage must not be touched for an oversize file")
	}
}

func TestUploadRejectsInvalidFolderName(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body, contentType := multipartUpload(t, "logo.png", "image/png", 512, "../etc")
	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if uploader.uploadCount() != 0 {
		t.Error("storage must not be touched for an invalid folder name")
	}
}

func TestUploadRequiresFileField(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewUploadHandler(uploader)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("folder", "sports"); err != nil {
		t.Fatalf("failed to write folder field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/panel/api/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if uploader.uploadCount() != 0 {
		t.Error("storage must not be touched without a file field")
	}
}
