package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-blog/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart limits the body to maxUploadSize and parses the form.
// Callers must call r.MultipartForm.RemoveAll once done.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	return nil
}

// formFile returns the named upload or nil when the part is absent.
// The returned closer is never nil.
func formFile(r *http.Request, field string) (*models.File, func(), error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	return fileFromPart(file, header), func() { file.Close() }, nil
}

func fileFromPart(file multipart.File, header *multipart.FileHeader) *models.File {
	return &models.File{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	}
}

func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll()
	}
}
