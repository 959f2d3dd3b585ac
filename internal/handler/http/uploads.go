package http

import (
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/go-chi/chi/v5"
)

// serveUpload streams a stored thumbnail or avatar.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	content, err := h.services.UploadService.OpenUpload(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer content.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, content); err != nil {
		log.Err(err).Str("name", name).Msg("error streaming upload")
	}
}
