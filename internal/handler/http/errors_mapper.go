package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is checked in order; the first match wins.
var errorStatusTable = []errorStatus{
	{ErrInvalidJSON, http.StatusUnprocessableEntity},
	{ErrInvalidMultipartForm, http.StatusUnprocessableEntity},
	{ErrInvalidGzipBody, http.StatusUnprocessableEntity},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},

	{service.ErrInvalidCredentials, http.StatusUnprocessableEntity},
	{service.ErrInvalidCurrentPassword, http.StatusUnprocessableEntity},
	{service.ErrEmailAlreadyExists, http.StatusUnprocessableEntity},

	{service.ErrNotPostOwner, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrUploadNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},

	{service.ErrPostNotUpdated, http.StatusInternalServerError},
}

// resolveError returns the status code and client-facing message for err.
// Unknown errors become a generic 500 so internals never leak.
func resolveError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Error()
	}

	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.target.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the {"message"} body with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := resolveError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
