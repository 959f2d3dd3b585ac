package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error keeps field text",
			err:         fmt.Errorf("create post: %w", validators.NewValidationError(validators.FieldTitle, validators.ErrRequired)),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "title is required",
		},
		{
			name:        "invalid JSON",
			err:         fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: ErrInvalidJSON.Error(),
		},
		{
			name:        "invalid credentials",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "invalid credentials",
		},
		{
			name:        "expired token",
			err:         fmt.Errorf("%w: exp", service.ErrTokenIsExpiredOrInvalid),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrTokenIsExpiredOrInvalid.Error(),
		},
		{
			name:        "missing header",
			err:         ErrEmptyAuthorizationHeader,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:        "not owner",
			err:         service.ErrNotPostOwner,
			wantStatus:  http.StatusForbidden,
			wantMessage: service.ErrNotPostOwner.Error(),
		},
		{
			name:        "user not found",
			err:         fmt.Errorf("%w: id u-9", service.ErrUserNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: service.ErrUserNotFound.Error(),
		},
		{
			name:        "post not updated",
			err:         service.ErrPostNotUpdated,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: service.ErrPostNotUpdated.Error(),
		},
		{
			name:        "unknown error hides details",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := resolveError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(rec, req, service.ErrPostNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"post not found"}`, rec.Body.String())
}
