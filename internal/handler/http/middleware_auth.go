package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and, on success, stores the caller
// identity in the request context with [utils.WithCaller].
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, malformed, or carries an invalid or expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		caller := token.Caller()
		log.Debug().Str("caller_id", caller.ID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(ctx, caller)))
	})
}

// callerFromRequest returns the identity set by auth. Handlers behind auth
// always have one; the error covers routes wired without the middleware.
func callerFromRequest(r *http.Request) (models.Caller, error) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok || caller.ID == "" {
		return models.Caller{}, service.ErrUnauthenticated
	}
	return caller, nil
}
