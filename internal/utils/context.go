// Package utils provides helpers shared across the application: request
// context keys, JSON responses, JWT handling, password hashing, upload
// file naming and HTTP client construction.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the context key for the authenticated [models.Caller].
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext returns the caller stored by the auth middleware.
// ok is false when the request was not authenticated.
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}
