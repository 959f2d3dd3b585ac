package adapter

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by authenticated calls made before Login.
	ErrNoToken = errors.New("no bearer token, log in first")
)
