// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is present
	// but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when a multipart body is malformed
	// or larger than the configured upload limit.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrInvalidGzipBody is returned when a gzip-encoded request body cannot
	// be decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	// ErrRouteNotFound is written for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")
)
