package service

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidCurrentPassword = errors.New("invalid current password")
	ErrEmailAlreadyExists     = errors.New("email already exists")

	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrUploadNotFound = errors.New("file not found")

	// ErrNotPostOwner is returned when the caller tries to delete a post
	// created by someone else.
	ErrNotPostOwner = errors.New("only the creator can modify this post")

	// ErrPostNotUpdated is returned when an edit changed no row.
	ErrPostNotUpdated = errors.New("could not update the post")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
