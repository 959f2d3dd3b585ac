// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the blog REST API.
//
// [BlogClient] decouples the terminal client from the wire protocol. The
// package ships a resty-based implementation ([NewHTTPBlogClient]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinels in errors.go
// so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server's {"message"} text is kept in the
// error string.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blog_client_mock.go -package=mock

// BlogClient defines communication with the blog server.
type BlogClient interface {
	// SetToken stores the bearer token attached to all authenticated
	// requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and returns the server's confirmation text.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates and stores the issued token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	GetUser(ctx context.Context, id string) (models.User, error)
	ListAuthors(ctx context.Context) ([]models.User, error)

	// ChangeAvatar uploads a new avatar for the token owner.
	ChangeAvatar(ctx context.Context, avatar models.File) (models.User, error)

	// EditProfile updates the token owner's name, email and password.
	EditProfile(ctx context.Context, req models.EditProfileRequest) (models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	ListPostsByCategory(ctx context.Context, category string) ([]models.Post, error)
	ListPostsByCreator(ctx context.Context, userID string) ([]models.Post, error)

	// CreatePost sends a multipart form; req.Thumbnail is required by the server.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// EditPost sends a multipart form when req.Thumbnail is set and JSON
	// otherwise.
	EditPost(ctx context.Context, req models.EditPostRequest) (models.Post, error)

	// DeletePost returns the server's confirmation text.
	DeletePost(ctx context.Context, id string) (string, error)

	// UploadURL returns the absolute URL of a stored thumbnail or avatar.
	UploadURL(name string) string

	// DownloadUpload fetches a stored thumbnail or avatar.
	DownloadUpload(ctx context.Context, name string) ([]byte, error)
}
