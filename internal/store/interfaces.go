package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned ID and
	// timestamps. A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	// GetUserByEmail expects an already lower-cased email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error)
	// UpdateProfile overwrites name, email and password hash.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	// AdjustPostCount adds delta to the user's post counter in one statement.
	AdjustPostCount(ctx context.Context, id string, delta int) error
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPostByID(ctx context.Context, id string) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	// UpdatePost returns ErrPostNotUpdated when no row matches both the
	// post ID and the creator.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// FileStorage keeps uploaded thumbnails and avatars by file name.
type FileStorage interface {
	Save(ctx context.Context, name string, content io.Reader, size int64) error
	// Open returns ErrFileNotFound when name does not exist.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Remove returns ErrFileNotFound when name does not exist.
	Remove(ctx context.Context, name string) error
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
