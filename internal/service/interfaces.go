package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-blog/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	ListPostsByCategory(ctx context.Context, category string) ([]models.Post, error)
	ListPostsByCreator(ctx context.Context, userID string) ([]models.Post, error)
	EditPost(ctx context.Context, req models.EditPostRequest) (models.Post, error)
	// DeletePost returns a confirmation message for the client.
	DeletePost(ctx context.Context, req models.DeletePostRequest) (string, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ChangeAvatar(ctx context.Context, req models.ChangeAvatarRequest) (models.User, error)
	EditProfile(ctx context.Context, req models.EditProfileRequest) (models.User, error)
	ListAuthors(ctx context.Context) ([]models.User, error)
}

// UploadService serves stored thumbnails and avatars by file name.
type UploadService interface {
	OpenUpload(ctx context.Context, name string) (io.ReadCloser, error)
}

// AuthServiceWrapper, PostServiceWrapper and UserServiceWrapper define
// middleware composition for services. Implementations wrap an existing
// service to add behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
