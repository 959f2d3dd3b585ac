package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// ── auth ──

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("register request validation: %w", err)
	}
	return v.AuthService.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("login request validation: %w", err)
	}
	return v.AuthService.Login(ctx, req)
}

// ── posts ──

type PostValidationService struct {
	PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{validator: validator}
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.PostService = inner
	return v
}

func (v *PostValidationService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("create post request validation: %w", err)
	}
	return v.PostService.CreatePost(ctx, req)
}

func (v *PostValidationService) EditPost(ctx context.Context, req models.EditPostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("edit post request validation: %w", err)
	}
	return v.PostService.EditPost(ctx, req)
}

func (v *PostValidationService) DeletePost(ctx context.Context, req models.DeletePostRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("delete post request validation: %w", err)
	}
	return v.PostService.DeletePost(ctx, req)
}

// ── users ──

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

func (v *UserValidationService) ChangeAvatar(ctx context.Context, req models.ChangeAvatarRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("change avatar request validation: %w", err)
	}
	return v.UserService.ChangeAvatar(ctx, req)
}

func (v *UserValidationService) EditProfile(ctx context.Context, req models.EditProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("edit profile request validation: %w", err)
	}
	return v.UserService.EditProfile(ctx, req)
}
