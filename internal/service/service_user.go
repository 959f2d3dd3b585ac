package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	userRepository store.UserRepository
	files          store.FileStorage
	ids            store.IDGenerator
	hashCost       int
	logger         *logger.Logger
}

func NewUserService(storages *store.Storages, ids store.IDGenerator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: storages.Users,
		files:          storages.Files,
		ids:            ids,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := u.userRepository.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("user_id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ChangeAvatar replaces the caller's avatar. The previous file is removed
// before the new one is stored.
func (u *userService) ChangeAvatar(ctx context.Context, req models.ChangeAvatarRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.GetUser(ctx, req.UserID)
	if err != nil {
		return models.User{}, err
	}

	if err = removeUpload(ctx, u.files, user.Avatar); err != nil {
		return models.User{}, err
	}

	avatar, err := saveUpload(ctx, u.files, u.ids, req.Avatar)
	if err != nil {
		return models.User{}, err
	}

	updated, err := u.userRepository.UpdateAvatar(ctx, user.ID, avatar)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangeAvatar").Str("user_id", user.ID).Msg("avatar update failed")
		return models.User{}, fmt.Errorf("avatar update failed: %w", err)
	}

	return updated, nil
}

// EditProfile changes name, email and password of the caller.
//
// Checks run in a fixed order: email ownership, current password, then the
// new password confirmation.
func (u *userService) EditProfile(ctx context.Context, req models.EditProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	user, err := u.GetUser(ctx, req.UserID)
	if err != nil {
		return models.User{}, err
	}

	owner, err := u.userRepository.GetUserByEmail(ctx, email)
	switch {
	case err == nil && owner.ID != user.ID:
		log.Warn().Str("func", "*userService.EditProfile").Str("user_id", user.ID).Msg("email belongs to another user")
		return models.User{}, ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*userService.EditProfile").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		log.Warn().Str("func", "*userService.EditProfile").Str("user_id", user.ID).Msg("wrong current password")
		return models.User{}, ErrInvalidCurrentPassword
	}

	if req.NewPassword != req.ConfirmNewPassword {
		return models.User{}, validators.NewValidationError(validators.FieldConfirmNewPassword, validators.ErrPasswordsDoNotMatch)
	}

	hash, err := utils.HashPassword(req.NewPassword, u.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.EditProfile").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.PasswordHash = hash

	updated, err := u.userRepository.UpdateProfile(ctx, user)
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userService.EditProfile").Str("user_id", user.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().Str("func", "*userService.EditProfile").Str("user_id", user.ID).Msg("profile updated")
	return updated, nil
}

// ListAuthors returns every registered user, oldest first.
func (u *userService) ListAuthors(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListAuthors").Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
