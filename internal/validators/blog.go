package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Field names accepted by [BlogValidator.Validate] for field-level scoping.
const (
	FieldName               = "name"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldPassword2          = "password2"
	FieldPasswordLength     = "password length"
	FieldPasswordsMatch     = "passwords match"
	FieldCurrentPassword    = "currentPassword"
	FieldNewPassword        = "newPassword"
	FieldConfirmNewPassword = "confirmNewPassword"
	FieldUserID             = "user id"
	FieldAvatar             = "avatar"
	FieldTitle              = "title"
	FieldCategory           = "category"
	FieldDescription        = "description"
	FieldThumbnail          = "thumbnail"
	FieldPostID             = "post id"
)

// Upload limits in bytes.
const (
	MaxThumbnailSize int64 = 2_000_000
	MaxAvatarSize    int64 = 500_000
)

const (
	minPasswordLength    = 6
	minDescriptionLength = 12
)

// BlogValidator checks request payloads of the blog API. Every model has a
// default field list; passing fields restricts the check to those.
type BlogValidator struct{}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.EditProfileRequest:
		return v.validateEditProfile(value, fields...)
	case *models.EditProfileRequest:
		return v.validateEditProfile(*value, fields...)

	case models.ChangeAvatarRequest:
		return v.validateChangeAvatar(value, fields...)
	case *models.ChangeAvatarRequest:
		return v.validateChangeAvatar(*value, fields...)

	case models.CreatePostRequest:
		return v.validateCreatePost(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePost(*value, fields...)

	case models.EditPostRequest:
		return v.validateEditPost(value, fields...)
	case *models.EditPostRequest:
		return v.validateEditPost(*value, fields...)

	case models.DeletePostRequest:
		return v.validateDeletePost(value, fields...)
	case *models.DeletePostRequest:
		return v.validateDeletePost(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldPassword2, FieldPasswordLength, FieldPasswordsMatch}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = required(f, req.Name)
		case FieldEmail:
			err = required(f, req.Email)
		case FieldPassword:
			err = required(f, req.Password)
		case FieldPassword2:
			err = required(f, req.Password2)
		case FieldPasswordLength:
			if utf8.RuneCountInString(strings.TrimSpace(req.Password)) < minPasswordLength {
				err = NewValidationError(FieldPassword, ErrPasswordTooShort)
			}
		case FieldPasswordsMatch:
			if req.Password != req.Password2 {
				err = NewValidationError(FieldPassword2, ErrPasswordsDoNotMatch)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = required(f, req.Email)
		case FieldPassword:
			err = required(f, req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateEditProfile checks presence only by default. The confirmation
// match is checked later by the service, after the current password.
func (v *BlogValidator) validateEditProfile(req models.EditProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldEmail, FieldCurrentPassword, FieldNewPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(f, req.UserID)
		case FieldName:
			err = required(f, req.Name)
		case FieldEmail:
			err = required(f, req.Email)
		case FieldCurrentPassword:
			err = required(f, req.CurrentPassword)
		case FieldNewPassword:
			err = required(f, req.NewPassword)
		case FieldConfirmNewPassword:
			if req.NewPassword != req.ConfirmNewPassword {
				err = NewValidationError(f, ErrPasswordsDoNotMatch)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateChangeAvatar(req models.ChangeAvatarRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAvatar}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(f, req.UserID)
		case FieldAvatar:
			err = CheckFile(f, req.Avatar, MaxAvatarSize)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateCreatePost(req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldCategory, FieldDescription, FieldThumbnail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(f, req.CreatorID)
		case FieldTitle:
			err = required(f, req.Title)
		case FieldCategory:
			err = category(req.Category)
		case FieldDescription:
			err = required(f, req.Description)
		case FieldThumbnail:
			err = CheckFile(f, req.Thumbnail, MaxThumbnailSize)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateEditPost leaves the thumbnail out of the default list: its size is
// checked by the service once ownership is known.
func (v *BlogValidator) validateEditPost(req models.EditPostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPostID, FieldTitle, FieldCategory, FieldDescription}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(f, req.CallerID)
		case FieldPostID:
			err = required(f, req.PostID)
		case FieldTitle:
			err = required(f, req.Title)
		case FieldCategory:
			err = category(req.Category)
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) < minDescriptionLength {
				err = NewValidationError(f, ErrDescriptionTooShort)
			}
		case FieldThumbnail:
			if req.Thumbnail != nil {
				err = CheckFile(f, req.Thumbnail, MaxThumbnailSize)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateDeletePost(req models.DeletePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPostID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(f, req.CallerID)
		case FieldPostID:
			err = required(f, req.PostID)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckFile fails when file is missing, empty or larger than limit bytes.
func CheckFile(field string, file *models.File, limit int64) error {
	if file == nil || file.Content == nil {
		return NewValidationError(field, ErrFileRequired)
	}
	if file.Size > limit {
		return NewValidationError(field, ErrFileTooBig)
	}
	return nil
}

// IsKnownCategory reports whether c is one of [models.PostCategories].
func IsKnownCategory(c string) bool {
	return slices.Contains(models.PostCategories, c)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, ErrRequired)
	}
	return nil
}

func category(c string) error {
	if err := required(FieldCategory, c); err != nil {
		return err
	}
	if !IsKnownCategory(c) {
		return NewValidationError(FieldCategory, ErrUnknownCategory)
	}
	return nil
}
