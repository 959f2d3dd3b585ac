package models

import "time"

// User represents a blog author account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier assigned by the store on insert.
	ID string `json:"id"`

	// Name is the display name shown next to authored posts.
	Name string `json:"name"`

	// Email is the unique login identifier, always stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Avatar is the file name of the uploaded avatar image, empty when unset.
	Avatar string `json:"avatar"`

	// Posts is the number of live posts created by this user.
	// It is maintained incrementally by the post service.
	Posts int `json:"posts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

// EditProfileRequest is the body of PATCH /api/users/edit-user.
// UserID is filled from the authenticated caller, never from the body.
type EditProfileRequest struct {
	UserID             string `json:"-"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// ChangeAvatarRequest carries the uploaded avatar of the authenticated caller.
type ChangeAvatarRequest struct {
	UserID string
	Avatar *File
}
