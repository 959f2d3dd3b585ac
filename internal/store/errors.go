package store

import "errors"

// Domain errors. Callers match them with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when an insert or update hits the
	// unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrUserNotFound = errors.New("user was not found")
	ErrPostNotFound = errors.New("post was not found")

	// ErrPostNotUpdated is returned when an update matched no row, either
	// because the post is gone or because the creator does not match.
	ErrPostNotUpdated = errors.New("post was not updated")

	// ErrFileNotFound is returned by FileStorage for a name that does not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidFileName is returned for names that would escape the storage root.
	ErrInvalidFileName = errors.New("invalid file name")

	ErrUnknownDriver      = errors.New("unknown database driver")
	ErrUnknownFileBackend = errors.New("unknown file storage backend")
)

// Low-level database errors, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
