package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with any dialect supported by [DB].
type userRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository]. ids assigns the primary
// key of every new user.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		now:    utcNow,
		logger: logger,
	}
}

// CreateUser inserts a user with a fresh ID, zero posts and both timestamps
// set to now.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.ID = r.ids.Generate()
	user.Posts = 0
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.writeError(err)
	}

	log.Info().Str("func", "*userRepository.CreateUser").Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, "id", id, "*userRepository.GetUserByID")
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "email", email, "*userRepository.GetUserByEmail")
}

func (r *userRepository) getUser(ctx context.Context, column, value, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Str(column, value).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every user, oldest account first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAvatarQuery(r.db.builder, id, avatar, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAvatar").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execUpdate(ctx, query, args, "*userRepository.UpdateAvatar"); err != nil {
		return models.User{}, err
	}

	return r.GetUserByID(ctx, id)
}

// UpdateProfile overwrites name, email and password hash of user.ID.
// A taken email yields [ErrEmailAlreadyExists].
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.now()
	query, args, err := buildUpdateProfileQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execUpdate(ctx, query, args, "*userRepository.UpdateProfile"); err != nil {
		return models.User{}, err
	}

	return r.GetUserByID(ctx, user.ID)
}

// execUpdate runs an UPDATE on a single user row; no match is [ErrUserNotFound].
func (r *userRepository) execUpdate(ctx context.Context, query string, args []any, funcName string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return r.writeError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Msg("no user was updated")
		return ErrUserNotFound
	}

	return nil
}

// AdjustPostCount runs posts = posts + delta as a single statement.
// It is not tied to the post insert or delete that motivates it.
func (r *userRepository) AdjustPostCount(ctx context.Context, id string, delta int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAdjustPostCountQuery(r.db.builder, id, delta)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AdjustPostCount").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AdjustPostCount").Str("user_id", id).Msg("failed to adjust post counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.AdjustPostCount").Str("user_id", id).Msg("user not found")
		return ErrUserNotFound
	}

	log.Debug().Str("func", "*userRepository.AdjustPostCount").Str("user_id", id).Int("delta", delta).Msg("post counter adjusted")
	return nil
}

// writeError maps a failed write to a domain error where one exists.
func (r *userRepository) writeError(err error) error {
	if r.db.classify(err) == UniqueViolation {
		return ErrEmailAlreadyExists
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar, &u.Posts, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func utcNow() time.Time {
	// postgres keeps microseconds
	return time.Now().UTC().Truncate(time.Microsecond)
}
