package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticIDs string

func (s staticIDs) Generate() string { return string(s) }

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, driverPgx, NewPostgresErrorClassifier(), l),
		ids:    staticIDs("u-1"),
		now:    func() time.Time { return fixedNow },
		logger: l,
	}
	return repo, mock, db
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

// ── CreateUser ──

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", Posts: 7}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u-1", "Ann", "ann@example.com", "hash", "", 0, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, "u-1", created.ID)
	assert.Zero(t, created.Posts, "counter always starts at zero")
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, fixedNow, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── GetUserByID / GetUserByEmail ──

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ann@example.com").
		WillReturnRows(userRows().AddRow("u-1", "Ann", "ann@example.com", "hash", "", 2, fixedNow, fixedNow))

	found, err := repo.GetUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)

	assert.Equal(t, "u-1", found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, 2, found.Posts)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(userRows())

	_, err := repo.GetUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetUserByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1")) // wrong shape → scan error

	_, err := repo.GetUserByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── ListUsers ──

func TestListUsers(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at ASC")).
		WillReturnRows(userRows().
			AddRow("u-1", "Ann", "ann@example.com", "h1", "", 0, fixedNow, fixedNow).
			AddRow("u-2", "Bob", "bob@example.com", "h2", "bob.png", 3, fixedNow, fixedNow))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob.png", users[1].Avatar)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(userRows())

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_RowError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(userRows().
			AddRow("u-1", "Ann", "a", "h", "", 0, fixedNow, fixedNow).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── UpdateAvatar / UpdateProfile ──

func TestUpdateAvatar_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET avatar = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("me.png", fixedNow, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT").
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "Ann", "a", "h", "me.png", 0, fixedNow, fixedNow))

	updated, err := repo.UpdateAvatar(context.Background(), "u-1", "me.png")
	require.NoError(t, err)
	assert.Equal(t, "me.png", updated.Avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvatar_NoUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateAvatar(context.Background(), "ghost", "me.png")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateProfile(context.Background(), models.User{ID: "u-1", Email: "taken@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("SET name = $1, email = $2, password_hash = $3, updated_at = $4 WHERE id = $5")).
		WithArgs("Ann B", "annb@example.com", "new-hash", fixedNow, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT").
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "Ann B", "annb@example.com", "new-hash", "", 1, fixedNow, fixedNow))

	updated, err := repo.UpdateProfile(context.Background(), models.User{ID: "u-1", Name: "Ann B", Email: "annb@example.com", PasswordHash: "new-hash"})
	require.NoError(t, err)
	assert.Equal(t, "Ann B", updated.Name)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}

// ── AdjustPostCount ──

func TestAdjustPostCount(t *testing.T) {
	tests := []struct {
		name     string
		delta    int
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "increment", delta: 1, affected: 1},
		{name: "decrement", delta: -1, affected: 1},
		{name: "unknown user", delta: 1, affected: 0, wantErr: ErrUserNotFound},
		{name: "driver error", delta: 1, execErr: errors.New("conn reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET posts = posts + $1 WHERE id = $2")).
				WithArgs(tt.delta, "u-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.AdjustPostCount(context.Background(), "u-1", tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
