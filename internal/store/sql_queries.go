package store

import (
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/Masterminds/squirrel"
)

// Writes avoid RETURNING: sqlite reports no column types for it, so
// timestamps would not scan. Updated rows are read back with a SELECT.
var (
	userColumns = []string{"id", "name", "email", "password_hash", "avatar", "posts", "created_at", "updated_at"}
	postColumns = []string{"id", "title", "category", "description", "thumbnail", "creator", "created_at", "updated_at"}
)

// newStatementBuilder picks the placeholder format of the driver:
// $1 for postgres, ? for sqlite.
func newStatementBuilder(driverName string) squirrel.StatementBuilderType {
	if driverName == driverPgx {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// ── users ──

func buildInsertUserQuery(sb squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar, user.Posts, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

// buildGetUserQuery selects a single user where column equals value.
func buildGetUserQuery(sb squirrel.StatementBuilderType, column, value string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{column: value}).
		ToSql()
}

func buildListUsersQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildUpdateAvatarQuery(sb squirrel.StatementBuilderType, id, avatar string, now time.Time) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("avatar", avatar).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildUpdateProfileQuery(sb squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
}

// buildAdjustPostCountQuery increments in place so concurrent adjustments
// never overwrite each other.
func buildAdjustPostCountQuery(sb squirrel.StatementBuilderType, id string, delta int) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("posts", squirrel.Expr("posts + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// ── posts ──

func buildInsertPostQuery(sb squirrel.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Category, post.Description, post.Thumbnail, post.Creator, post.CreatedAt, post.UpdatedAt).
		ToSql()
}

func buildGetPostQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildListPostsQuery applies the non-empty filter fields and sorts newest first.
func buildListPostsQuery(sb squirrel.StatementBuilderType, filter models.PostFilter) (string, []any, error) {
	query := sb.Select(postColumns...).From(models.Post{}.TableName())

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.CreatorID != "" {
		query = query.Where(squirrel.Eq{"creator": filter.CreatorID})
	}

	switch filter.OrderBy {
	case models.OrderByCreated:
		query = query.OrderBy("created_at DESC", "id DESC")
	default:
		query = query.OrderBy("updated_at DESC", "id DESC")
	}

	return query.ToSql()
}

// buildUpdatePostQuery only touches a row owned by update.CreatorID.
func buildUpdatePostQuery(sb squirrel.StatementBuilderType, update models.PostUpdate, now time.Time) (string, []any, error) {
	query := sb.Update(models.Post{}.TableName()).
		Set("title", update.Title).
		Set("category", update.Category).
		Set("description", update.Description)

	if update.Thumbnail != nil {
		query = query.Set("thumbnail", *update.Thumbnail)
	}

	return query.
		Set("updated_at", now).
		Where(squirrel.Eq{"id": update.ID, "creator": update.CreatorID}).
		ToSql()
}

func buildDeletePostQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Delete(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
