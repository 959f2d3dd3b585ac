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

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewPostRepository(db *DB, ids IDGenerator, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		ids:    ids,
		now:    utcNow,
		logger: logger,
	}
}

// CreatePost inserts post with a fresh ID and both timestamps set to now.
// An unknown creator yields [ErrUserNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	now := p.now()
	post.ID = p.ids.Generate()
	post.CreatedAt = now
	post.UpdatedAt = now

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Str("creator", post.Creator).Msg("error inserting post")
		return models.Post{}, p.writeError(err)
	}

	log.Info().Str("func", "*postRepository.CreatePost").Str("post_id", post.ID).Msg("post created")
	return post, nil
}

func (p *postRepository) GetPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Str("post_id", id).Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// ListPosts returns the posts matching filter, newest first by the column
// filter.OrderBy selects. An empty result is an empty slice.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(p.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Str("category", filter.Category).
			Str("creator", filter.CreatorID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost applies update to the row matching both update.ID and
// update.CreatorID and returns the stored result.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder, update, p.now())
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Str("post_id", update.ID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*postRepository.UpdatePost").
			Str("post_id", update.ID).
			Str("creator", update.CreatorID).
			Msg("no post matched id and creator")
		return models.Post{}, ErrPostNotUpdated
	}

	return p.GetPostByID(ctx, update.ID)
}

func (p *postRepository) DeletePost(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Str("post_id", id).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	log.Info().Str("func", "*postRepository.DeletePost").Str("post_id", id).Msg("post deleted")
	return nil
}

func (p *postRepository) writeError(err error) error {
	if p.classify(err) == ForeignKeyViolation {
		return ErrUserNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Description, &p.Thumbnail, &p.Creator, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
