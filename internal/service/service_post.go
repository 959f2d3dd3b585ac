package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// postService implements PostService.
//
// Multi-step operations (file, row, author counter) are not transactional:
// a failure part way through leaves the earlier steps applied.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	files          store.FileStorage
	ids            store.IDGenerator
	logger         *logger.Logger
}

func NewPostService(storages *store.Storages, ids store.IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: storages.Posts,
		userRepository: storages.Users,
		files:          storages.Files,
		ids:            ids,
		logger:         logger,
	}
}

// CreatePost stores the thumbnail, inserts the post and bumps the author's
// post counter, in that order.
func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	thumbnail, err := saveUpload(ctx, p.files, p.ids, req.Thumbnail)
	if err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   thumbnail,
		Creator:     req.CreatorID,
	})
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Post{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	if err = p.userRepository.AdjustPostCount(ctx, req.CreatorID, 1); err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Str("post_id", post.ID).Msg("post counter increment failed")
		return models.Post{}, fmt.Errorf("post counter increment failed: %w", err)
	}

	log.Info().Str("func", "*postService.CreatePost").Str("post_id", post.ID).Msg("post created")
	return post, nil
}

// ListPosts returns every post, most recently updated first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.listPosts(ctx, models.PostFilter{OrderBy: models.OrderByUpdated})
}

func (p *postService) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, err := p.postRepository.GetPostByID(ctx, id)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.GetPost").Str("post_id", id).Msg("post lookup failed")
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

// ListPostsByCategory returns posts of exactly category, newest first.
func (p *postService) ListPostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	return p.listPosts(ctx, models.PostFilter{Category: category, OrderBy: models.OrderByCreated})
}

// ListPostsByCreator returns posts authored by userID, newest first.
func (p *postService) ListPostsByCreator(ctx context.Context, userID string) ([]models.Post, error) {
	return p.listPosts(ctx, models.PostFilter{CreatorID: userID, OrderBy: models.OrderByCreated})
}

func (p *postService) listPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.listPosts").Any("filter", filter).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}

// EditPost updates the text fields of a post the caller created. With a new
// thumbnail the old file is replaced first.
//
// A caller who does not own the post gets ErrPostNotUpdated, never a partial
// update.
func (p *postService) EditPost(ctx context.Context, req models.EditPostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	update := models.PostUpdate{
		ID:          req.PostID,
		CreatorID:   req.CallerID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	}

	if req.Thumbnail != nil {
		post, err := p.GetPost(ctx, req.PostID)
		if err != nil {
			return models.Post{}, err
		}

		caller := models.Caller{ID: req.CallerID}
		if !caller.IsOwnerOf(post) {
			log.Warn().
				Str("func", "*postService.EditPost").
				Str("post_id", post.ID).
				Str("caller", req.CallerID).
				Msg("caller is not the creator, update skipped")
			return models.Post{}, ErrPostNotUpdated
		}

		if err = validators.CheckFile(validators.FieldThumbnail, req.Thumbnail, validators.MaxThumbnailSize); err != nil {
			return models.Post{}, err
		}

		if err = removeUpload(ctx, p.files, post.Thumbnail); err != nil {
			return models.Post{}, err
		}

		thumbnail, err := saveUpload(ctx, p.files, p.ids, req.Thumbnail)
		if err != nil {
			return models.Post{}, err
		}
		update.Thumbnail = &thumbnail
	}

	post, err := p.postRepository.UpdatePost(ctx, update)
	if errors.Is(err, store.ErrPostNotUpdated) {
		return models.Post{}, ErrPostNotUpdated
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.EditPost").Str("post_id", req.PostID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrPostNotUpdated, err)
	}

	return post, nil
}

// DeletePost removes the thumbnail, the row and one count from the author,
// in that order. Only the creator may delete.
func (p *postService) DeletePost(ctx context.Context, req models.DeletePostRequest) (string, error) {
	log := logger.FromContext(ctx)

	post, err := p.GetPost(ctx, req.PostID)
	if err != nil {
		return "", err
	}

	if post.Creator != req.CallerID {
		log.Warn().
			Str("func", "*postService.DeletePost").
			Str("post_id", post.ID).
			Str("caller", req.CallerID).
			Msg("caller is not the creator")
		return "", ErrNotPostOwner
	}

	if err = removeUpload(ctx, p.files, post.Thumbnail); err != nil {
		return "", err
	}

	err = p.postRepository.DeletePost(ctx, post.ID)
	if errors.Is(err, store.ErrPostNotFound) {
		return "", ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.DeletePost").Str("post_id", post.ID).Msg("post deletion failed")
		return "", fmt.Errorf("post deletion failed: %w", err)
	}

	if err = p.userRepository.AdjustPostCount(ctx, post.Creator, -1); err != nil {
		log.Err(err).Str("func", "*postService.DeletePost").Str("post_id", post.ID).Msg("post counter decrement failed")
		return "", fmt.Errorf("post counter decrement failed: %w", err)
	}

	return fmt.Sprintf("Post %s deleted successfully.", post.ID), nil
}
