package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePost = models.Post{
	ID:          "p-1",
	Title:       "Harvest notes",
	Category:    models.CategoryAgriculture,
	Description: "<p>Long enough description</p>",
	Thumbnail:   "field0190.png",
	Creator:     "u-1",
	CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func newHandlerWithPosts(posts service.PostService) *Handler {
	return newTestHandler(&service.Services{PostService: posts})
}

// ── reads ──

func TestListPosts(t *testing.T) {
	h := newHandlerWithPosts(&mockPostService{
		listPostsFn: func(context.Context) ([]models.Post, error) {
			return []models.Post{samplePost}, nil
		},
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, samplePost, got[0])
}

func TestListPosts_Empty(t *testing.T) {
	h := newHandlerWithPosts(&mockPostService{
		listPostsFn: func(context.Context) ([]models.Post, error) { return []models.Post{}, nil },
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPost(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"missing", service.ErrPostNotFound, http.StatusNotFound},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithPosts(&mockPostService{
				getPostFn: func(_ context.Context, id string) (models.Post, error) {
					assert.Equal(t, "p-1", id)
					return samplePost, tt.err
				},
			})

			req := withURLParams(injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/posts/p-1", nil)), map[string]string{"id": "p-1"})
			rec := httptest.NewRecorder()

			h.getPost(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListPostsByCategory(t *testing.T) {
	var gotCategory string
	h := newHandlerWithPosts(&mockPostService{
		listPostsByCategoryFn: func(_ context.Context, category string) ([]models.Post, error) {
			gotCategory = category
			return nil, nil
		},
	})

	req := withURLParams(injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/posts/categories/Art", nil)), map[string]string{"category": "Art"})
	rec := httptest.NewRecorder()

	h.listPostsByCategory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Art", gotCategory)
}

func TestListPostsByCreator(t *testing.T) {
	var gotCreator string
	h := newHandlerWithPosts(&mockPostService{
		listPostsByCreatorFn: func(_ context.Context, userID string) ([]models.Post, error) {
			gotCreator = userID
			return []models.Post{samplePost}, nil
		},
	})

	req := withURLParams(injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/posts/users/u-1", nil)), map[string]string{"id": "u-1"})
	rec := httptest.NewRecorder()

	h.listPostsByCreator(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", gotCreator)
}

// ── createPost ──

func TestCreatePost_Success(t *testing.T) {
	var got models.CreatePostRequest
	var gotContent []byte

	h := newHandlerWithPosts(&mockPostService{
		createPostFn: func(_ context.Context, req models.CreatePostRequest) (models.Post, error) {
			got = req
			gotContent, _ = io.ReadAll(req.Thumbnail.Content)
			return samplePost, nil
		},
	})

	body, contentType := multipartBody(t, map[string]string{
		validators.FieldTitle:       samplePost.Title,
		validators.FieldCategory:    samplePost.Category,
		validators.FieldDescription: samplePost.Description,
	}, validators.FieldThumbnail, "field.png", []byte("image"))

	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	req = asCaller(injectNopLogger(req), "u-1", "Ann")
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u-1", got.CreatorID)
	assert.Equal(t, samplePost.Title, got.Title)
	assert.Equal(t, samplePost.Category, got.Category)
	assert.Equal(t, samplePost.Description, got.Description)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "field.png", got.Thumbnail.Name)
	assert.Equal(t, []byte("image"), gotContent)
}

func TestCreatePost_MissingThumbnail(t *testing.T) {
	h := newHandlerWithPosts(&mockPostService{
		createPostFn: func(_ context.Context, req models.CreatePostRequest) (models.Post, error) {
			assert.Nil(t, req.Thumbnail)
			return models.Post{}, validators.NewValidationError(validators.FieldThumbnail, validators.ErrFileRequired)
		},
	})

	body, contentType := multipartBody(t, map[string]string{validators.FieldTitle: "t"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	req = asCaller(injectNopLogger(req), "u-1", "Ann")
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "thumbnail please choose an image", decodeMessage(t, rec))
}

// ── editPost ──

func TestEditPost_JSON(t *testing.T) {
	var got models.EditPostRequest
	h := newHandlerWithPosts(&mockPostService{
		editPostFn: func(_ context.Context, req models.EditPostRequest) (models.Post, error) {
			got = req
			return samplePost, nil
		},
	})

	body := `{"title":"New","category":"Art","description":"<p>Updated text here</p>"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/posts/p-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(asCaller(injectNopLogger(req), "u-1", "Ann"), map[string]string{"id": "p-1"})
	rec := httptest.NewRecorder()

	h.editPost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.EditPostRequest{
		CallerID:    "u-1",
		PostID:      "p-1",
		Title:       "New",
		Category:    "Art",
		Description: "<p>Updated text here</p>",
	}, got)
}

func TestEditPost_MultipartWithThumbnail(t *testing.T) {
	var got models.EditPostRequest
	h := newHandlerWithPosts(&mockPostService{
		editPostFn: func(_ context.Context, req models.EditPostRequest) (models.Post, error) {
			got = req
			return samplePost, nil
		},
	})

	body, contentType := multipartBody(t, map[string]string{
		validators.FieldTitle:       "New",
		validators.FieldCategory:    "Art",
		validators.FieldDescription: "<p>Updated text here</p>",
	}, validators.FieldThumbnail, "new.jpg", []byte("jpeg"))

	req := httptest.NewRequest(http.MethodPatch, "/api/posts/p-1", body)
	req.Header.Set("Content-Type", contentType)
	req = withURLParams(asCaller(injectNopLogger(req), "u-1", "Ann"), map[string]string{"id": "p-1"})
	rec := httptest.NewRecorder()

	h.editPost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", got.CallerID)
	assert.Equal(t, "p-1", got.PostID)
	assert.Equal(t, "New", got.Title)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "new.jpg", got.Thumbnail.Name)
}

func TestEditPost_MultipartWithoutThumbnail(t *testing.T) {
	h := newHandlerWithPosts(&mockPostService{
		editPostFn: func(_ context.Context, req models.EditPostRequest) (models.Post, error) {
			assert.Nil(t, req.Thumbnail)
			return samplePost, nil
		},
	})

	body, contentType := multipartBody(t, map[string]string{validators.FieldTitle: "New"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPatch, "/api/posts/p-1", body)
	req.Header.Set("Content-Type", contentType)
	req = withURLParams(asCaller(injectNopLogger(req), "u-1", "Ann"), map[string]string{"id": "p-1"})
	rec := httptest.NewRecorder()

	h.editPost(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditPost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"invalid JSON", "{", nil, http.StatusUnprocessableEntity},
		{"not updated", `{}`, service.ErrPostNotUpdated, http.StatusInternalServerError},
		{"missing post", `{}`, service.ErrPostNotFound, http.StatusNotFound},
		{"short description", `{}`, validators.NewValidationError(validators.FieldDescription, validators.ErrDescriptionTooShort), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithPosts(&mockPostService{
				editPostFn: func(context.Context, models.EditPostRequest) (models.Post, error) {
					return models.Post{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPatch, "/api/posts/p-1", strings.NewReader(tt.body))
			req = withURLParams(asCaller(injectNopLogger(req), "u-1", "Ann"), map[string]string{"id": "p-1"})
			rec := httptest.NewRecorder()

			h.editPost(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ── deletePost ──

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "owner",
			message:    "Post p-1 deleted successfully.",
			wantStatus: http.StatusOK,
			wantBody:   `"Post p-1 deleted successfully."`,
		},
		{
			name:       "not owner",
			err:        service.ErrNotPostOwner,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"only the creator can modify this post"}`,
		},
		{
			name:       "missing",
			err:        service.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"post not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithPosts(&mockPostService{
				deletePostFn: func(_ context.Context, req models.DeletePostRequest) (string, error) {
					assert.Equal(t, models.DeletePostRequest{CallerID: "u-2", PostID: "p-1"}, req)
					return tt.message, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/posts/p-1", nil)
			req = withURLParams(asCaller(injectNopLogger(req), "u-2", "Bob"), map[string]string{"id": "p-1"})
			rec := httptest.NewRecorder()

			h.deletePost(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
