package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-blog/models"
)

func (h *httpBlogClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	return h.listPosts(ctx, "/api/posts", nil)
}

func (h *httpBlogClient) ListPostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	return h.listPosts(ctx, "/api/posts/categories/{category}", map[string]string{"category": category})
}

func (h *httpBlogClient) ListPostsByCreator(ctx context.Context, userID string) ([]models.Post, error) {
	return h.listPosts(ctx, "/api/posts/users/{id}", map[string]string{"id": userID})
}

func (h *httpBlogClient) listPosts(ctx context.Context, path string, params map[string]string) ([]models.Post, error) {
	var posts []models.Post

	resp, err := h.request(ctx).
		SetPathParams(params).
		SetResult(&posts).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpBlogClient) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&post).
		Get("/api/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) CreatePost(ctx context.Context, createReq models.CreatePostRequest) (models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	req.SetMultipartFormData(map[string]string{
		"title":       createReq.Title,
		"category":    createReq.Category,
		"description": createReq.Description,
	})
	if createReq.Thumbnail != nil {
		req.SetFileReader("thumbnail", createReq.Thumbnail.Name, createReq.Thumbnail.Content)
	}

	var post models.Post
	resp, err := req.
		SetResult(&post).
		Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) EditPost(ctx context.Context, editReq models.EditPostRequest) (models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	if editReq.Thumbnail != nil {
		req.
			SetMultipartFormData(map[string]string{
				"title":       editReq.Title,
				"category":    editReq.Category,
				"description": editReq.Description,
			}).
			SetFileReader("thumbnail", editReq.Thumbnail.Name, editReq.Thumbnail.Content)
	} else {
		req.
			SetHeader("Content-Type", "application/json").
			SetBody(editReq)
	}

	var post models.Post
	resp, err := req.
		SetPathParam("id", editReq.PostID).
		SetResult(&post).
		Patch("/api/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("edit post request: %w", err)
	}

	return post, mapHTTPError(resp)
}

func (h *httpBlogClient) DeletePost(ctx context.Context, id string) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var message string
	resp, err := req.
		SetPathParam("id", id).
		SetResult(&message).
		Delete("/api/posts/{id}")
	if err != nil {
		return "", fmt.Errorf("delete post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message, nil
}

// ── uploads ──

func (h *httpBlogClient) UploadURL(name string) string {
	return h.client.BaseURL + "/uploads/" + url.PathEscape(name)
}

func (h *httpBlogClient) DownloadUpload(ctx context.Context, name string) ([]byte, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "*/*").
		SetPathParam("name", name).
		Get("/uploads/{name}")
	if err != nil {
		return nil, fmt.Errorf("download upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
