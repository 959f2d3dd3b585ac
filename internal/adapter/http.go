package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogClient constructs the REST implementation of [BlogClient].
// It returns an error if adapterCfg.HTTPAddress is empty or is not a valid
// URL.
func NewHTTPBlogClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (BlogClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBlogClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpBlogClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.request(ctx).SetAuthToken(token), nil
}

// ── auth ──

func (h *httpBlogClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var message string

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&message).
		Post("/api/users/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message, nil
}

// Login prefers the token from the body and falls back to the
// Authorization header.
func (h *httpBlogClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", result.ID).Msg("logged in")

	return result, nil
}

// ── users ──

func (h *httpBlogClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&user).
		Get("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBlogClient) ListAuthors(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list authors request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpBlogClient) ChangeAvatar(ctx context.Context, avatar models.File) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.
		SetFileReader("avatar", avatar.Name, avatar.Content).
		SetResult(&user).
		Post("/api/users/change-avatar")
	if err != nil {
		return models.User{}, fmt.Errorf("change avatar request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBlogClient) EditProfile(ctx context.Context, editReq models.EditProfileRequest) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(editReq).
		SetResult(&user).
		Patch("/api/users/edit-user")
	if err != nil {
		return models.User{}, fmt.Errorf("edit profile request: %w", err)
	}

	return user, mapHTTPError(resp)
}
