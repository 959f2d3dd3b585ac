package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

// defaultMaxUploadSize bounds a multipart body when the config sets none.
const defaultMaxUploadSize int64 = 10 << 20

type Handler struct {
	services *service.Services

	// maxUploadSize caps multipart request bodies in bytes.
	maxUploadSize int64

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  maxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
