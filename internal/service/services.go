package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type Services struct {
	AuthService   AuthService
	PostService   PostService
	UserService   UserService
	UploadService UploadService
}

// NewServices builds every service with request validation in front.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewBlogValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:   NewAuthValidationService(validator).Wrap(NewAuthService(storages.Users, cfg.App, logger)),
		PostService:   NewPostValidationService(validator).Wrap(NewPostService(storages, ids, logger)),
		UserService:   NewUserValidationService(validator).Wrap(NewUserService(storages, ids, cfg.App, logger)),
		UploadService: NewUploadService(storages.Files, logger),
	}
}
