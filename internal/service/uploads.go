package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// saveUpload stores file under a fresh unique name and returns that name.
func saveUpload(ctx context.Context, files store.FileStorage, ids store.IDGenerator, file *models.File) (string, error) {
	name := utils.UniqueFileName(uploadBaseName(file.Name), ids.Generate())

	if err := files.Save(ctx, name, file.Content, file.Size); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "saveUpload").Str("file", name).Msg("error saving upload")
		return "", fmt.Errorf("error saving upload: %w", err)
	}

	return name, nil
}

// removeUpload deletes a stored file. A file that is already gone is logged
// and ignored; every other failure is returned.
func removeUpload(ctx context.Context, files store.FileStorage, name string) error {
	if name == "" {
		return nil
	}

	log := logger.FromContext(ctx)

	err := files.Remove(ctx, name)
	if errors.Is(err, store.ErrFileNotFound) {
		log.Warn().Str("func", "removeUpload").Str("file", name).Msg("upload already absent")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "removeUpload").Str("file", name).Msg("error removing upload")
		return fmt.Errorf("error removing upload: %w", err)
	}

	return nil
}

// uploadBaseName strips any client-supplied directories from name.
func uploadBaseName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case ".", "..", "/":
		return "upload"
	}
	return base
}

type uploadService struct {
	files  store.FileStorage
	logger *logger.Logger
}

func NewUploadService(files store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{files: files, logger: logger}
}

// OpenUpload returns ErrUploadNotFound for names that are missing or could
// never have been stored.
func (u *uploadService) OpenUpload(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := u.files.Open(ctx, name)
	if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, store.ErrInvalidFileName) {
		return nil, ErrUploadNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uploadService.OpenUpload").Str("file", name).Msg("error opening upload")
		return nil, fmt.Errorf("error opening upload: %w", err)
	}

	return rc, nil
}
