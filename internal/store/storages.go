package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// Storages bundles every persistence component the services need.
type Storages struct {
	Users UserRepository
	Posts PostRepository
	Files FileStorage

	// DB is kept so the caller can close the pool on shutdown.
	DB *DB
}

// NewStorages connects the configured database, applies migrations and
// opens the configured upload backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	files, err := newFileStorage(ctx, cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Storages{
		Users: NewUserRepository(db, ids, log),
		Posts: NewPostRepository(db, ids, log),
		Files: files,
		DB:    db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func newFileStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (FileStorage, error) {
	switch cfg.Files.Backend {
	case config.FilesBackendLocal:
		return NewLocalFileStorage(cfg.Files.UploadsDir, log)
	case config.FilesBackendS3:
		return NewS3FileStorage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileBackend, cfg.Files.Backend)
	}
}
