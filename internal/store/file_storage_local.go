package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// localFileStorage keeps uploads as flat files inside one directory.
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage creates dir if needed and returns a [FileStorage]
// rooted there.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewLocalFileStorage").Str("dir", dir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local file storage")
	return &localFileStorage{dir: dir, logger: logger}, nil
}

// Save writes content to a new file. An existing name is never overwritten.
// A partially written file is removed on failure.
func (l *localFileStorage) Save(ctx context.Context, name string, content io.Reader, _ int64) error {
	log := logger.FromContext(ctx)

	path, err := l.path(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("file", name).Msg("error creating file")
		return fmt.Errorf("error creating file %s: %w", name, err)
	}

	if _, err = io.Copy(f, readerWithContext(ctx, content)); err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*localFileStorage.Save").Str("file", name).Msg("error writing file")
		return fmt.Errorf("error writing file %s: %w", name, err)
	}

	if err = f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("error closing file %s: %w", name, err)
	}

	log.Debug().Str("func", "*localFileStorage.Save").Str("file", name).Msg("file saved")
	return nil
}

func (l *localFileStorage) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := l.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", name, err)
	}

	return f, nil
}

func (l *localFileStorage) Remove(ctx context.Context, name string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localFileStorage.Remove").Str("file", name).Msg("error removing file")
		return fmt.Errorf("error removing file %s: %w", name, err)
	}

	return nil
}

// path resolves name inside the root, rejecting anything but a plain file name.
func (l *localFileStorage) path(name string) (string, error) {
	if !validFileName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return filepath.Join(l.dir, name), nil
}

func validFileName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && !filepath.IsAbs(name)
}

// ctxReader stops a long copy once the request is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
