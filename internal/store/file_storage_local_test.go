package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	fsStorage, err := NewLocalFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return fsStorage, dir
}

func TestLocalFileStorage_SaveOpenRemove(t *testing.T) {
	storage, dir := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "cat123.png", strings.NewReader("png-bytes"), 9))

	onDisk, err := os.ReadFile(filepath.Join(dir, "cat123.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(onDisk))

	rc, err := storage.Open(ctx, "cat123.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(body))

	require.NoError(t, storage.Remove(ctx, "cat123.png"))
	_, err = os.Stat(filepath.Join(dir, "cat123.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStorage_Missing(t *testing.T) {
	storage, _ := newTestLocalStorage(t)
	ctx := context.Background()

	_, err := storage.Open(ctx, "nope.png")
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.ErrorIs(t, storage.Remove(ctx, "nope.png"), ErrFileNotFound)
}

func TestLocalFileStorage_NoOverwrite(t *testing.T) {
	storage, _ := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "a.png", strings.NewReader("one"), 3))
	assert.Error(t, storage.Save(ctx, "a.png", strings.NewReader("two"), 3))
}

func TestLocalFileStorage_RejectsPaths(t *testing.T) {
	storage, _ := newTestLocalStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../escape.png", "sub/dir.png", "/etc/passwd"} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, storage.Save(ctx, name, strings.NewReader("x"), 1), ErrInvalidFileName)
			assert.ErrorIs(t, storage.Remove(ctx, name), ErrInvalidFileName)
		})
	}
}

func TestLocalFileStorage_CancelledContext(t *testing.T) {
	storage, dir := newTestLocalStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := storage.Save(ctx, "late.png", strings.NewReader("data"), 4)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "late.png"))
	assert.True(t, os.IsNotExist(statErr), "partial file must be cleaned up")
}
