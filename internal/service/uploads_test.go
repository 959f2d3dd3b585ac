// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRemoveUpload(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		removeErr error
		expect    bool
		wantErr   error
	}{
		{name: "empty name is a no-op", file: ""},
		{name: "removed", file: "a.png", expect: true},
		{name: "absent is tolerated", file: "a.png", expect: true, removeErr: store.ErrFileNotFound},
		{name: "other errors propagate", file: "a.png", expect: true, removeErr: errBoom, wantErr: errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			files := mock.NewMockFileStorage(ctrl)
			if tt.expect {
				files.EXPECT().Remove(gomock.Any(), tt.file).Return(tt.removeErr)
			}

			err := removeUpload(context.Background(), files, tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUploadBaseName(t *testing.T) {
	tests := map[string]string{
		"cat.png":               "cat.png",
		"../../etc/passwd":      "passwd",
		`C:\Users\me\photo.jpg`: "photo.jpg",
		"":                      "upload",
		"..":                    "upload",
		"/":                     "upload",
	}

	for in, want := range tests {
		assert.Equal(t, want, uploadBaseName(in), in)
	}
}

func TestUploadService_OpenUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	svc := NewUploadService(files, logger.Nop())
	ctx := context.Background()

	files.EXPECT().Open(ctx, "a.png").Return(io.NopCloser(strings.NewReader("img")), nil)
	files.EXPECT().Open(ctx, "gone.png").Return(nil, store.ErrFileNotFound)
	files.EXPECT().Open(ctx, "../x").Return(nil, store.ErrInvalidFileName)
	files.EXPECT().Open(ctx, "err.png").Return(nil, errBoom)

	rc, err := svc.OpenUpload(ctx, "a.png")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "img", string(body))

	_, err = svc.OpenUpload(ctx, "gone.png")
	assert.ErrorIs(t, err, ErrUploadNotFound)

	_, err = svc.OpenUpload(ctx, "../x")
	assert.ErrorIs(t, err, ErrUploadNotFound)

	_, err = svc.OpenUpload(ctx, "err.png")
	assert.ErrorIs(t, err, errBoom)
}
