package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	httpHandler "github.com/MKhiriev/go-blog/internal/handler/http"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":0"}, errNoHTTPHandler},
		{"nil HTTP handler", &handler.Handlers{}, config.Server{HTTPAddress: ":0"}, errNoHTTPHandler},
		{"empty address", &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}, config.Server{}, errNoAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServer_RunUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	cfg := config.Server{HTTPAddress: addr}
	h := &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop())}

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(ctx)
	}()

	// unknown routes answer 404 without touching any service
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/nope")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := config.Server{HTTPAddress: l.Addr().String()}
	h := &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop())}

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	// порт занят: run возвращается сразу, не дожидаясь сигнала
	err = s.(*server).run(context.Background())
	assert.ErrorContains(t, err, "http server:")
}
