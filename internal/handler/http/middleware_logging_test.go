package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest создаёт запрос с логгером в контексте, как это делает withTraceID
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

// accessEntry декодирует единственную запись access-лога
func accessEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	return entry
}

func TestWithLogging_Entry(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{"list posts", http.MethodGet, "/api/posts", http.StatusOK, `[]`, "info"},
		{"create post", http.MethodPost, "/api/posts", http.StatusCreated, `{"id":"p-1"}`, "info"},
		{"query kept in uri", http.MethodGet, "/api/posts?page=2", http.StatusOK, `[]`, "info"},
		{"validation failure", http.MethodPost, "/api/users/register", http.StatusUnprocessableEntity, `{"message":"bad"}`, "warn"},
		{"not owner", http.MethodDelete, "/api/posts/p-1", http.StatusForbidden, `{"message":"no"}`, "warn"},
		{"server error", http.MethodPatch, "/api/posts/p-1", http.StatusInternalServerError, `{"message":"Internal Server Error"}`, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &buf))

			entry := accessEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, "request served", entry["message"])

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestWithLogging_SizeAcrossWrites(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello, "))
		w.Write([]byte("World!"))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/posts", &buf))

	entry := accessEntry(t, &buf)
	assert.EqualValues(t, 13, entry["size"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestWithLogging_NothingWrittenCountsAsOK(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/posts", &buf))

	entry := accessEntry(t, &buf)
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
	assert.Equal(t, "info", entry["level"])
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer

	router := chi.NewRouter()
	router.Use(withLogging)
	router.Get("/api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/posts/p-42", &buf))

	entry := accessEntry(t, &buf)
	assert.Equal(t, "/api/posts/{id}", entry["route"])
	assert.Equal(t, "/api/posts/p-42", entry["uri"])
}

func TestWithLogging_UserAgentFields(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      map[string]string
	}{
		{
			name:      "desktop firefox",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			want:      map[string]string{"browser": "Firefox", "device": "desktop"},
		},
		{
			name:      "mobile safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			want:      map[string]string{"device": "mobile"},
		},
		{
			name:      "crawler",
			userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			want:      map[string]string{"device": "bot"},
		},
		{
			name:      "no header",
			userAgent: "",
			want:      map[string]string{"device": "unknown", "browser": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := makeRequest(http.MethodGet, "/api/posts", &buf)
			req.Header.Set("User-Agent", tt.userAgent)

			withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

			entry := accessEntry(t, &buf)
			for field, want := range tt.want {
				assert.Equal(t, want, entry[field], field)
			}
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/posts", &buf))
	}, "recovery belongs to middleware.Recoverer")
	assert.Empty(t, buf.String())
}

func TestWithLogging_ConcurrentRequests(t *testing.T) {
	handler := withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	var wg sync.WaitGroup
	for j := 0; j < 20; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			handler.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/posts", &buf))
			assert.Contains(t, buf.String(), `"size":2`)
		}()
	}
	wg.Wait()
}

// без логгера в контексте используется логгер по умолчанию
func TestWithLogging_NopLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
