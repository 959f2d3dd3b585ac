package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/mssola/user_agent"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log entry per request. Server errors are
// logged at error level and client errors at warn.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		client := parseUserAgent(r.UserAgent())
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			// net/http answers 200 when the handler writes nothing
			status = http.StatusOK
		}

		accessEvent(logger.FromRequest(r), status).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Str("browser", client.browser).
			Str("os", client.os).
			Str("device", client.device).
			Msg("request served")
	})
}

func accessEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

// routePattern is the matched chi pattern, e.g. "/api/posts/{id}".
// Empty for unmatched routes.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

type userAgentInfo struct {
	browser string
	os      string
	device  string
}

func parseUserAgent(header string) userAgentInfo {
	if header == "" {
		return userAgentInfo{device: "unknown"}
	}

	ua := user_agent.New(header)
	browser, _ := ua.Browser()

	device := "desktop"
	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	}

	return userAgentInfo{browser: browser, os: ua.OS(), device: device}
}
