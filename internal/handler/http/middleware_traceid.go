package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace ID in both directions.
const traceIDHeader = "X-Trace-ID"

// withTraceID echoes the trace ID back to the client and stores a child
// logger tagged with it in the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

// requestTraceID reuses a client-supplied ID only when it is a UUID, so
// arbitrary header text never reaches the logs.
func requestTraceID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(traceIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
