package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
)

// withLogging writes one access line per request. 5xx replies are logged at
// error level and any error body is attached as the "error" field.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		if rw.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		if reason := bytes.TrimSpace(rw.errBody); len(reason) > 0 {
			event = event.Str("error", string(reason))
		}

		event.Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
