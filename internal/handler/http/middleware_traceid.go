package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/dcms-sync/internal/utils"
)

var traceIDs = utils.NewUUIDGenerator()

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen bounds client supplied ids; longer ones are replaced.
	maxTraceIDLen = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context and echoes the id in the X-Trace-ID response header. The
// id is taken from the request header when present.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
