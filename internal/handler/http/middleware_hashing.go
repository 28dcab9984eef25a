package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/dcms-sync/internal/utils"
)

const (
	contentHashHeader = "X-Content-Hash"
	etagHeader        = "ETag"
	ifNoneMatchHeader = "If-None-Match"
)

// withContentHash verifies push bodies against an optional X-Content-Hash
// header carrying the hex BLAKE2b-256 digest of the raw body. Requests
// without the header pass through unchecked.
func (h *Handler) withContentHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := r.Header.Get(contentHashHeader)
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.withContentHash").Msg("checking hash begins")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withContentHash").Msg("failed to read request body")
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := utils.HashString(body)
		if hashedBody != want {
			h.logger.Err(ErrContentHashMismatch).Str("func", "*Handler.withContentHash").
				Str("hash from request", want).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withETag buffers a successful GET reply, tags it with the BLAKE2b digest of
// its body and answers 304 when the client already holds that version.
func (h *Handler) withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{header: make(http.Header), status: http.StatusOK}
		next.ServeHTTP(bw, r)

		for k, v := range bw.header {
			w.Header()[k] = v
		}

		if bw.status != http.StatusOK {
			w.WriteHeader(bw.status)
			w.Write(bw.body.Bytes())
			return
		}

		etag := `"` + utils.HashString(bw.body.Bytes()) + `"`
		w.Header().Set(etagHeader, etag)

		if r.Header.Get(ifNoneMatchHeader) == etag {
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(bw.body.Bytes())
	})
}

type bufferedResponseWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedResponseWriter) Header() http.Header { return b.header }

func (b *bufferedResponseWriter) WriteHeader(statusCode int) {
	if b.wroteHeader {
		return
	}
	b.status = statusCode
	b.wroteHeader = true
}

func (b *bufferedResponseWriter) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}
