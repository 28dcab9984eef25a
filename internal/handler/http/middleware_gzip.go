package http

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// compressedTypes are the reply types worth compressing. Collections are
// pulled whole, so JSON replies dominate.
var compressedTypes = []string{"application/json", "text/plain"}

// withGZip inflates gzip request bodies and gzips replies for clients that
// accept it. Replies are handled by chi's compressor, which leaves bodiless
// statuses such as 304 alone.
func withGZip(next http.Handler) http.Handler {
	return inflateRequest(middleware.Compress(gzip.DefaultCompression, compressedTypes...)(next))
}

func inflateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}
		defer zr.Close()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}
