package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withGZip, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Route("/api/sync", func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.withETag).Get("/all", h.getAll)

		r.Route("/{resource}", func(r chi.Router) {
			r.Use(h.withResource)

			r.With(h.withETag).Get("/", h.getCollection)
			r.With(h.withContentHash).Post("/", h.replaceCollection)
			r.Get("/lastUpdate", h.lastUpdate)
			r.Get("/records", h.getRecordsSince)
			r.With(h.withContentHash).Put("/records", h.upsertRecords)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
