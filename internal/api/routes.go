package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(requestTimeout) {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tiles/{x}/{z}", func(r chi.Router) {
			r.Get("/density", handler.GetDensity)
			r.Get("/column", handler.GetColumn)
			r.Post("/snapshots", handler.CreateSnapshot)
			r.Get("/snapshots/latest", handler.GetLatestSnapshot)
		})

		r.Post("/snapshots/batch", handler.CreateSnapshotBatch)
		r.Get("/snapshots/{id}", handler.GetSnapshot)
		r.Delete("/snapshots/{id}", handler.DeleteSnapshot)
	})

	return r
}
