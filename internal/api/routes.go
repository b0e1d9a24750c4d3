package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmanandhar/nepalsambat-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                        liveness probe
//	GET /api/v1/convert/today          convert the current date
//	GET /api/v1/convert/range          batch conversion (API key when set)
//	GET /api/v1/convert/{date}         convert one YYYY-MM-DD date
//	GET /api/v1/astro/{date}           raw solar/lunar angles at sunrise
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert/today", handlers.ConvertToday)
		r.With(AuthMiddleware(cfg, logger)).Get("/convert/range", handlers.ConvertRange)
		r.Get("/convert/{date}", handlers.ConvertDate)
		r.Get("/astro/{date}", handlers.AstroDetails)
	})

	return r
}
