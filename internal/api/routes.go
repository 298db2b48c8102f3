package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/calverse/calendars-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                       liveness + database ping
//	GET  /api/v1/convert/today         today's date in every calendar
//	GET  /api/v1/convert/{date}        a YYYY-MM-DD date in every calendar
//	GET  /api/v1/holidays/{year}       movable holiday estimates for a year
//	GET  /api/v1/leap/{year}           leap-year status across calendars
//	GET  /api/v1/progress              (auth) completed study modules
//	POST /api/v1/progress              (auth) record a module completion
//	DEL  /api/v1/progress/{id}         (auth) remove a record
//	GET  /api/v1/progress/stats        (auth) completion statistics
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(log))
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key"},
		MaxAge:         3600,
	}))

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Public conversion endpoints
		r.Get("/convert/today", handlers.ConvertToday)
		r.Get("/convert/{date}", handlers.ConvertDate)
		r.Get("/holidays/{year}", handlers.GetHolidays)
		r.Get("/leap/{year}", handlers.GetLeapInfo)

		// Progress endpoints (authenticated)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, log))
			r.Get("/progress", handlers.GetProgress)
			r.Post("/progress", handlers.CreateProgress)
			r.Delete("/progress/{id}", handlers.DeleteProgress)
			r.Get("/progress/stats", handlers.GetProgressStats)
		})
	})

	return r
}
