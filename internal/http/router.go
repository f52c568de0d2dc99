package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cfb-scout-service/internal/metrics"
)

// NewRouter registers HTTP routes with the shared middleware stack.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(LoggingMiddleware(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	// Roster requests can fan out to two upstream calls; keep headroom.
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", handler.ListTeams)
		r.Get("/{name}", handler.TeamByName)
	})

	r.Get("/roster", handler.Roster)
	r.Post("/players/narrative", handler.Narrative)

	return r
}
