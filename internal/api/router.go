package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/Cobalt/internal/hermes"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
	"github.com/MikeSquared-Agency/Cobalt/internal/store"
)

type Options struct {
	AdminToken         string
	RateLimitPerSecond float64
	RateLimitBurst     int
	// DefaultWeights apply to scope requests that send no weights of their own.
	DefaultWeights scoring.FactorWeights
	// TopObjectives is how many objectives scope-computed events carry.
	TopObjectives int
}

func NewRouter(s store.Store, h hermes.Client, sc *scoring.Scorer, m *metrics.Metrics, opts Options, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger, m))

	events := eventPublisher{client: h, metrics: m, logger: logger}
	catalogH := NewCatalogHandler()
	scoringH := NewScoringHandler(sc, opts.DefaultWeights, opts.TopObjectives, m, events)
	designs := NewDesignsHandler(s, scoringH, m, events, logger)

	r.Get("/health", healthHandler(s, h))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/objectives", catalogH.Objectives)
		r.Get("/catalog/factors", catalogH.Factors)
		r.Get("/catalog/factors/{id}", catalogH.Factor)
		r.Get("/catalog/defaults", catalogH.Defaults)

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(opts.RateLimitPerSecond, opts.RateLimitBurst))
			r.Post("/scoring/factors/{id}", scoringH.ScoreFactor)
			r.Post("/scoring/initial-scope", scoringH.InitialScope)
			r.Post("/scoring/refined-scope", scoringH.RefinedScope)
			r.Post("/scoring/final-design", scoringH.FinalDesign)
			r.Post("/scoring/canvas", scoringH.Canvas)
			r.Post("/scoring/redistribute", scoringH.Redistribute)
			r.Get("/designs/{id}/scope", designs.Scope)
		})

		r.Post("/designs", designs.Create)
		r.Get("/designs", designs.List)
		r.Get("/designs/{id}", designs.Get)
		r.Put("/designs/{id}", designs.Update)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(opts.AdminToken))
			r.Delete("/designs/{id}", designs.Delete)
		})
	})

	return r
}

// healthHandler reports 503 when the store cannot be reached. A lost event
// bus only marks the service degraded since publishing is best-effort.
func healthHandler(s store.Store, h hermes.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "ok"}
		if s != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := s.Ping(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
				return
			}
		}
		if h != nil {
			if h.Connected() {
				body["hermes"] = "connected"
			} else {
				body["status"] = "degraded"
				body["hermes"] = "disconnected"
			}
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func NewMetricsRouter(m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", m.Handler())
	return r
}
