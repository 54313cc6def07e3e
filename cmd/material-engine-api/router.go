// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/buildfacts/material-engine/cmd/material-engine-api/handlers"
	"github.com/buildfacts/material-engine/cmd/material-engine-api/middleware"
	"github.com/buildfacts/material-engine/internal/api/rpc"
	"github.com/buildfacts/material-engine/internal/config"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/pkg/engine"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, rt *engine.Runtime) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	// Health check (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"material-engine"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := rt.Store.GetAll(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ready"}`))
	})

	qaHandler := handlers.NewQAHandler(logger, rt.Engine)
	materialsHandler := handlers.NewMaterialsHandler(logger, rt.Store, rt.Engine)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(middleware.AuthConfig{
			Enabled: cfg.Auth.Enabled,
			APIKeys: cfg.Auth.APIKeys,
		}))

		r.Route("/qa", func(r chi.Router) {
			r.Post("/answer", qaHandler.Answer)
			r.Post("/parse", qaHandler.Parse)
		})

		r.Route("/materials", func(r chi.Router) {
			r.Get("/", materialsHandler.List)
			r.Get("/{id}", materialsHandler.Get)
			r.Put("/{id}", materialsHandler.Put)
			r.Delete("/{id}", materialsHandler.Delete)
			r.Get("/{id1}/compatibility/{id2}", materialsHandler.Compatibility)
			r.Post("/{id}/failure-predictions", materialsHandler.PredictFailures)
		})
	})

	// Connect RPC surface
	rpcMux := http.NewServeMux()
	rpc.NewQAService(logger, rt.Engine).Mount(rpcMux)
	r.Mount("/rpc", http.StripPrefix("/rpc", rpcMux))

	return r
}
