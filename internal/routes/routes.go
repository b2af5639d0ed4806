// internal/routes/routes.go
package routes

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"
    chimiddleware "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"

    "adbridge/internal/config"
    "adbridge/internal/handlers"
)

func SetupRoutes(cfg *config.Config, uploadHandler *handlers.UploadHandler) *chi.Mux {
    r := chi.NewRouter()

    // Middleware
    r.Use(chimiddleware.RequestID)
    r.Use(chimiddleware.RealIP)
    r.Use(chimiddleware.Logger)
    r.Use(chimiddleware.Recoverer)
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins: []string{"*"},
        AllowedMethods: []string{"GET", "POST", "OPTIONS"},
        AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
    }))

    // The upload endpoint is POST-only; anything else gets the error envelope.
    r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(http.StatusMethodNotAllowed)
        _ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "method not allowed"})
    })

    r.Get("/", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        _ = json.NewEncoder(w).Encode(map[string]any{"message": "adbridge creative upload API"})
    })

    // Health check
    r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    })

    RegisterSwaggerRoutes(r)

    // API v1 routes
    r.Route("/api/v1", func(r chi.Router) {
        RegisterUploadRoutes(r, cfg, uploadHandler)
    })

    // Alias kept for callers of the original serverless endpoint.
    r.Post("/upload", uploadHandler.UploadCreative)

    return r
}
