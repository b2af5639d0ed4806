// internal/routes/upload_routes.go
package routes

import (
    "github.com/go-chi/chi/v5"

    "adbridge/internal/config"
    "adbridge/internal/handlers"
    "adbridge/internal/middleware"
)

func RegisterUploadRoutes(router chi.Router, cfg *config.Config, uploadHandler *handlers.UploadHandler) {
    router.Route("/creatives", func(r chi.Router) {
        if cfg.JWTSecret != "" {
            r.Use(middleware.JWTAuth(cfg.JWTSecret))
        }
        r.Post("/upload", uploadHandler.UploadCreative)
    })
}
