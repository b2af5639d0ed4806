// cmd/api/main.go
package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "github.com/joho/godotenv"

    "adbridge/internal/brands"
    "adbridge/internal/config"
    "adbridge/internal/handlers"
    "adbridge/internal/routes"
    "adbridge/internal/services"
    "adbridge/internal/source"
)

// @title adbridge creative upload API
// @version 1.0
// @description Archives creatives to a brand's Drive folder and submits them to the brand's ad account.
// @BasePath /
func main() {
    // Load .env in development; production sets variables directly.
    if os.Getenv("ENVIRONMENT") != "production" {
        if err := godotenv.Load(); err != nil {
            log.Printf("No .env file loaded: %v", err)
        }
    }

    // Load configuration
    cfg := config.Load()

    // Brand registry fails fast on missing per-brand configuration.
    registry, err := brands.NewRegistry(cfg.Brands, os.Getenv)
    if err != nil {
        log.Fatalf("Failed to load brand configuration: %v", err)
    }
    log.Printf("Configured brands: %s", strings.Join(registry.Brands(), ", "))

    ctx := context.Background()

    archiver, err := buildArchiver(ctx, cfg)
    if err != nil {
        log.Fatalf("Failed to initialize archival backend: %v", err)
    }

    resolver := source.NewResolver()
    metaClient := services.NewMetaClient(cfg.MetaAPIVersion)

    uploadHandler := handlers.NewUploadHandler(registry, resolver, archiver, metaClient)

    // Create router and setup routes
    router := routes.SetupRoutes(cfg, uploadHandler)

    // Create server
    server := &http.Server{
        Addr:    ":" + cfg.Port,
        Handler: router,
    }

    // Graceful shutdown
    go func() {
        log.Printf("Server starting on port %s", cfg.Port)
        if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Failed to start server: %v", err)
        }
    }()

    // Wait for interrupt signal
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    log.Println("Shutting down server...")

    // Give server 5 seconds to finish current requests
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := server.Shutdown(shutdownCtx); err != nil {
        log.Fatalf("Server forced to shutdown: %v", err)
    }

    log.Println("Server exiting")
}

func buildArchiver(ctx context.Context, cfg *config.Config) (services.Archiver, error) {
    switch cfg.ArchivalBackend {
    case "s3":
        s3Config, err := config.NewS3Config(ctx)
        if err != nil {
            return nil, err
        }
        return services.NewS3Archiver(s3Config), nil
    default:
        opts, err := config.GoogleClientOptions(ctx)
        if err != nil {
            return nil, err
        }
        return services.NewDriveArchiver(ctx, opts...)
    }
}
