package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adbridge/internal/brands"
	"adbridge/internal/config"
	"adbridge/internal/handlers"
	"adbridge/internal/models"
)

type stubResolver struct{}

func (stubResolver) Resolve(ctx context.Context, kind models.SourceKind, locator, inlinePayload, declaredMediaType string) (*models.ResolvedPayload, error) {
	return &models.ResolvedPayload{Bytes: []byte("x"), MediaType: "image/jpeg"}, nil
}

type stubArchiver struct{}

func (stubArchiver) Store(ctx context.Context, data []byte, mediaType, fileName, folderID string) (*models.ArchivalResult, error) {
	return &models.ArchivalResult{ID: "f1", ViewLink: "l"}, nil
}

type stubAdUploader struct{}

func (stubAdUploader) UploadImage(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error) {
	return "h1", nil
}

func (stubAdUploader) UploadVideo(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error) {
	return "v1", nil
}

func newTestRouter(cfg *config.Config) http.Handler {
	registry := brands.NewRegistryFromProfiles(map[string]*models.BrandProfile{
		"desa": {AdAccountID: "1", AccessToken: "t", ArchivalFolderID: "f"},
	})
	h := handlers.NewUploadHandler(registry, stubResolver{}, stubArchiver{}, stubAdUploader{})
	return SetupRoutes(cfg, h)
}

func TestRootReturnsJSON(t *testing.T) {
	r := newTestRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] == "" {
		t.Fatalf("expected message, got %v", body)
	}
}

func TestHealthOK(t *testing.T) {
	r := newTestRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestUploadRouteRejectsGET(t *testing.T) {
	r := newTestRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/creatives/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d (%s)", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ok, _ := body["ok"].(bool); ok {
		t.Fatalf("expected ok=false envelope, got %v", body)
	}
}

func TestLegacyUploadAlias(t *testing.T) {
	r := newTestRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Empty body fails validation, but the route itself must dispatch.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from empty body, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUploadRouteRequiresTokenWhenSecretSet(t *testing.T) {
	r := newTestRouter(&config.Config{JWTSecret: "dev"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/creatives/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
	}
}
