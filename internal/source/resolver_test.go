package source

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adbridge/internal/models"
)

func TestResolveURLReadsBodyAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	rs := NewResolver()
	p, err := rs.Resolve(context.Background(), models.SourceKindURL, srv.URL+"/a.jpg", "", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bytes.Equal(p.Bytes, []byte("jpeg-bytes")) {
		t.Fatalf("unexpected bytes %q", p.Bytes)
	}
	if p.MediaType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", p.MediaType)
	}
}

func TestResolveURLDefaultsMediaType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// httptest sniffs Content-Type unless set explicitly; force it empty.
		w.Header()["Content-Type"] = nil
		w.Write([]byte{0x00, 0x01})
	}))
	defer srv.Close()

	rs := NewResolver()
	p, err := rs.Resolve(context.Background(), models.SourceKindDrive, srv.URL, "", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.MediaType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %q", p.MediaType)
	}
}

func TestResolveURLNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	rs := NewResolver()
	_, err := rs.Resolve(context.Background(), models.SourceKindURL, srv.URL, "", "")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestResolveDataURLMediaTypeWinsOverDeclared(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	payload := "data:image/png;base64," + data

	rs := NewResolver()
	p, err := rs.Resolve(context.Background(), models.SourceKindUpload, "", payload, "image/jpeg")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.MediaType != "image/png" {
		t.Fatalf("expected image/png from data URL, got %q", p.MediaType)
	}
	if !bytes.Equal(p.Bytes, []byte("png-bytes")) {
		t.Fatalf("unexpected bytes %q", p.Bytes)
	}
}

func TestResolveInlineUsesDeclaredMediaType(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("raw"))

	rs := NewResolver()
	p, err := rs.Resolve(context.Background(), models.SourceKindUpload, "", data, "video/mp4")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.MediaType != "video/mp4" {
		t.Fatalf("expected declared media type, got %q", p.MediaType)
	}
}

func TestResolveInlineDefaultsMediaType(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("raw"))

	rs := NewResolver()
	p, err := rs.Resolve(context.Background(), models.SourceKindUpload, "", data, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.MediaType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %q", p.MediaType)
	}
}

func TestResolveInlineBadBase64(t *testing.T) {
	rs := NewResolver()
	_, err := rs.Resolve(context.Background(), models.SourceKindUpload, "", "!!!not-base64!!!", "")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestResolveUnknownKindFails(t *testing.T) {
	rs := NewResolver()
	_, err := rs.Resolve(context.Background(), models.SourceKind("ftp"), "ftp://x", "", "")
	if err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}
