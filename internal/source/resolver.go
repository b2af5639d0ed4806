// internal/source/resolver.go
package source

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adbridge/internal/models"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedPayload  = errors.New("malformed inline payload")
)

const defaultMediaType = "application/octet-stream"

// Resolver turns a source descriptor into an in-memory payload with a media
// type. Payloads are read in full; sizes are bounded by what the ad platform
// accepts, so no streaming.
type Resolver struct {
	httpClient *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (rs *Resolver) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		rs.httpClient = hc
	}
}

// Resolve fetches or decodes the asset. For url and drive sources the locator
// is fetched with a single GET; drive is an input-classification label only,
// not a different fetch path. For upload sources the inline base64 payload is
// decoded, honoring a data-URL media-type prefix over the declared one.
func (rs *Resolver) Resolve(ctx context.Context, kind models.SourceKind, locator, inlinePayload, declaredMediaType string) (*models.ResolvedPayload, error) {
	switch kind {
	case models.SourceKindURL, models.SourceKindDrive:
		return rs.fetch(ctx, locator)
	case models.SourceKindUpload:
		return decodeInline(inlinePayload, declaredMediaType)
	default:
		return nil, fmt.Errorf("unsupported source type %q", kind)
	}
}

func (rs *Resolver) fetch(ctx context.Context, rawURL string) (*models.ResolvedPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrSourceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrSourceUnavailable, resp.StatusCode, excerpt(body))
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	return &models.ResolvedPayload{Bytes: body, MediaType: mediaType}, nil
}

func decodeInline(payload, declaredMediaType string) (*models.ResolvedPayload, error) {
	mediaType := declaredMediaType

	// Optional data-URL wrapper: data:<mediaType>;base64,<data>. The embedded
	// media type wins over the declared one.
	if strings.HasPrefix(payload, "data:") {
		rest := payload[len("data:"):]
		sep := strings.Index(rest, ";base64,")
		if sep < 0 {
			return nil, fmt.Errorf("%w: data URL without base64 marker", ErrMalformedPayload)
		}
		if mt := rest[:sep]; mt != "" {
			mediaType = mt
		}
		payload = rest[sep+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	return &models.ResolvedPayload{Bytes: raw, MediaType: mediaType}, nil
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 256 {
		s = s[:256] + "..."
	}
	return s
}
