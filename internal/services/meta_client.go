// internal/services/meta_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

var (
	ErrAdPlatformAuth     = errors.New("ad platform rejected credentials")
	ErrAdPlatformRejected = errors.New("ad platform rejected upload")
	ErrNotAnImage         = errors.New("media type is not an image")
)

const defaultMetaAPIVersion = "v19.0"

// AdUploader is the ad-platform side of the dual upload.
type AdUploader interface {
	UploadImage(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error)
	UploadVideo(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error)
}

// MetaClient submits creatives to the Meta Marketing API. One attempt per
// call; a non-success response fails the request with the upstream body kept
// in the error for diagnosis.
type MetaClient struct {
	baseURL    string
	apiVersion string

	// Video payloads are much larger than images, so they get their own
	// client with a timeout that will not cut a big upload short.
	imageClient *http.Client
	videoClient *http.Client
}

func NewMetaClient(apiVersion string) *MetaClient {
	if strings.TrimSpace(apiVersion) == "" {
		apiVersion = defaultMetaAPIVersion
	}
	return &MetaClient{
		baseURL:     "https://graph.facebook.com",
		apiVersion:  apiVersion,
		imageClient: &http.Client{Timeout: 15 * time.Second},
		videoClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

func (c *MetaClient) SetBaseURL(u string) {
	if strings.TrimSpace(u) != "" {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func (c *MetaClient) SetHTTPClients(image, video *http.Client) {
	if image != nil {
		c.imageClient = image
	}
	if video != nil {
		c.videoClient = video
	}
}

var _ AdUploader = (*MetaClient)(nil)

// NormalizeAdAccountID prefixes a bare numeric account id with act_.
// Already-prefixed ids pass through unchanged.
func NormalizeAdAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// UploadImage posts the payload to /<ver>/act_<id>/adimages and returns the
// image hash. The response keys its images map by the submitted file name,
// but we take whichever single entry is present rather than assume the key.
func (c *MetaClient) UploadImage(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error) {
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: %q", ErrNotAnImage, mediaType)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/adimages", c.baseURL, c.apiVersion, NormalizeAdAccountID(accountID))
	body, err := c.post(ctx, c.imageClient, endpoint, data, fileName, token)
	if err != nil {
		return "", err
	}

	var out struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: invalid json: %v", ErrAdPlatformRejected, err)
	}
	for _, img := range out.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", fmt.Errorf("%w: response did not include an image hash", ErrAdPlatformRejected)
}

// UploadVideo posts the payload to /<ver>/act_<id>/advideos and returns the
// video id. The platform accepts arbitrary video containers, so no media-type
// restriction here.
func (c *MetaClient) UploadVideo(ctx context.Context, data []byte, mediaType, fileName, accountID, token string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/advideos", c.baseURL, c.apiVersion, NormalizeAdAccountID(accountID))
	body, err := c.post(ctx, c.videoClient, endpoint, data, fileName, token)
	if err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: invalid json: %v", ErrAdPlatformRejected, err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: response did not include a video id", ErrAdPlatformRejected)
	}
	return out.ID, nil
}

func (c *MetaClient) post(ctx context.Context, hc *http.Client, endpoint string, data []byte, fileName, token string) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("access_token", token); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}
	part, err := mw.CreateFormFile("source", fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdPlatformRejected, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrAdPlatformAuth, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrAdPlatformRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
