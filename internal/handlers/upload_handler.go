package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"adbridge/internal/brands"
	"adbridge/internal/models"
	"adbridge/internal/services"
)

// SourceResolver is what the handler needs from internal/source.
type SourceResolver interface {
	Resolve(ctx context.Context, kind models.SourceKind, locator, inlinePayload, declaredMediaType string) (*models.ResolvedPayload, error)
}

// UploadHandler orchestrates one creative submission: validate, resolve the
// source, archive the payload, then submit it to the ad platform. The two
// uploads run strictly in that order so a failure is attributable; a failed
// archival means the ad platform is never called, and an archived copy is not
// retracted when the ad platform call fails afterwards.
type UploadHandler struct {
	registry   *brands.Registry
	resolver   SourceResolver
	archiver   services.Archiver
	adUploader services.AdUploader
	validator  *validator.Validate

	now func() time.Time
}

func NewUploadHandler(registry *brands.Registry, resolver SourceResolver, archiver services.Archiver, adUploader services.AdUploader) *UploadHandler {
	return &UploadHandler{
		registry:   registry,
		resolver:   resolver,
		archiver:   archiver,
		adUploader: adUploader,
		validator:  validator.New(),
		now:        time.Now,
	}
}

// SetClock overrides the file-name timestamp source. Test hook.
func (h *UploadHandler) SetClock(now func() time.Time) {
	if now != nil {
		h.now = now
	}
}

// UploadCreative handles the dual upload
// @Tags Creatives
// @Summary Archive a creative and submit it to the brand's ad account
// @Accept json
// @Produce json
// @Param body body models.UploadRequest true "Upload request"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/creatives/upload [post]
func (h *UploadHandler) UploadCreative(w http.ResponseWriter, r *http.Request) {
	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Brand == "" {
		writeJSONError(w, http.StatusBadRequest, "brand is required")
		return
	}
	if req.Type != models.AssetKindImage && req.Type != models.AssetKindVideo {
		writeJSONError(w, http.StatusBadRequest, "type must be image or video")
		return
	}
	profile, err := h.registry.Lookup(req.Brand)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.SourceType == "" {
		req.SourceType = models.SourceKindURL
	}

	var locator string
	switch req.SourceType {
	case models.SourceKindURL:
		if req.SourceURL == "" {
			writeJSONError(w, http.StatusBadRequest, "sourceUrl is required for sourceType url")
			return
		}
		locator = req.SourceURL
	case models.SourceKindDrive:
		if req.DriveURL == "" {
			writeJSONError(w, http.StatusBadRequest, "driveUrl is required for sourceType drive")
			return
		}
		locator = req.DriveURL
	case models.SourceKindUpload:
		if req.FileBase64 == "" {
			writeJSONError(w, http.StatusBadRequest, "fileBase64 is required for sourceType upload")
			return
		}
	default:
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown sourceType %q", req.SourceType))
		return
	}

	uploadID := uuid.New().String()
	ctx := r.Context()

	payload, err := h.resolver.Resolve(ctx, req.SourceType, locator, req.FileBase64, req.FileMimeType)
	if err != nil {
		log.Printf("upload %s: resolve failed brand=%s type=%s source=%s: %v", uploadID, req.Brand, req.Type, req.SourceType, err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	fileName := h.deriveFileName(&req)
	log.Printf("upload %s: brand=%s type=%s source=%s mediaType=%s size=%d file=%s",
		uploadID, req.Brand, req.Type, req.SourceType, payload.MediaType, len(payload.Bytes), fileName)

	archival, err := h.archiver.Store(ctx, payload.Bytes, payload.MediaType, fileName, profile.ArchivalFolderID)
	if err != nil {
		log.Printf("upload %s: archival failed brand=%s type=%s source=%s mediaType=%s size=%d: %v",
			uploadID, req.Brand, req.Type, req.SourceType, payload.MediaType, len(payload.Bytes), err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	adResult, err := h.submitToAdPlatform(ctx, &req, payload, fileName, profile)
	if err != nil {
		// The archived copy stays; the caller decides about cleanup.
		log.Printf("upload %s: ad platform failed brand=%s type=%s source=%s mediaType=%s size=%d archivalId=%s: %v",
			uploadID, req.Brand, req.Type, req.SourceType, payload.MediaType, len(payload.Bytes), archival.ID, err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &models.UploadResponse{
		OK:               true,
		Brand:            req.Brand,
		Type:             req.Type,
		SourceType:       req.SourceType,
		SourceURL:        locator,
		FileName:         fileName,
		ArchivalID:       archival.ID,
		ArchivalLink:     archival.ViewLink,
		AdPlatformResult: adResult,
	})
}

func (h *UploadHandler) submitToAdPlatform(ctx context.Context, req *models.UploadRequest, payload *models.ResolvedPayload, fileName string, profile *models.BrandProfile) (*models.AdPlatformResult, error) {
	switch req.Type {
	case models.AssetKindImage:
		hash, err := h.adUploader.UploadImage(ctx, payload.Bytes, payload.MediaType, fileName, profile.AdAccountID, profile.AccessToken)
		if err != nil {
			return nil, err
		}
		return &models.AdPlatformResult{ImageHash: hash}, nil
	case models.AssetKindVideo:
		id, err := h.adUploader.UploadVideo(ctx, payload.Bytes, payload.MediaType, fileName, profile.AdAccountID, profile.AccessToken)
		if err != nil {
			return nil, err
		}
		return &models.AdPlatformResult{VideoID: id}, nil
	}
	return nil, errors.New("unreachable: asset kind validated earlier")
}

// deriveFileName prefers the caller's name; otherwise inline uploads get
// uploaded_<timestamp> and fetched sources get <brand>_<timestamp> with an
// extension matching the asset kind.
func (h *UploadHandler) deriveFileName(req *models.UploadRequest) string {
	if req.FileName != "" {
		return req.FileName
	}

	ts := h.now().UnixMilli()
	if req.SourceType == models.SourceKindUpload {
		return fmt.Sprintf("uploaded_%d", ts)
	}

	ext := ".jpg"
	if req.Type == models.AssetKindVideo {
		ext = ".mp4"
	}
	return fmt.Sprintf("%s_%d%s", req.Brand, ts, ext)
}
