// internal/models/upload.go
package models

type AssetKind string

const (
    AssetKindImage AssetKind = "image"
    AssetKindVideo AssetKind = "video"
)

type SourceKind string

const (
    SourceKindURL    SourceKind = "url"
    SourceKindDrive  SourceKind = "drive"
    SourceKindUpload SourceKind = "upload"
)

// UploadRequest is the JSON body accepted by POST /creatives/upload.
// Exactly one of SourceURL/DriveURL/FileBase64 is expected, matching SourceType.
type UploadRequest struct {
    Brand        string     `json:"brand" validate:"required"`
    Type         AssetKind  `json:"type" validate:"required,oneof=image video"`
    SourceType   SourceKind `json:"sourceType" validate:"omitempty,oneof=url drive upload"`
    SourceURL    string     `json:"sourceUrl,omitempty"`
    DriveURL     string     `json:"driveUrl,omitempty"`
    FileBase64   string     `json:"fileBase64,omitempty"`
    FileName     string     `json:"fileName,omitempty"`
    FileMimeType string     `json:"fileMimeType,omitempty"`
}

// BrandProfile holds the per-brand destinations. Immutable after startup.
type BrandProfile struct {
    AdAccountID     string
    AccessToken     string
    ArchivalFolderID string
}

// ResolvedPayload is the in-memory asset produced by the source resolver.
// It lives for one request only.
type ResolvedPayload struct {
    Bytes     []byte
    MediaType string
}

type ArchivalResult struct {
    ID       string `json:"id"`
    ViewLink string `json:"viewLink"`
}

// AdPlatformResult carries exactly one of the two fields, keyed by asset kind.
type AdPlatformResult struct {
    ImageHash string `json:"imageHash,omitempty"`
    VideoID   string `json:"videoId,omitempty"`
}

// UploadResponse is the success envelope returned to the caller.
type UploadResponse struct {
    OK               bool              `json:"ok"`
    Brand            string            `json:"brand"`
    Type             AssetKind         `json:"type"`
    SourceType       SourceKind        `json:"sourceType"`
    SourceURL        string            `json:"sourceUrl,omitempty"`
    FileName         string            `json:"fileName"`
    ArchivalID       string            `json:"archivalId"`
    ArchivalLink     string            `json:"archivalLink"`
    AdPlatformResult *AdPlatformResult `json:"adPlatformResult"`
}
