// internal/services/drive_archiver.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"adbridge/internal/models"
)

// DriveArchiver stores creatives in Google Drive. It is the default archival
// backend and matches where the brand folders actually live.
type DriveArchiver struct {
	client *drive.Service
}

// NewDriveArchiver builds the Drive client. Credential resolution is the
// caller's job; it arrives here as option.ClientOption values
// (option.WithTokenSource, option.WithCredentialsJSON, ...).
func NewDriveArchiver(ctx context.Context, opts ...option.ClientOption) (*DriveArchiver, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveArchiver{client: svc}, nil
}

var _ Archiver = (*DriveArchiver)(nil)

// Store creates one file named fileName under folderID and returns its id and
// web view link. Repeated calls with the same name create distinct files;
// Drive does not enforce name uniqueness and neither do we.
func (da *DriveArchiver) Store(ctx context.Context, data []byte, mediaType, fileName, folderID string) (*models.ArchivalResult, error) {
	meta := &drive.File{
		Name:    fileName,
		Parents: []string{folderID},
	}

	f, err := da.client.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mediaType)).
		Fields("id, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
				return nil, fmt.Errorf("%w: status=%d %s", ErrArchivalAuth, apiErr.Code, apiErr.Message)
			}
			return nil, fmt.Errorf("%w: status=%d %s", ErrArchivalWrite, apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: %v", ErrArchivalWrite, err)
	}

	link := f.WebViewLink
	if link == "" {
		link = "https://drive.google.com/file/d/" + f.Id + "/view"
	}

	return &models.ArchivalResult{ID: f.Id, ViewLink: link}, nil
}
