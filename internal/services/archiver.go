// internal/services/archiver.go
package services

import (
	"context"
	"errors"

	"adbridge/internal/models"
)

var (
	ErrArchivalAuth  = errors.New("archival store rejected credentials")
	ErrArchivalWrite = errors.New("archival store write failed")
)

// Archiver keeps a durable copy of every submitted creative. Each Store call
// creates exactly one new object; there is no dedup and no overwrite.
type Archiver interface {
	Store(ctx context.Context, data []byte, mediaType, fileName, folderID string) (*models.ArchivalResult, error)
}
