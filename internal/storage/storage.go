package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Stored describes a blob written by a Storage.
type Stored struct {
	Path        string
	Size        int64
	ContentType string
}

// Storage owns write access to one media root. Paths it returns are the only
// valid input for Read, Replace and Delete.
type Storage interface {
	Store(ctx context.Context, data []byte, originalFilename, contentType string) (*Stored, error)
	Replace(ctx context.Context, existingPath string, data []byte, originalFilename, contentType string) (*Stored, error)
	Read(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// generateName returns a random file name that keeps the original extension.
func generateName(originalFilename string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(originalFilename))
}
