package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"adboard/internal/models"
)

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Store(ctx context.Context, data []byte, originalFilename, contentType string) (*Stored, error) {
	path := filepath.Join(s.root, generateName(originalFilename))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %v", models.ErrStorage, err)
	}

	// O_EXCL: a collision of random names is a bug, never overwrite
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileExists, path)
		}
		return nil, fmt.Errorf("%w: failed to create file: %v", models.ErrStorage, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: failed to write file: %v", models.ErrStorage, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: failed to close file: %v", models.ErrStorage, err)
	}

	return &Stored{
		Path:        path,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

// Replace deletes the old file if present, then stores the new one.
func (s *LocalStorage) Replace(ctx context.Context, existingPath string, data []byte, originalFilename, contentType string) (*Stored, error) {
	if err := s.Delete(ctx, existingPath); err != nil && !errors.Is(err, models.ErrFileNotFound) {
		return nil, err
	}

	return s.Store(ctx, data, originalFilename, contentType)
}

func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read file: %v", models.ErrStorage, err)
	}

	return data, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", models.ErrFileNotFound)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: failed to delete file: %v", models.ErrStorage, err)
	}

	return nil
}
