package service

import (
	"context"
	"errors"
	"fmt"

	"adboard/internal/models"
	"adboard/internal/repository"
	"adboard/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Upload is an image received from a client.
type Upload struct {
	Data     []byte
	Filename string
}

// ImageData is an image ready to be served.
type ImageData struct {
	Data        []byte
	ContentType string
}

// ImageService keeps image rows and the files of one media root in step.
type ImageService struct {
	repo    repository.ImageRepository
	store   storage.Storage
	maxSize int64
	log     *zap.Logger
}

func NewImageService(repo repository.ImageRepository, store storage.Storage, maxSize int64, log *zap.Logger) *ImageService {
	return &ImageService{repo: repo, store: store, maxSize: maxSize, log: log}
}

// Save stores the file and records it. The file is removed again if the
// record cannot be written.
func (s *ImageService) Save(ctx context.Context, upload Upload) (*models.Image, error) {
	contentType, err := s.check(upload)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Store(ctx, upload.Data, upload.Filename, contentType)
	if err != nil {
		s.log.Error("failed to store image", zap.String("filename", upload.Filename), zap.Error(err))
		return nil, err
	}

	image := &models.Image{Path: stored.Path, Size: stored.Size, ContentType: stored.ContentType}

	if err := s.repo.Create(ctx, image); err != nil {
		s.RemoveFile(ctx, stored.Path)
		return nil, err
	}

	return image, nil
}

// Replace swaps the file behind an existing image record.
func (s *ImageService) Replace(ctx context.Context, imageID int64, upload Upload) (*models.Image, error) {
	contentType, err := s.check(upload)
	if err != nil {
		return nil, err
	}

	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Replace(ctx, image.Path, upload.Data, upload.Filename, contentType)
	if err != nil {
		s.log.Error("failed to replace image", zap.Int64("image_id", imageID), zap.Error(err))
		return nil, err
	}

	image.Path = stored.Path
	image.Size = stored.Size
	image.ContentType = stored.ContentType

	if err := s.repo.Update(ctx, image); err != nil {
		s.RemoveFile(ctx, stored.Path)
		return nil, err
	}

	return image, nil
}

func (s *ImageService) Read(ctx context.Context, imageID int64) (*ImageData, error) {
	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Read(ctx, image.Path)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.log.Error("failed to read image", zap.Int64("image_id", imageID), zap.Error(err))
		}
		return nil, err
	}

	return &ImageData{Data: data, ContentType: image.ContentType}, nil
}

// Path returns the stored path of an image record.
func (s *ImageService) Path(ctx context.Context, imageID int64) (string, error) {
	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	return image.Path, nil
}

// Discard drops an image that was saved but never attached. Failures are
// only logged.
func (s *ImageService) Discard(ctx context.Context, image *models.Image) {
	if err := s.repo.Delete(ctx, image.ID); err != nil {
		s.log.Warn("failed to remove image record", zap.Int64("image_id", image.ID), zap.Error(err))
	}
	s.RemoveFile(ctx, image.Path)
}

// RemoveFile deletes a file and only logs failures.
func (s *ImageService) RemoveFile(ctx context.Context, path string) {
	if err := s.store.Delete(ctx, path); err != nil {
		s.log.Warn("failed to remove image file", zap.String("path", path), zap.Error(err))
	}
}

func (s *ImageService) check(upload Upload) (string, error) {
	if len(upload.Data) == 0 {
		return "", fmt.Errorf("%w: image is empty", models.ErrValidation)
	}
	if s.maxSize > 0 && int64(len(upload.Data)) > s.maxSize {
		return "", fmt.Errorf("%w: image exceeds %d bytes", models.ErrValidation, s.maxSize)
	}

	return detectImageType(upload.Data)
}

func detectImageType(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported image type %s", models.ErrValidation, mtype.String())
}

// DefaultImage is served when a user has no avatar of their own.
type DefaultImage struct {
	Path  string
	Store storage.Storage
}

func (d *DefaultImage) Read(ctx context.Context) (*ImageData, error) {
	data, err := d.Store.Read(ctx, d.Path)
	if err != nil {
		return nil, err
	}
	return &ImageData{Data: data, ContentType: mimetype.Detect(data).String()}, nil
}
