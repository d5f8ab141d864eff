package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboard/internal/models"

	"github.com/jmoiron/sqlx"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (path, size, content_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, image.Path, image.Size, image.ContentType).Scan(&image.ID)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, imageID int64) (*models.Image, error) {
	var image models.Image

	query := `SELECT id, path, size, content_type FROM images WHERE id = $1`

	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrImageNotFound, imageID)
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return &image, nil
}

func (r *imageRepository) Update(ctx context.Context, image *models.Image) error {
	query := `
		UPDATE images
		SET path = $1, size = $2, content_type = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, image.Path, image.Size, image.ContentType, image.ID)
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}

	return expectAffected(result, models.ErrImageNotFound, image.ID)
}

func (r *imageRepository) Delete(ctx context.Context, imageID int64) error {
	query := `DELETE FROM images WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return expectAffected(result, models.ErrImageNotFound, imageID)
}
