package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboard/internal/models"

	"github.com/jmoiron/sqlx"
)

type adRepository struct {
	db *sqlx.DB
}

func NewAdRepository(db *sqlx.DB) AdRepository {
	return &adRepository{db: db}
}

const adColumns = `id, title, description, price, image_id, author_id`

func (r *adRepository) Create(ctx context.Context, ad *models.Ad) error {
	query := `
		INSERT INTO ads (title, description, price, image_id, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		ad.Title,
		ad.Description,
		ad.Price,
		ad.ImageID,
		ad.AuthorID,
	).Scan(&ad.ID)
	if err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}

	return nil
}

func (r *adRepository) GetByID(ctx context.Context, adID int64) (*models.Ad, error) {
	var ad models.Ad

	query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`

	err := r.db.GetContext(ctx, &ad, query, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrAdNotFound, adID)
		}
		return nil, fmt.Errorf("failed to get ad: %w", err)
	}

	return &ad, nil
}

func (r *adRepository) GetDetails(ctx context.Context, adID int64) (*models.AdDetails, error) {
	var details models.AdDetails

	query := `
		SELECT a.id, a.title, a.description, a.price, a.image_id, a.author_id,
		       u.first_name AS author_first_name,
		       u.last_name AS author_last_name,
		       u.username AS author_username,
		       u.phone AS author_phone
		FROM ads a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`

	err := r.db.GetContext(ctx, &details, query, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrAdNotFound, adID)
		}
		return nil, fmt.Errorf("failed to get ad details: %w", err)
	}

	return &details, nil
}

func (r *adRepository) GetAll(ctx context.Context) ([]models.Ad, error) {
	ads := []models.Ad{}

	query := `SELECT ` + adColumns + ` FROM ads ORDER BY id`

	if err := r.db.SelectContext(ctx, &ads, query); err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}

	return ads, nil
}

func (r *adRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Ad, error) {
	ads := []models.Ad{}

	query := `SELECT ` + adColumns + ` FROM ads WHERE author_id = $1 ORDER BY id`

	if err := r.db.SelectContext(ctx, &ads, query, authorID); err != nil {
		return nil, fmt.Errorf("failed to list ads of user %d: %w", authorID, err)
	}

	return ads, nil
}

// Update changes title, description and price only. Owner and image are
// never touched here.
func (r *adRepository) Update(ctx context.Context, ad *models.Ad) error {
	query := `
		UPDATE ads SET
			title = $1,
			description = $2,
			price = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, ad.Title, ad.Description, ad.Price, ad.ID)
	if err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}

	return expectAffected(result, models.ErrAdNotFound, ad.ID)
}

func (r *adRepository) UpdateImage(ctx context.Context, adID int64, imageID int64) error {
	query := `UPDATE ads SET image_id = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, imageID, adID)
	if err != nil {
		return fmt.Errorf("failed to update ad image: %w", err)
	}

	return expectAffected(result, models.ErrAdNotFound, adID)
}

// DeleteWithComments removes the ad's comments, the ad and its image record
// in one transaction. Comments go first to satisfy comments.ad_id.
func (r *adRepository) DeleteWithComments(ctx context.Context, ad *models.Ad) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE ad_id = $1`, ad.ID); err != nil {
		return fmt.Errorf("failed to delete comments of ad %d: %w", ad.ID, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, ad.ID)
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}

	if err = expectAffected(result, models.ErrAdNotFound, ad.ID); err != nil {
		return err
	}

	if ad.ImageID != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, *ad.ImageID); err != nil {
			return fmt.Errorf("failed to delete image record of ad %d: %w", ad.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ad deletion: %w", err)
	}

	return nil
}
