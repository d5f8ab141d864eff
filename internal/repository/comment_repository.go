package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboard/internal/models"

	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentWithAuthorQuery = `
	SELECT c.id, c.text, c.created_at, c.author_id, c.ad_id,
	       u.first_name AS author_first_name,
	       u.image_id AS author_image_id
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, created_at, author_id, ad_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.Text,
		comment.CreatedAt,
		comment.AuthorID,
		comment.AdID,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID finds a comment only under the given ad.
func (r *commentRepository) GetByID(ctx context.Context, adID, commentID int64) (*models.Comment, error) {
	var comment models.Comment

	query := `
		SELECT id, text, created_at, author_id, ad_id
		FROM comments
		WHERE ad_id = $1 AND id = $2
	`

	err := r.db.GetContext(ctx, &comment, query, adID, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d on ad %d", models.ErrCommentNotFound, commentID, adID)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetWithAuthor(ctx context.Context, commentID int64) (*models.CommentWithAuthor, error) {
	var comment models.CommentWithAuthor

	query := commentWithAuthorQuery + ` WHERE c.id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrCommentNotFound, commentID)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByAdID(ctx context.Context, adID int64) ([]models.CommentWithAuthor, error) {
	comments := []models.CommentWithAuthor{}

	query := commentWithAuthorQuery + ` WHERE c.ad_id = $1 ORDER BY c.created_at, c.id`

	if err := r.db.SelectContext(ctx, &comments, query, adID); err != nil {
		return nil, fmt.Errorf("failed to list comments of ad %d: %w", adID, err)
	}

	return comments, nil
}

// UpdateText never touches created_at.
func (r *commentRepository) UpdateText(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET text = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, comment.Text, comment.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return expectAffected(result, models.ErrCommentNotFound, comment.ID)
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return expectAffected(result, models.ErrCommentNotFound, commentID)
}
