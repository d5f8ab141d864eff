package service

import (
	"context"
	"time"

	"adboard/internal/models"
	"adboard/internal/repository"
)

type CommentService interface {
	ListForAd(ctx context.Context, adID int64) ([]models.CommentWithAuthor, error)
	Create(ctx context.Context, principal *models.Principal, adID int64, text string) (*models.CommentWithAuthor, error)
	Update(ctx context.Context, principal *models.Principal, adID, commentID int64, text string) (*models.CommentWithAuthor, error)
	Delete(ctx context.Context, principal *models.Principal, adID, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	adRepo      repository.AdRepository
	now         func() time.Time
}

func NewCommentService(commentRepo repository.CommentRepository, adRepo repository.AdRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		adRepo:      adRepo,
		now:         time.Now,
	}
}

func (s *commentService) ListForAd(ctx context.Context, adID int64) ([]models.CommentWithAuthor, error) {
	if _, err := s.adRepo.GetByID(ctx, adID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByAdID(ctx, adID)
}

// Create stamps the comment with the server clock.
func (s *commentService) Create(ctx context.Context, principal *models.Principal, adID int64, text string) (*models.CommentWithAuthor, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	if _, err := s.adRepo.GetByID(ctx, adID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:      text,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		AuthorID:  principal.ID,
		AdID:      adID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetWithAuthor(ctx, comment.ID)
}

func (s *commentService) Update(ctx context.Context, principal *models.Principal, adID, commentID int64, text string) (*models.CommentWithAuthor, error) {
	comment, err := s.commentRepo.GetByID(ctx, adID, commentID)
	if err != nil {
		return nil, err
	}

	if err := authorize(principal, comment.AuthorID); err != nil {
		return nil, err
	}

	comment.Text = text

	if err := s.commentRepo.UpdateText(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetWithAuthor(ctx, comment.ID)
}

func (s *commentService) Delete(ctx context.Context, principal *models.Principal, adID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, adID, commentID)
	if err != nil {
		return err
	}

	if err := authorize(principal, comment.AuthorID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, comment.ID)
}
