package repository

import (
	"context"

	"adboard/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateImage(ctx context.Context, userID int64, imageID int64) error
}

type AdRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	GetByID(ctx context.Context, adID int64) (*models.Ad, error)
	GetDetails(ctx context.Context, adID int64) (*models.AdDetails, error)
	GetAll(ctx context.Context) ([]models.Ad, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Ad, error)
	Update(ctx context.Context, ad *models.Ad) error
	UpdateImage(ctx context.Context, adID int64, imageID int64) error
	DeleteWithComments(ctx context.Context, ad *models.Ad) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, adID, commentID int64) (*models.Comment, error)
	GetWithAuthor(ctx context.Context, commentID int64) (*models.CommentWithAuthor, error)
	GetByAdID(ctx context.Context, adID int64) ([]models.CommentWithAuthor, error)
	UpdateText(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID int64) (*models.Image, error)
	Update(ctx context.Context, image *models.Image) error
	Delete(ctx context.Context, imageID int64) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Ad      AdRepository
	Comment CommentRepository
	Image   ImageRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Ad:      NewAdRepository(db),
		Comment: NewCommentRepository(db),
		Image:   NewImageRepository(db),
		Tables:  NewTablesRepository(db),
	}
}
