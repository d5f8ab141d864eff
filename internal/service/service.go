package service

import (
	"path/filepath"

	"adboard/internal/config"
	"adboard/internal/repository"
	"adboard/internal/storage"

	"go.uber.org/zap"
)

// Stores holds one media root per kind of image.
type Stores struct {
	AdImages storage.Storage
	Avatars  storage.Storage
}

type Service struct {
	Auth    AuthService
	User    UserService
	Ad      AdService
	Comment CommentService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, stores Stores, log *zap.Logger) *Service {
	adImages := NewImageService(rep.Image, stores.AdImages, cfg.MaxUploadSize, log)
	avatars := NewImageService(rep.Image, stores.Avatars, cfg.MaxUploadSize, log)

	var defaultAvatar *DefaultImage
	if cfg.Media.DefaultAvatar != "" {
		defaultAvatar = &DefaultImage{
			Path:  cfg.Media.DefaultAvatar,
			Store: storage.NewLocalStorage(filepath.Dir(cfg.Media.DefaultAvatar)),
		}
	}

	return &Service{
		Auth:    NewAuthService(rep.User, NewBcryptHasher(0), cfg),
		User:    NewUserService(rep.User, avatars, defaultAvatar),
		Ad:      NewAdService(rep.Ad, adImages, log),
		Comment: NewCommentService(rep.Comment, rep.Ad),
		Tables:  NewTablesService(rep.Tables),
	}
}
