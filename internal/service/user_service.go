package service

import (
	"context"

	"adboard/internal/models"
	"adboard/internal/repository"
)

type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Phone     string
}

type UserService interface {
	GetProfile(ctx context.Context, principal *models.Principal) (*models.User, error)
	UpdateProfile(ctx context.Context, principal *models.Principal, req UpdateProfileRequest) (*models.User, error)
	UpdateAvatar(ctx context.Context, principal *models.Principal, upload Upload) (*models.User, error)
	GetAvatar(ctx context.Context, userID int64) (*ImageData, error)
}

type userService struct {
	userRepo      repository.UserRepository
	avatars       *ImageService
	defaultAvatar *DefaultImage
}

func NewUserService(userRepo repository.UserRepository, avatars *ImageService, defaultAvatar *DefaultImage) UserService {
	return &userService{
		userRepo:      userRepo,
		avatars:       avatars,
		defaultAvatar: defaultAvatar,
	}
}

func (s *userService) GetProfile(ctx context.Context, principal *models.Principal) (*models.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, principal.ID)
}

func (s *userService) UpdateProfile(ctx context.Context, principal *models.Principal, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateAvatar replaces the current avatar file, or records a first one.
func (s *userService) UpdateAvatar(ctx context.Context, principal *models.Principal, upload Upload) (*models.User, error) {
	user, err := s.GetProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	if user.ImageID != nil {
		if _, err := s.avatars.Replace(ctx, *user.ImageID, upload); err != nil {
			return nil, err
		}
		return user, nil
	}

	image, err := s.avatars.Save(ctx, upload)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateImage(ctx, user.ID, image.ID); err != nil {
		s.avatars.Discard(ctx, image)
		return nil, err
	}

	user.ImageID = &image.ID
	return user, nil
}

func (s *userService) GetAvatar(ctx context.Context, userID int64) (*ImageData, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.ImageID == nil {
		if s.defaultAvatar == nil {
			return nil, models.ErrImageNotFound
		}
		return s.defaultAvatar.Read(ctx)
	}

	return s.avatars.Read(ctx, *user.ImageID)
}
