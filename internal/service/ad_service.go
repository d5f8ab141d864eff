package service

import (
	"context"

	"adboard/internal/models"
	"adboard/internal/repository"

	"go.uber.org/zap"
)

type CreateAdRequest struct {
	Title       string
	Description string
	Price       int
	Image       Upload
}

type UpdateAdRequest struct {
	Title       string
	Description string
	Price       int
}

type AdService interface {
	ListAll(ctx context.Context) ([]models.Ad, error)
	ListMine(ctx context.Context, principal *models.Principal) ([]models.Ad, error)
	GetDetail(ctx context.Context, adID int64) (*models.AdDetails, error)
	Create(ctx context.Context, principal *models.Principal, req CreateAdRequest) (*models.Ad, error)
	Update(ctx context.Context, principal *models.Principal, adID int64, req UpdateAdRequest) (*models.Ad, error)
	UpdateImage(ctx context.Context, principal *models.Principal, adID int64, upload Upload) (*models.Ad, error)
	Delete(ctx context.Context, principal *models.Principal, adID int64) error
	GetImage(ctx context.Context, adID int64) (*ImageData, error)
}

type adService struct {
	adRepo repository.AdRepository
	images *ImageService
	log    *zap.Logger
}

func NewAdService(adRepo repository.AdRepository, images *ImageService, log *zap.Logger) AdService {
	return &adService{
		adRepo: adRepo,
		images: images,
		log:    log,
	}
}

func (s *adService) ListAll(ctx context.Context) ([]models.Ad, error) {
	return s.adRepo.GetAll(ctx)
}

func (s *adService) ListMine(ctx context.Context, principal *models.Principal) ([]models.Ad, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return s.adRepo.GetByAuthorID(ctx, principal.ID)
}

func (s *adService) GetDetail(ctx context.Context, adID int64) (*models.AdDetails, error) {
	return s.adRepo.GetDetails(ctx, adID)
}

func (s *adService) Create(ctx context.Context, principal *models.Principal, req CreateAdRequest) (*models.Ad, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	image, err := s.images.Save(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	ad := &models.Ad{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageID:     &image.ID,
		AuthorID:    principal.ID,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		s.images.Discard(ctx, image)
		return nil, err
	}

	s.log.Info("ad created", zap.Int64("ad_id", ad.ID), zap.Int64("author_id", ad.AuthorID))
	return ad, nil
}

func (s *adService) Update(ctx context.Context, principal *models.Principal, adID int64, req UpdateAdRequest) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if err := authorize(principal, ad.AuthorID); err != nil {
		return nil, err
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.Price = req.Price

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *adService) UpdateImage(ctx context.Context, principal *models.Principal, adID int64, upload Upload) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if err := authorize(principal, ad.AuthorID); err != nil {
		return nil, err
	}

	if ad.ImageID != nil {
		if _, err := s.images.Replace(ctx, *ad.ImageID, upload); err != nil {
			return nil, err
		}
		return ad, nil
	}

	image, err := s.images.Save(ctx, upload)
	if err != nil {
		return nil, err
	}

	if err := s.adRepo.UpdateImage(ctx, ad.ID, image.ID); err != nil {
		s.images.Discard(ctx, image)
		return nil, err
	}

	ad.ImageID = &image.ID
	return ad, nil
}

// Delete removes the ad with its comments and image record in one
// transaction. The image file goes after commit.
func (s *adService) Delete(ctx context.Context, principal *models.Principal, adID int64) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	if err := authorize(principal, ad.AuthorID); err != nil {
		return err
	}

	var imagePath string
	if ad.ImageID != nil {
		imagePath, err = s.images.Path(ctx, *ad.ImageID)
		if err != nil {
			s.log.Warn("ad image record missing", zap.Int64("ad_id", ad.ID), zap.Error(err))
		}
	}

	if err := s.adRepo.DeleteWithComments(ctx, ad); err != nil {
		return err
	}

	if imagePath != "" {
		s.images.RemoveFile(ctx, imagePath)
	}

	s.log.Info("ad deleted", zap.Int64("ad_id", ad.ID), zap.Int64("by", principal.ID))
	return nil
}

func (s *adService) GetImage(ctx context.Context, adID int64) (*ImageData, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if ad.ImageID == nil {
		return nil, models.ErrImageNotFound
	}

	return s.images.Read(ctx, *ad.ImageID)
}
