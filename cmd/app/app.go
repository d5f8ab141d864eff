package app

import (
	"context"
	"fmt"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/repository"
	"adboard/internal/service"
	"adboard/internal/storage"

	"go.uber.org/zap"
)

const (
	adImagesPrefix = "ads/"
	avatarsPrefix  = "avatars/"
)

func App(ctx context.Context, cfg *config.Config, log *zap.Logger) (*database.DB, *repository.Repository, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	stores, err := NewStores(ctx, cfg, log)
	if err != nil {
		db.CloseDB()
		return nil, nil, nil, err
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, stores, log)

	return db, repo, services, nil
}

// NewStores builds the ad image and avatar media roots for the configured backend.
func NewStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Stores, error) {
	switch cfg.Media.Backend {
	case config.MediaMinIO:
		client, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return service.Stores{}, fmt.Errorf("failed to initialize MinIO: %w", err)
		}

		log.Info("using MinIO media storage",
			zap.String("endpoint", cfg.MinIO.Endpoint),
			zap.String("bucket", cfg.MinIO.BucketName))

		return service.Stores{
			AdImages: storage.NewMinIOStorage(client, cfg.MinIO.BucketName, adImagesPrefix),
			Avatars:  storage.NewMinIOStorage(client, cfg.MinIO.BucketName, avatarsPrefix),
		}, nil
	default:
		log.Info("using local media storage",
			zap.String("ad_images_dir", cfg.Media.AdImagesDir),
			zap.String("avatars_dir", cfg.Media.AvatarsDir))

		return service.Stores{
			AdImages: storage.NewLocalStorage(cfg.Media.AdImagesDir),
			Avatars:  storage.NewLocalStorage(cfg.Media.AvatarsDir),
		}, nil
	}
}
