package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"adboard/internal/config"
	"adboard/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOClient connects to MinIO and makes sure the configured bucket exists.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return client, nil
}

// NewMinIOStorage stores objects under prefix, e.g. "ads/" or "avatars/".
func NewMinIOStorage(client *minio.Client, bucket, prefix string) *MinIOStorage {
	return &MinIOStorage{client: client, bucket: bucket, prefix: prefix}
}

func (m *MinIOStorage) Store(ctx context.Context, data []byte, originalFilename, contentType string) (*Stored, error) {
	objectName := m.prefix + generateName(originalFilename)

	// S3 has no create-exclusive put, so check first
	_, err := m.client.StatObject(ctx, m.bucket, objectName, minio.StatObjectOptions{})
	if err == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrFileExists, objectName)
	}
	if !isNoSuchKey(err) {
		return nil, fmt.Errorf("%w: failed to stat object: %v", models.ErrStorage, err)
	}

	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": originalFilename,
				"uploaded-at":       time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upload to MinIO: %v", models.ErrStorage, err)
	}

	return &Stored{
		Path:        objectName,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (m *MinIOStorage) Replace(ctx context.Context, existingPath string, data []byte, originalFilename, contentType string) (*Stored, error) {
	if existingPath != "" {
		err := m.client.RemoveObject(ctx, m.bucket, existingPath, minio.RemoveObjectOptions{})
		if err != nil && !isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: failed to remove from MinIO: %v", models.ErrStorage, err)
		}
	}

	return m.Store(ctx, data, originalFilename, contentType)
}

func (m *MinIOStorage) Read(ctx context.Context, path string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, m.readError(path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, m.readError(path, err)
	}

	return data, nil
}

func (m *MinIOStorage) Delete(ctx context.Context, path string) error {
	if _, err := m.client.StatObject(ctx, m.bucket, path, minio.StatObjectOptions{}); err != nil {
		return m.readError(path, err)
	}

	err := m.client.RemoveObject(ctx, m.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to remove from MinIO: %v", models.ErrStorage, err)
	}

	return nil
}

func (m *MinIOStorage) readError(path string, err error) error {
	if isNoSuchKey(err) {
		return fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: failed to read from MinIO: %v", models.ErrStorage, err)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
