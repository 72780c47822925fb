package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"millage/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (objectName string, imageURL string, err error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	bucket string
	public string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
	}

	return &MinIOClient{
		client: client,
		bucket: cfg.MinIO.BucketName,
		public: strings.TrimSuffix(cfg.MinIO.PublicURL, "/"),
	}, nil
}

// ObjectName lays images out as posts/<post>/<yyyy>/<mm>/<uuid><ext>.
func ObjectName(postID int64, fileName string, now time.Time) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	return fmt.Sprintf("posts/%d/%d/%02d/%s%s",
		postID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)
}

func (m *MinIOClient) UploadImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (string, string, error) {
	now := time.Now()
	objectName := ObjectName(postID, fileName, now)

	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-id":           fmt.Sprint(postID),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload to MinIO: %w", err)
	}

	imageURL := fmt.Sprintf("%s/%s/%s", m.public, m.bucket, objectName)

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove from MinIO: %w", err)
	}
	return nil
}
