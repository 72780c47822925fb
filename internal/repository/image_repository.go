package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"millage/internal/models"
)

type ImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepositoryImpl {
	return &ImageRepositoryImpl{db: db}
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (image_id, post_id, image_url, object_key, created_at)
		VALUES (:image_id, :post_id, :image_url, :object_key, :created_at)
	`

	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}

	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return storageErr("create image", err)
	}

	return nil
}

func (r *ImageRepositoryImpl) GetByImageID(ctx context.Context, imageID string) (*models.Image, error) {
	query := `SELECT image_id, post_id, image_url, object_key, created_at FROM images WHERE image_id = $1`

	var image models.Image
	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("image", imageID)
		}
		return nil, storageErr("get image", err)
	}

	return &image, nil
}

func (r *ImageRepositoryImpl) GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Image, error) {
	images := []models.Image{}
	if len(postIDs) == 0 {
		return images, nil
	}

	query := `
		SELECT image_id, post_id, image_url, object_key, created_at
		FROM images
		WHERE post_id = ANY($1)
		ORDER BY created_at
	`

	if err := r.db.SelectContext(ctx, &images, query, pq.Array(postIDs)); err != nil {
		return nil, storageErr("get images", err)
	}

	return images, nil
}

func (r *ImageRepositoryImpl) Delete(ctx context.Context, imageID string) error {
	query := `DELETE FROM images WHERE image_id = $1`

	result, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return storageErr("delete image", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete image", err)
	}

	if rowsAffected == 0 {
		return notFound("image", imageID)
	}

	return nil
}
