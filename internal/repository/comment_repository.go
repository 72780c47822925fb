package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"millage/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	comment.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		comment.PostID, comment.UserID, comment.Content, comment.CreatedAt,
	).Scan(&comment.CommentID)
	if err != nil {
		return storageErr("create comment", err)
	}

	return nil
}

func (r *commentRepository) GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	if len(postIDs) == 0 {
		return comments, nil
	}

	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY created_at, id
	`

	if err := r.db.SelectContext(ctx, &comments, query, pq.Array(postIDs)); err != nil {
		return nil, storageErr("get comments", err)
	}

	return comments, nil
}
