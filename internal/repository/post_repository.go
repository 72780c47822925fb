package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"millage/internal/models"
)

const postColumns = `id, board_id, user_id, post_type, title, content, created_at`

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a keyword into a LIKE pattern that matches it as a
// literal substring.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// filterClause renders the WHERE clause for a PostFilter. Title and content are
// OR'd inside a single predicate, so a row matching both is still one row.
func filterClause(filter models.PostFilter) (string, []interface{}) {
	if filter.Keyword == "" {
		return `board_id = $1`, []interface{}{filter.BoardID}
	}

	return `board_id = $1 AND (title LIKE $2 ESCAPE '\' OR content LIKE $2 ESCAPE '\')`,
		[]interface{}{filter.BoardID, containsPattern(filter.Keyword)}
}

func (r *PostRepositoryImpl) CountMatching(ctx context.Context, filter models.PostFilter) (int, error) {
	where, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM posts WHERE ` + where

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, storageErr("count posts", err)
	}

	return count, nil
}

// FetchPage returns matching posts ordered by creation time, oldest first.
// The id tiebreak keeps the order stable for posts created in the same instant.
func (r *PostRepositoryImpl) FetchPage(ctx context.Context, filter models.PostFilter, offset, limit int) ([]models.Post, error) {
	where, args := filterClause(filter)
	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		WHERE %s
		ORDER BY created_at ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, n+1, n+2)
	args = append(args, limit, offset)

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, storageErr("fetch posts", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if err := insertPost(ctx, r.db, post); err != nil {
		return storageErr("create post", err)
	}
	return nil
}

// CreateWithRecruit inserts a RECRUIT post and its recruit row in one
// transaction. Either both rows exist afterwards or neither does.
func (r *PostRepositoryImpl) CreateWithRecruit(ctx context.Context, post *models.Post, totalMember int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin recruit post", err)
	}
	defer tx.Rollback()

	post.PostType = models.PostTypeRecruit
	if err := insertPost(ctx, tx, post); err != nil {
		return storageErr("create recruit post", err)
	}

	query := `INSERT INTO recruits (post_id, status, total_member) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, query, post.PostID, models.RecruitProgress, totalMember); err != nil {
		return storageErr("create recruit", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit recruit post", err)
	}

	return nil
}

func insertPost(ctx context.Context, q sqlx.QueryerContext, post *models.Post) error {
	query := `
		INSERT INTO posts (board_id, user_id, post_type, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if post.PostType == "" {
		post.PostType = models.PostTypeNormal
	}
	post.CreatedAt = time.Now().UTC()

	return q.QueryRowxContext(ctx, query,
		post.BoardID,
		post.UserID,
		post.PostType,
		post.Title,
		post.Content,
		post.CreatedAt,
	).Scan(&post.PostID)
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("post", postID)
		}
		return nil, storageErr("get post", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return storageErr("delete post", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete post", err)
	}

	if rowsAffected == 0 {
		return notFound("post", postID)
	}

	return nil
}
