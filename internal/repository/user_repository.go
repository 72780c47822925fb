package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"millage/internal/models"
)

const userColumns = `id, username, nickname, unit_id, role, created_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("user", userID)
		}
		return nil, storageErr("get user", err)
	}

	return &user, nil
}

// GetByIDs loads a batch of users in one round trip; missing ids are skipped.
func (r *userRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]models.User, error) {
	users := []models.User{}
	if len(userIDs) == 0 {
		return users, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	if err := r.db.SelectContext(ctx, &users, query, pq.Array(userIDs)); err != nil {
		return nil, storageErr("get users", err)
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, nickname, unit_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if user.Role == "" {
		user.Role = models.RoleMember
	}
	user.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.Nickname, user.UnitID, user.Role, user.CreatedAt,
	).Scan(&user.UserID)
	if err != nil {
		return storageErr("create user", err)
	}

	return nil
}

func (r *userRepository) StarredBoardIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT board_id FROM starred_boards WHERE user_id = $1`

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, storageErr("get starred boards", err)
	}

	return ids, nil
}

func (r *userRepository) AddStar(ctx context.Context, userID, boardID int64) error {
	query := `
		INSERT INTO starred_boards (user_id, board_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID, boardID); err != nil {
		return storageErr("star board", err)
	}

	return nil
}

// RemoveStar reports whether a star existed.
func (r *userRepository) RemoveStar(ctx context.Context, userID, boardID int64) (bool, error) {
	query := `DELETE FROM starred_boards WHERE user_id = $1 AND board_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, boardID)
	if err != nil {
		return false, storageErr("unstar board", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("unstar board", err)
	}

	return rowsAffected > 0, nil
}
