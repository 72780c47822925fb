package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"millage/internal/models"
)

const boardColumns = `id, unit_id, name, authority_to_write, allow_image, allow_poll, allow_recruit, is_public_writer, created_at`

type BoardRepositoryImpl struct {
	db *sqlx.DB
}

func NewBoardRepository(db *sqlx.DB) *BoardRepositoryImpl {
	return &BoardRepositoryImpl{db: db}
}

func (r *BoardRepositoryImpl) GetByID(ctx context.Context, boardID int64) (*models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

	var board models.Board
	err := r.db.GetContext(ctx, &board, query, boardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("board", boardID)
		}
		return nil, storageErr("get board", err)
	}

	return &board, nil
}

func (r *BoardRepositoryImpl) ListByUnit(ctx context.Context, unitID int64) ([]models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE unit_id = $1 ORDER BY id`

	boards := []models.Board{}
	if err := r.db.SelectContext(ctx, &boards, query, unitID); err != nil {
		return nil, storageErr("list boards", err)
	}

	return boards, nil
}

func (r *BoardRepositoryImpl) Create(ctx context.Context, board *models.Board) error {
	query := `
		INSERT INTO boards
		(unit_id, name, authority_to_write, allow_image, allow_poll, allow_recruit, is_public_writer, created_at)
		VALUES
		(:unit_id, :name, :authority_to_write, :allow_image, :allow_poll, :allow_recruit, :is_public_writer, :created_at)
		RETURNING id
	`

	if board.AuthorityToWrite == "" {
		board.AuthorityToWrite = models.AuthorityAll
	}
	board.CreatedAt = time.Now().UTC()

	rows, err := r.db.NamedQueryContext(ctx, query, board)
	if err != nil {
		return storageErr("create board", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&board.BoardID); err != nil {
			return storageErr("create board", err)
		}
	}

	return rows.Err()
}

// Update only touches a board that belongs to board.UnitID.
func (r *BoardRepositoryImpl) Update(ctx context.Context, board *models.Board) error {
	query := `
		UPDATE boards SET
			name = :name,
			authority_to_write = :authority_to_write,
			allow_image = :allow_image,
			allow_poll = :allow_poll,
			allow_recruit = :allow_recruit,
			is_public_writer = :is_public_writer
		WHERE id = :id AND unit_id = :unit_id
	`

	result, err := r.db.NamedExecContext(ctx, query, board)
	if err != nil {
		return storageErr("update board", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageErr("update board", err)
	}

	if rowsAffected == 0 {
		return notFound("board", board.BoardID)
	}

	return nil
}

func (r *BoardRepositoryImpl) Delete(ctx context.Context, boardID, unitID int64) error {
	query := `DELETE FROM boards WHERE id = $1 AND unit_id = $2`

	result, err := r.db.ExecContext(ctx, query, boardID, unitID)
	if err != nil {
		return storageErr("delete board", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete board", err)
	}

	if rowsAffected == 0 {
		return notFound("board", boardID)
	}

	return nil
}
