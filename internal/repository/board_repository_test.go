package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"millage/internal/common"
	"millage/internal/models"
)

var boardRowColumns = []string{"id", "unit_id", "name", "authority_to_write", "allow_image", "allow_poll", "allow_recruit", "is_public_writer", "created_at"}

func TestBoardRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM boards WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(boardRowColumns).
			AddRow(3, 1, "notice", "admin", true, false, true, false, time.Now()))

	board, err := NewBoardRepository(db).GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "notice", board.Name)
	assert.Equal(t, models.AuthorityAdmin, board.AuthorityToWrite)
	assert.True(t, board.AllowRecruit)
	assert.False(t, board.IsPublicWriter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO boards`).
		WithArgs(int64(1), "free", models.AuthorityAll, false, false, false, true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	board := &models.Board{UnitID: 1, Name: "free", IsPublicWriter: true}
	err := NewBoardRepository(db).Create(context.Background(), board)

	require.NoError(t, err)
	assert.Equal(t, int64(8), board.BoardID)
	assert.Equal(t, models.AuthorityAll, board.AuthorityToWrite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_DeleteScopedToUnit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM boards WHERE id = \$1 AND unit_id = \$2`).
		WithArgs(int64(3), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewBoardRepository(db).Delete(context.Background(), 3, 99)

	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_ListByUnit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM boards WHERE unit_id = \$1 ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(boardRowColumns).
			AddRow(1, 1, "notice", "admin", false, false, false, true, time.Now()).
			AddRow(2, 1, "free", "all", true, true, true, true, time.Now()))

	boards, err := NewBoardRepository(db).ListByUnit(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "free", boards[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
