package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"millage/internal/common"
	"millage/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByIDs(ctx context.Context, userIDs []int64) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	StarredBoardIDs(ctx context.Context, userID int64) ([]int64, error)
	AddStar(ctx context.Context, userID, boardID int64) error
	RemoveStar(ctx context.Context, userID, boardID int64) (bool, error)
}

type UnitRepository interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByName(ctx context.Context, name string) (*models.Unit, error)
}

type BoardRepository interface {
	GetByID(ctx context.Context, boardID int64) (*models.Board, error)
	ListByUnit(ctx context.Context, unitID int64) ([]models.Board, error)
	Create(ctx context.Context, board *models.Board) error
	Update(ctx context.Context, board *models.Board) error
	Delete(ctx context.Context, boardID, unitID int64) error
}

// PostRepository is the storage capability the query builder depends on.
type PostRepository interface {
	CountMatching(ctx context.Context, filter models.PostFilter) (int, error)
	FetchPage(ctx context.Context, filter models.PostFilter, offset, limit int) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	CreateWithRecruit(ctx context.Context, post *models.Post, totalMember int) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByImageID(ctx context.Context, imageID string) (*models.Image, error)
	GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Image, error)
	Delete(ctx context.Context, imageID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error)
}

type RecruitRepository interface {
	LatestByUnit(ctx context.Context, unitID int64, limit int) ([]models.RecruitSummary, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Unit    UnitRepository
	Board   BoardRepository
	Post    PostRepository
	Image   ImageRepository
	Comment CommentRepository
	Recruit RecruitRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Unit:    NewUnitRepository(db),
		Board:   NewBoardRepository(db),
		Post:    NewPostRepository(db),
		Image:   NewImageRepository(db),
		Comment: NewCommentRepository(db),
		Recruit: NewRecruitRepository(db),
		Tables:  NewTablesRepository(db),
	}
}

// storageErr tags a driver error so callers can tell it apart from ErrNotFound.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err)
}

func notFound(what string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", what, id, common.ErrNotFound)
}
