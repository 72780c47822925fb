package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"millage/internal/models"
)

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) GetBoardData(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.Board, error) {
	args := m.Called(ctx, viewer, boardID, page, searchKeyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) GetBoardPosts(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.PaginationObject[models.Post], error) {
	args := m.Called(ctx, viewer, boardID, page, searchKeyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaginationObject[models.Post]), args.Error(1)
}

func (m *MockBoardService) GetBoardList(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error) {
	args := m.Called(ctx, viewer, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Board), args.Error(1)
}

func (m *MockBoardService) GetBoardListWithPosts(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error) {
	args := m.Called(ctx, viewer, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Board), args.Error(1)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, viewer *models.CurrentUser, req models.CreateBoardRequest) (*models.Board, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, viewer *models.CurrentUser, req models.UpdateBoardRequest) (*models.Board, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, viewer *models.CurrentUser, boardID, unitID int64) error {
	args := m.Called(ctx, viewer, boardID, unitID)
	return args.Error(0)
}

func (m *MockBoardService) ToggleStar(ctx context.Context, viewer *models.CurrentUser, boardID int64) (bool, error) {
	args := m.Called(ctx, viewer, boardID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardService) GetRecruitList(ctx context.Context, unitID int64) ([]models.RecruitSummary, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecruitSummary), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, viewer *models.CurrentUser, boardID int64, req models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, viewer, boardID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, viewer *models.CurrentUser, postID int64) (*models.Post, error) {
	args := m.Called(ctx, viewer, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, viewer *models.CurrentUser, postID int64) error {
	args := m.Called(ctx, viewer, postID)
	return args.Error(0)
}

func (m *MockPostService) AddComment(ctx context.Context, viewer *models.CurrentUser, postID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, viewer, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockPostService) AddImage(ctx context.Context, viewer *models.CurrentUser, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, viewer, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockPostService) DeleteImage(ctx context.Context, viewer *models.CurrentUser, postID int64, imageID string) error {
	args := m.Called(ctx, viewer, postID, imageID)
	return args.Error(0)
}

type MockQueryBuilder struct {
	mock.Mock
}

func (m *MockQueryBuilder) ComputePage(ctx context.Context, boardID int64, searchKeyword string, curPage int) (*models.PaginationObject[models.Post], error) {
	args := m.Called(ctx, boardID, searchKeyword, curPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaginationObject[models.Post]), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) GetByID(ctx context.Context, boardID int64) (*models.Board, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) ListByUnit(ctx context.Context, unitID int64) ([]models.Board, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Board), args.Error(1)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *models.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *models.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, boardID, unitID int64) error {
	args := m.Called(ctx, boardID, unitID)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
