package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"millage/internal/models"
	"millage/internal/repository"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CountMatching(ctx context.Context, filter models.PostFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) FetchPage(ctx context.Context, filter models.PostFilter, offset, limit int) ([]models.Post, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) CreateWithRecruit(ctx context.Context, post *models.Post, totalMember int) error {
	args := m.Called(ctx, post, totalMember)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]models.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) StarredBoardIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) AddStar(ctx context.Context, userID, boardID int64) error {
	args := m.Called(ctx, userID, boardID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveStar(ctx context.Context, userID, boardID int64) (bool, error) {
	args := m.Called(ctx, userID, boardID)
	return args.Bool(0), args.Error(1)
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

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) GetByImageID(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageRepository) GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Image, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockImageRepository) Delete(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockRecruitRepository struct {
	mock.Mock
}

func (m *MockRecruitRepository) LatestByUnit(ctx context.Context, unitID int64, limit int) ([]models.RecruitSummary, error) {
	args := m.Called(ctx, unitID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecruitSummary), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) Get(ctx context.Context, boardID int64, keyword string, page int) (*models.PaginationObject[models.Post], int64, error) {
	args := m.Called(ctx, boardID, keyword, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*models.PaginationObject[models.Post]), args.Get(1).(int64), args.Error(2)
}

func (m *MockPageCache) Set(ctx context.Context, boardID, version int64, keyword string, page int, obj *models.PaginationObject[models.Post]) error {
	args := m.Called(ctx, boardID, version, keyword, page, obj)
	return args.Error(0)
}

func (m *MockPageCache) InvalidateBoard(ctx context.Context, boardID int64) error {
	args := m.Called(ctx, boardID)
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

type testRepository struct {
	rep      *repository.Repository
	posts    *MockPostRepository
	users    *MockUserRepository
	boards   *MockBoardRepository
	images   *MockImageRepository
	comments *MockCommentRepository
	recruits *MockRecruitRepository
}

func newTestRepository() *testRepository {
	tr := &testRepository{
		posts:    new(MockPostRepository),
		users:    new(MockUserRepository),
		boards:   new(MockBoardRepository),
		images:   new(MockImageRepository),
		comments: new(MockCommentRepository),
		recruits: new(MockRecruitRepository),
	}
	tr.rep = &repository.Repository{
		User:    tr.users,
		Board:   tr.boards,
		Post:    tr.posts,
		Image:   tr.images,
		Comment: tr.comments,
		Recruit: tr.recruits,
	}
	return tr
}

// withEmptyRelations makes relation loading succeed with no images, comments
// or writers.
func (tr *testRepository) withEmptyRelations() *testRepository {
	tr.images.On("GetByPostIDs", mock.Anything, mock.Anything).Return([]models.Image{}, nil).Maybe()
	tr.comments.On("GetByPostIDs", mock.Anything, mock.Anything).Return([]models.Comment{}, nil).Maybe()
	tr.users.On("GetByIDs", mock.Anything, mock.Anything).Return([]models.User{}, nil).Maybe()
	return tr
}
