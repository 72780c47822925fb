package service

import (
	"context"
	"fmt"

	"millage/internal/cache"
	"millage/internal/common"
	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/repository"
)

const anonymousWriter = "anonymous"

type BoardService interface {
	GetBoardData(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.Board, error)
	GetBoardPosts(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.PaginationObject[models.Post], error)
	GetBoardList(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error)
	GetBoardListWithPosts(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error)
	CreateBoard(ctx context.Context, viewer *models.CurrentUser, req models.CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, viewer *models.CurrentUser, req models.UpdateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, viewer *models.CurrentUser, boardID, unitID int64) error
	ToggleStar(ctx context.Context, viewer *models.CurrentUser, boardID int64) (bool, error)
	GetRecruitList(ctx context.Context, unitID int64) ([]models.RecruitSummary, error)
}

type boardService struct {
	boardRepo   repository.BoardRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	recruitRepo repository.RecruitRepository
	relations   *relationLoader
	pages       QueryBuilder
	pageCache   cache.PageCache
}

func NewBoardService(rep *repository.Repository, pages QueryBuilder, pageCache cache.PageCache) BoardService {
	return &boardService{
		boardRepo:   rep.Board,
		postRepo:    rep.Post,
		userRepo:    rep.User,
		recruitRepo: rep.Recruit,
		relations:   newRelationLoader(rep.User, rep.Image, rep.Comment),
		pages:       pages,
		pageCache:   pageCache,
	}
}

func (s *boardService) GetBoardData(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	starred, err := s.starredSet(ctx, viewer)
	if err != nil {
		return nil, err
	}
	board.IsStarred = starred[board.BoardID]

	board.PaginationObject, err = s.pages.ComputePage(ctx, board.BoardID, searchKeyword, page)
	if err != nil {
		return nil, err
	}

	if !board.IsPublicWriter {
		board.PaginationObject = maskedPage(board.PaginationObject, viewer)
	}

	return board, nil
}

// GetBoardPosts is the page of GetBoardData without the board envelope.
// Writers are masked the same way.
func (s *boardService) GetBoardPosts(ctx context.Context, viewer *models.CurrentUser, boardID int64, page int, searchKeyword string) (*models.PaginationObject[models.Post], error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	obj, err := s.pages.ComputePage(ctx, board.BoardID, searchKeyword, page)
	if err != nil {
		return nil, err
	}

	if !board.IsPublicWriter {
		obj = maskedPage(obj, viewer)
	}

	return obj, nil
}

func (s *boardService) GetBoardList(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error) {
	boards, err := s.boardRepo.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}

	starred, err := s.starredSet(ctx, viewer)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		boards[i].IsStarred = starred[boards[i].BoardID]
	}

	return boards, nil
}

// GetBoardListWithPosts returns the unit's boards, each with its oldest posts
// as a preview.
func (s *boardService) GetBoardListWithPosts(ctx context.Context, viewer *models.CurrentUser, unitID int64) ([]models.Board, error) {
	boards, err := s.GetBoardList(ctx, viewer, unitID)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		board := &boards[i]

		posts, err := s.postRepo.FetchPage(ctx, models.PostFilter{BoardID: board.BoardID}, 0, PostsPerBoardPreview)
		if err != nil {
			return nil, err
		}

		if err := s.relations.Load(ctx, posts); err != nil {
			return nil, err
		}

		if !board.IsPublicWriter {
			maskWriters(posts, viewer)
		}
		board.Posts = posts
	}

	return boards, nil
}

func (s *boardService) CreateBoard(ctx context.Context, viewer *models.CurrentUser, req models.CreateBoardRequest) (*models.Board, error) {
	if err := requireUnitAdmin(viewer, req.UnitID); err != nil {
		return nil, err
	}

	board := boardFromRequest(req)

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	logger.Get().Info().Int64("board_id", board.BoardID).Int64("unit_id", board.UnitID).Msg("board created")
	return board, nil
}

func (s *boardService) UpdateBoard(ctx context.Context, viewer *models.CurrentUser, req models.UpdateBoardRequest) (*models.Board, error) {
	if err := requireUnitAdmin(viewer, req.UnitID); err != nil {
		return nil, err
	}

	board := boardFromRequest(req.CreateBoardRequest)
	board.BoardID = req.BoardID

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}

	return s.boardRepo.GetByID(ctx, board.BoardID)
}

func (s *boardService) DeleteBoard(ctx context.Context, viewer *models.CurrentUser, boardID, unitID int64) error {
	if err := requireUnitAdmin(viewer, unitID); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(ctx, boardID, unitID); err != nil {
		return err
	}

	invalidatePages(ctx, s.pageCache, boardID)
	return nil
}

// ToggleStar flips the viewer's star on a board and returns the new state.
func (s *boardService) ToggleStar(ctx context.Context, viewer *models.CurrentUser, boardID int64) (bool, error) {
	if viewer == nil {
		return false, common.ErrUnauthorized
	}

	removed, err := s.userRepo.RemoveStar(ctx, viewer.UserID, boardID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	if _, err := s.boardRepo.GetByID(ctx, boardID); err != nil {
		return false, err
	}

	if err := s.userRepo.AddStar(ctx, viewer.UserID, boardID); err != nil {
		return false, err
	}

	return true, nil
}

func (s *boardService) GetRecruitList(ctx context.Context, unitID int64) ([]models.RecruitSummary, error) {
	return s.recruitRepo.LatestByUnit(ctx, unitID, RecruitListSize)
}

func (s *boardService) starredSet(ctx context.Context, viewer *models.CurrentUser) (map[int64]bool, error) {
	set := make(map[int64]bool)
	if viewer == nil {
		return set, nil
	}

	ids, err := s.userRepo.StarredBoardIDs(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}

func requireUnitAdmin(viewer *models.CurrentUser, unitID int64) error {
	if viewer == nil {
		return common.ErrUnauthorized
	}
	if !viewer.IsAdmin() || viewer.UnitID != unitID {
		return fmt.Errorf("manage boards of unit %d: %w", unitID, common.ErrForbidden)
	}
	return nil
}

func boardFromRequest(req models.CreateBoardRequest) *models.Board {
	return &models.Board{
		UnitID:           req.UnitID,
		Name:             req.Name,
		AuthorityToWrite: req.AuthorityToWrite,
		AllowImage:       req.AllowImage,
		AllowPoll:        req.AllowPoll,
		AllowRecruit:     req.AllowRecruit,
		IsPublicWriter:   req.IsPublicWriter,
	}
}

// maskWriters hides who wrote each post on a board with anonymous writers.
// Viewers still see their own name.
func maskWriters(posts []models.Post, viewer *models.CurrentUser) {
	for i := range posts {
		w := posts[i].Writer
		if w == nil {
			continue
		}
		if viewer != nil && viewer.UserID == w.UserID {
			continue
		}
		posts[i].Writer = &models.User{Nickname: anonymousWriter}
	}
}

// maskedPage masks a copy of the page's results. Pages can come from the
// shared cache and must not be masked in place.
func maskedPage(obj *models.PaginationObject[models.Post], viewer *models.CurrentUser) *models.PaginationObject[models.Post] {
	masked := *obj
	masked.Results = make([]models.Post, len(obj.Results))
	copy(masked.Results, obj.Results)
	maskWriters(masked.Results, viewer)
	return &masked
}

func invalidatePages(ctx context.Context, pageCache cache.PageCache, boardID int64) {
	if err := pageCache.InvalidateBoard(ctx, boardID); err != nil {
		logger.Get().Warn().Err(err).Int64("board_id", boardID).Msg("page cache invalidation failed")
	}
}
