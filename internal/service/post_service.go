package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"millage/internal/cache"
	"millage/internal/common"
	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/repository"
	"millage/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, viewer *models.CurrentUser, boardID int64, req models.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, viewer *models.CurrentUser, postID int64) (*models.Post, error)
	DeletePost(ctx context.Context, viewer *models.CurrentUser, postID int64) error
	AddComment(ctx context.Context, viewer *models.CurrentUser, postID int64, req models.CreateCommentRequest) (*models.Comment, error)
	AddImage(ctx context.Context, viewer *models.CurrentUser, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, viewer *models.CurrentUser, postID int64, imageID string) error
}

type postService struct {
	boardRepo   repository.BoardRepository
	postRepo    repository.PostRepository
	imageRepo   repository.ImageRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	relations   *relationLoader
	storage     storage.Storage
	pageCache   cache.PageCache
}

func NewPostService(rep *repository.Repository, storage storage.Storage, pageCache cache.PageCache) PostService {
	return &postService{
		boardRepo:   rep.Board,
		postRepo:    rep.Post,
		imageRepo:   rep.Image,
		commentRepo: rep.Comment,
		userRepo:    rep.User,
		relations:   newRelationLoader(rep.User, rep.Image, rep.Comment),
		storage:     storage,
		pageCache:   pageCache,
	}
}

func (p *postService) CreatePost(ctx context.Context, viewer *models.CurrentUser, boardID int64, req models.CreatePostRequest) (*models.Post, error) {
	if viewer == nil {
		return nil, common.ErrUnauthorized
	}

	board, err := p.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if board.AuthorityToWrite == models.AuthorityAdmin && !viewer.IsAdmin() {
		return nil, fmt.Errorf("write to board %d: %w", boardID, common.ErrForbidden)
	}

	postType := req.PostType
	if postType == "" {
		postType = models.PostTypeNormal
	}

	switch {
	case postType == models.PostTypeRecruit && !board.AllowRecruit:
		return nil, fmt.Errorf("board %d does not allow recruiting: %w", boardID, common.ErrInvalidInput)
	case postType == models.PostTypePoll && !board.AllowPoll:
		return nil, fmt.Errorf("board %d does not allow polls: %w", boardID, common.ErrInvalidInput)
	case postType == models.PostTypeRecruit && req.TotalMember < 1:
		return nil, fmt.Errorf("recruit needs at least one member: %w", common.ErrInvalidInput)
	}

	writer, err := p.writer(ctx, viewer)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		BoardID:  boardID,
		UserID:   viewer.UserID,
		PostType: postType,
		Title:    req.Title,
		Content:  req.Content,
	}

	if postType == models.PostTypeRecruit {
		err = p.postRepo.CreateWithRecruit(ctx, post, req.TotalMember)
	} else {
		err = p.postRepo.Create(ctx, post)
	}
	if err != nil {
		return nil, err
	}

	invalidatePages(ctx, p.pageCache, boardID)

	post.Writer = writer
	post.Images = []models.Image{}
	post.Comments = []models.Comment{}

	logger.Get().Info().Int64("post_id", post.PostID).Int64("board_id", boardID).Msg("post created")
	return post, nil
}

func (p *postService) GetPost(ctx context.Context, viewer *models.CurrentUser, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	board, err := p.boardRepo.GetByID(ctx, post.BoardID)
	if err != nil {
		return nil, err
	}

	posts := []models.Post{*post}
	if err := p.relations.Load(ctx, posts); err != nil {
		return nil, err
	}

	if !board.IsPublicWriter {
		maskWriters(posts, viewer)
	}

	return &posts[0], nil
}

func (p *postService) DeletePost(ctx context.Context, viewer *models.CurrentUser, postID int64) error {
	post, err := p.ownedPost(ctx, viewer, postID, true)
	if err != nil {
		return err
	}

	images, err := p.imageRepo.GetByPostIDs(ctx, []int64{postID})
	if err != nil {
		return err
	}

	// images rows go with the post through ON DELETE CASCADE
	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	for _, img := range images {
		if err := p.storage.DeleteImage(ctx, img.ObjectKey); err != nil {
			logger.Get().Warn().Err(err).Str("object", img.ObjectKey).Msg("could not remove image object")
		}
	}

	invalidatePages(ctx, p.pageCache, post.BoardID)
	return nil
}

func (p *postService) AddComment(ctx context.Context, viewer *models.CurrentUser, postID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	if viewer == nil {
		return nil, common.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	writer, err := p.writer(ctx, viewer)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  viewer.UserID,
		Content: req.Content,
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Writer = writer

	invalidatePages(ctx, p.pageCache, post.BoardID)
	return comment, nil
}

func (p *postService) AddImage(ctx context.Context, viewer *models.CurrentUser, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	post, err := p.ownedPost(ctx, viewer, postID, false)
	if err != nil {
		return nil, err
	}

	board, err := p.boardRepo.GetByID(ctx, post.BoardID)
	if err != nil {
		return nil, err
	}
	if !board.AllowImage {
		return nil, fmt.Errorf("board %d does not allow images: %w", board.BoardID, common.ErrInvalidInput)
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	image := &models.Image{
		ImageID:   uuid.New().String(),
		PostID:    postID,
		ImageURL:  imageURL,
		ObjectKey: objectName,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.imageRepo.Create(ctx, image); err != nil {
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			logger.Get().Warn().Err(delErr).Str("object", objectName).Msg("could not roll back uploaded image")
		}
		return nil, err
	}

	invalidatePages(ctx, p.pageCache, post.BoardID)
	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, viewer *models.CurrentUser, postID int64, imageID string) error {
	post, err := p.ownedPost(ctx, viewer, postID, false)
	if err != nil {
		return err
	}

	image, err := p.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.PostID != postID {
		return fmt.Errorf("image %s on post %d: %w", imageID, postID, common.ErrNotFound)
	}

	if err := p.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}

	if err := p.storage.DeleteImage(ctx, image.ObjectKey); err != nil {
		logger.Get().Warn().Err(err).Str("object", image.ObjectKey).Msg("could not remove image object")
	}

	invalidatePages(ctx, p.pageCache, post.BoardID)
	return nil
}

// writer loads the viewer's user row. A session whose user is gone is
// treated as signed out.
func (p *postService) writer(ctx context.Context, viewer *models.CurrentUser) (*models.User, error) {
	user, err := p.userRepo.GetByID(ctx, viewer.UserID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("session user %d: %w", viewer.UserID, common.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ownedPost loads a post the viewer wrote. allowAdmin lets admins act on any post.
func (p *postService) ownedPost(ctx context.Context, viewer *models.CurrentUser, postID int64, allowAdmin bool) (*models.Post, error) {
	if viewer == nil {
		return nil, common.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != viewer.UserID && !(allowAdmin && viewer.IsAdmin()) {
		return nil, fmt.Errorf("post %d: %w", postID, common.ErrForbidden)
	}

	return post, nil
}
