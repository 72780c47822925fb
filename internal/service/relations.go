package service

import (
	"context"

	"millage/internal/models"
	"millage/internal/repository"
)

// relationLoader resolves the writer, images and comments of a batch of posts
// with one query per relation.
type relationLoader struct {
	users    repository.UserRepository
	images   repository.ImageRepository
	comments repository.CommentRepository
}

func newRelationLoader(users repository.UserRepository, images repository.ImageRepository, comments repository.CommentRepository) *relationLoader {
	return &relationLoader{users: users, images: images, comments: comments}
}

func (l *relationLoader) Load(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.PostID)
	}

	images, err := l.images.GetByPostIDs(ctx, postIDs)
	if err != nil {
		return err
	}

	comments, err := l.comments.GetByPostIDs(ctx, postIDs)
	if err != nil {
		return err
	}

	userIDs := uniqueUserIDs(posts, comments)
	users, err := l.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	usersByID := make(map[int64]models.User, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}

	imagesByPost := make(map[int64][]models.Image)
	for _, img := range images {
		imagesByPost[img.PostID] = append(imagesByPost[img.PostID], img)
	}

	commentsByPost := make(map[int64][]models.Comment)
	for _, c := range comments {
		if u, ok := usersByID[c.UserID]; ok {
			c.Writer = &u
		}
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], c)
	}

	for i := range posts {
		p := &posts[i]
		if u, ok := usersByID[p.UserID]; ok {
			p.Writer = &u
		}
		p.Images = nonNil(imagesByPost[p.PostID])
		p.Comments = nonNil(commentsByPost[p.PostID])
	}

	return nil
}

func uniqueUserIDs(posts []models.Post, comments []models.Comment) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(posts))

	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, p := range posts {
		add(p.UserID)
	}
	for _, c := range comments {
		add(c.UserID)
	}

	return ids
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
