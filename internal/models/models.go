package models

import (
	"time"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"

	AuthorityAll   = "all"
	AuthorityAdmin = "admin"

	PostTypeNormal  = "NORMAL"
	PostTypeRecruit = "RECRUIT"
	PostTypePoll    = "POLL"

	RecruitProgress = "PROGRESS"
	RecruitDone     = "DONE"
)

// CurrentUser is the session object handed to services explicitly.
// A nil *CurrentUser is an anonymous viewer.
type CurrentUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	UnitID   int64  `json:"unitId"`
	Role     string `json:"role"`
}

func (u *CurrentUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type User struct {
	UserID    int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Nickname  string    `json:"nickname" db:"nickname"`
	UnitID    *int64    `json:"unitId,omitempty" db:"unit_id"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Unit struct {
	UnitID    int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Board struct {
	BoardID          int64     `json:"id" db:"id"`
	UnitID           int64     `json:"unitId" db:"unit_id"`
	Name             string    `json:"name" db:"name"`
	AuthorityToWrite string    `json:"authorityToWrite" db:"authority_to_write"`
	AllowImage       bool      `json:"allowImage" db:"allow_image"`
	AllowPoll        bool      `json:"allowPoll" db:"allow_poll"`
	AllowRecruit     bool      `json:"allowRecruit" db:"allow_recruit"`
	IsPublicWriter   bool      `json:"isPublicWriter" db:"is_public_writer"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	IsStarred        bool                    `json:"isStarred" db:"-"`
	Posts            []Post                  `json:"posts,omitempty" db:"-"`
	PaginationObject *PaginationObject[Post] `json:"paginationObject,omitempty" db:"-"`
}

type Post struct {
	PostID    int64     `json:"id" db:"id"`
	BoardID   int64     `json:"boardId" db:"board_id"`
	UserID    int64     `json:"-" db:"user_id"`
	PostType  string    `json:"postType" db:"post_type"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Writer   *User     `json:"writer" db:"-"`
	Images   []Image   `json:"images" db:"-"`
	Comments []Comment `json:"comments" db:"-"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	ObjectKey string    `json:"-" db:"object_key"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"-" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Writer *User `json:"writer" db:"-"`
}

// RecruitSummary is one row of the unit recruit list.
type RecruitSummary struct {
	PostID       int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	TotalMember  int    `json:"totalMember" db:"total_member"`
	CurrentCount int    `json:"currentCount" db:"current_count"`
}

// PostFilter selects the posts of one board, optionally narrowed to those whose
// title or content contains Keyword.
type PostFilter struct {
	BoardID int64
	Keyword string
}

// PaginationObject is a computed page of results plus paging metadata.
// It is built fresh for every query and never persisted.
type PaginationObject[T any] struct {
	Results     []T `json:"results"`
	CurPage     int `json:"curPage"`
	TotalCounts int `json:"totalCounts"`
	TotalPages  int `json:"totalPages"`
}

type CreateBoardRequest struct {
	UnitID           int64  `json:"-"`
	Name             string `json:"name" validate:"required,max=100"`
	AuthorityToWrite string `json:"authorityToWrite" validate:"omitempty,oneof=all admin"`
	AllowImage       bool   `json:"allowImage"`
	AllowPoll        bool   `json:"allowPoll"`
	AllowRecruit     bool   `json:"allowRecruit"`
	IsPublicWriter   bool   `json:"isPublicWriter"`
}

type UpdateBoardRequest struct {
	BoardID int64 `json:"-"`
	CreateBoardRequest
}

type CreatePostRequest struct {
	PostType    string `json:"postType" validate:"omitempty,oneof=NORMAL RECRUIT POLL"`
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	TotalMember int    `json:"totalMember" validate:"required_if=PostType RECRUIT,gte=0"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
