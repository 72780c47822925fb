// Package seed loads units, boards, users and demo posts from a YAML file
// into the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"millage/internal/common"
	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/repository"
)

type File struct {
	Units []Unit `yaml:"units" validate:"required,min=1,dive"`
}

type Unit struct {
	Name   string  `yaml:"name" validate:"required"`
	Users  []User  `yaml:"users" validate:"dive"`
	Boards []Board `yaml:"boards" validate:"dive"`
}

type User struct {
	Username string `yaml:"username" validate:"required"`
	Nickname string `yaml:"nickname"`
	Role     string `yaml:"role" validate:"omitempty,oneof=member admin"`
}

type Board struct {
	Name             string `yaml:"name" validate:"required,max=100"`
	AuthorityToWrite string `yaml:"authorityToWrite" validate:"omitempty,oneof=all admin"`
	AllowImage       bool   `yaml:"allowImage"`
	AllowPoll        bool   `yaml:"allowPoll"`
	AllowRecruit     bool   `yaml:"allowRecruit"`
	IsPublicWriter   bool   `yaml:"isPublicWriter"`
	Posts            []Post `yaml:"posts" validate:"dive"`
}

type Post struct {
	Writer  string `yaml:"writer" validate:"required"`
	Title   string `yaml:"title" validate:"required"`
	Content string `yaml:"content"`
	// Repeat inserts the post this many times with a numbered title.
	Repeat int `yaml:"repeat" validate:"gte=0"`
}

// Result lists what Apply created.
type Result struct {
	Units  int
	Boards int
	Posts  int
	Users  []models.CurrentUser
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	return &f, nil
}

// Apply inserts the file's contents. Units that already exist are reused;
// everything else is created. Posts are inserted in file order, so that order
// is also their board order.
func Apply(ctx context.Context, rep *repository.Repository, f *File) (*Result, error) {
	log := logger.Get()
	res := &Result{}

	for _, u := range f.Units {
		unit, err := ensureUnit(ctx, rep.Unit, u.Name)
		if err != nil {
			return nil, err
		}
		res.Units++

		users := make(map[string]int64, len(u.Users))
		for _, su := range u.Users {
			user := &models.User{
				Username: su.Username,
				Nickname: su.Nickname,
				UnitID:   &unit.UnitID,
				Role:     su.Role,
			}
			if user.Nickname == "" {
				user.Nickname = su.Username
			}
			if err := rep.User.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("seed user %q: %w", su.Username, err)
			}
			users[su.Username] = user.UserID
			res.Users = append(res.Users, models.CurrentUser{
				UserID:   user.UserID,
				Username: user.Username,
				UnitID:   unit.UnitID,
				Role:     user.Role,
			})
		}

		for _, sb := range u.Boards {
			board := &models.Board{
				UnitID:           unit.UnitID,
				Name:             sb.Name,
				AuthorityToWrite: sb.AuthorityToWrite,
				AllowImage:       sb.AllowImage,
				AllowPoll:        sb.AllowPoll,
				AllowRecruit:     sb.AllowRecruit,
				IsPublicWriter:   sb.IsPublicWriter,
			}
			if err := rep.Board.Create(ctx, board); err != nil {
				return nil, fmt.Errorf("seed board %q: %w", sb.Name, err)
			}
			res.Boards++

			n, err := seedPosts(ctx, rep.Post, board.BoardID, users, sb.Posts)
			if err != nil {
				return nil, fmt.Errorf("seed board %q: %w", sb.Name, err)
			}
			res.Posts += n
		}

		log.Info().Str("unit", unit.Name).Int64("unit_id", unit.UnitID).Msg("unit seeded")
	}

	return res, nil
}

func ensureUnit(ctx context.Context, units repository.UnitRepository, name string) (*models.Unit, error) {
	unit, err := units.GetByName(ctx, name)
	if err == nil {
		return unit, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	unit = &models.Unit{Name: name}
	if err := units.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("seed unit %q: %w", name, err)
	}
	return unit, nil
}

func seedPosts(ctx context.Context, posts repository.PostRepository, boardID int64, users map[string]int64, seeds []Post) (int, error) {
	count := 0
	for _, sp := range seeds {
		userID, ok := users[sp.Writer]
		if !ok {
			return count, fmt.Errorf("post %q: unknown writer %q: %w", sp.Title, sp.Writer, common.ErrInvalidInput)
		}

		times := sp.Repeat
		if times == 0 {
			times = 1
		}

		for i := 1; i <= times; i++ {
			title := sp.Title
			if sp.Repeat > 0 {
				title = fmt.Sprintf("%s #%d", sp.Title, i)
			}

			post := &models.Post{
				BoardID:  boardID,
				UserID:   userID,
				PostType: models.PostTypeNormal,
				Title:    title,
				Content:  sp.Content,
			}
			if err := posts.Create(ctx, post); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
