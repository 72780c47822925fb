package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"millage/internal/cache"
	"millage/internal/common"
	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/repository"
)

const (
	PostsPerPage         = 10
	PostsPerBoardPreview = 4
	RecruitListSize      = 5
)

// QueryBuilder computes one page of a board's posts, optionally narrowed by a
// search keyword.
type QueryBuilder interface {
	ComputePage(ctx context.Context, boardID int64, searchKeyword string, curPage int) (*models.PaginationObject[models.Post], error)
}

type queryBuilder struct {
	posts     repository.PostRepository
	relations *relationLoader
}

func NewQueryBuilder(rep *repository.Repository) QueryBuilder {
	return &queryBuilder{
		posts:     rep.Post,
		relations: newRelationLoader(rep.User, rep.Image, rep.Comment),
	}
}

// uriReserved are the characters whose escapes DecodeKeyword keeps as
// written, matching decodeURI in browsers.
const uriReserved = ";/?:@&=+$,#"

// DecodeKeyword percent-decodes a search keyword the way decodeURI does:
// %23 stays "%23", %20 becomes a space. A keyword that is not valid
// percent-encoding or does not decode to UTF-8 is used as typed.
func DecodeKeyword(raw string) string {
	if !strings.Contains(raw, "%") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' {
			b.WriteByte(raw[i])
			continue
		}
		if i+2 >= len(raw) {
			return raw
		}

		v, err := hex.DecodeString(raw[i+1 : i+3])
		if err != nil {
			return raw
		}
		if strings.IndexByte(uriReserved, v[0]) >= 0 {
			b.WriteString(raw[i : i+3])
		} else {
			b.WriteByte(v[0])
		}
		i += 2
	}

	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return raw
	}
	return decoded
}

// TotalPages is ceil(totalCounts / PostsPerPage).
func TotalPages(totalCounts int) int {
	return (totalCounts + PostsPerPage - 1) / PostsPerPage
}

func normalizePage(curPage int) int {
	if curPage < 1 {
		return 1
	}
	return curPage
}

// asStorageErr makes sure any repository failure surfaces as ErrStorage.
func asStorageErr(op string, err error) error {
	if errors.Is(err, common.ErrStorage) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err)
}

func (b *queryBuilder) ComputePage(ctx context.Context, boardID int64, searchKeyword string, curPage int) (*models.PaginationObject[models.Post], error) {
	curPage = normalizePage(curPage)
	filter := models.PostFilter{
		BoardID: boardID,
		Keyword: DecodeKeyword(searchKeyword),
	}

	totalCounts, err := b.posts.CountMatching(ctx, filter)
	if err != nil {
		return nil, asStorageErr("count matching posts", err)
	}

	results := []models.Post{}
	offset := (curPage - 1) * PostsPerPage

	// past the last match there is nothing to fetch
	if offset < totalCounts {
		results, err = b.posts.FetchPage(ctx, filter, offset, PostsPerPage)
		if err != nil {
			return nil, asStorageErr("fetch page", err)
		}

		if err := b.relations.Load(ctx, results); err != nil {
			return nil, asStorageErr("load post relations", err)
		}
	}

	return &models.PaginationObject[models.Post]{
		Results:     results,
		CurPage:     curPage,
		TotalCounts: totalCounts,
		TotalPages:  TotalPages(totalCounts),
	}, nil
}

// CachedQueryBuilder serves pages from a PageCache and fills it on a miss.
// Cache errors are logged and never fail the query.
type CachedQueryBuilder struct {
	next  QueryBuilder
	cache cache.PageCache
}

func NewCachedQueryBuilder(next QueryBuilder, pageCache cache.PageCache) *CachedQueryBuilder {
	return &CachedQueryBuilder{next: next, cache: pageCache}
}

func (c *CachedQueryBuilder) ComputePage(ctx context.Context, boardID int64, searchKeyword string, curPage int) (*models.PaginationObject[models.Post], error) {
	log := logger.Get()
	curPage = normalizePage(curPage)
	keyword := DecodeKeyword(searchKeyword)

	obj, version, err := c.cache.Get(ctx, boardID, keyword, curPage)
	if err == nil {
		return obj, nil
	}
	cacheable := errors.Is(err, cache.ErrMiss)
	if !cacheable {
		log.Warn().Err(err).Int64("board_id", boardID).Msg("page cache read failed")
	}

	obj, err = c.next.ComputePage(ctx, boardID, searchKeyword, curPage)
	if err != nil {
		return nil, err
	}
	if !cacheable {
		return obj, nil
	}

	// stored under the version seen before the query; a concurrent
	// invalidation leaves this page orphaned instead of current
	if err := c.cache.Set(ctx, boardID, version, keyword, curPage, obj); err != nil {
		log.Warn().Err(err).Int64("board_id", boardID).Msg("page cache write failed")
	}

	return obj, nil
}
