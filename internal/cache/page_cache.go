package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"millage/internal/models"
)

const (
	PrefixBoardVersion = "board:version:"
	PrefixBoardPage    = "board:page:"

	TTLPage = 30 * time.Second
)

// ErrMiss is returned by Get when nothing is cached for the key.
var ErrMiss = errors.New("cache miss")

// PageCache stores computed board pages. Get reports the board version it
// looked under, also on a miss; Set must be given that version so a page
// computed before an invalidation never lands under the newer version.
type PageCache interface {
	Get(ctx context.Context, boardID int64, keyword string, page int) (*models.PaginationObject[models.Post], int64, error)
	Set(ctx context.Context, boardID, version int64, keyword string, page int, obj *models.PaginationObject[models.Post]) error
	InvalidateBoard(ctx context.Context, boardID int64) error
}

// RedisPageCache keys pages by a per-board version counter. Bumping the
// counter orphans every page of the board at once; orphans expire by TTL.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) *RedisPageCache {
	if ttl <= 0 {
		ttl = TTLPage
	}
	return &RedisPageCache{client: client, ttl: ttl}
}

func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func versionKey(boardID int64) string {
	return fmt.Sprintf("%s%d", PrefixBoardVersion, boardID)
}

func pageKey(boardID, version int64, keyword string, page int) string {
	return fmt.Sprintf("%s%d:v%d:p%d:%s", PrefixBoardPage, boardID, version, page, url.QueryEscape(keyword))
}

func (c *RedisPageCache) version(ctx context.Context, boardID int64) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(boardID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *RedisPageCache) Get(ctx context.Context, boardID int64, keyword string, page int) (*models.PaginationObject[models.Post], int64, error) {
	v, err := c.version(ctx, boardID)
	if err != nil {
		return nil, 0, fmt.Errorf("read board version: %w", err)
	}

	data, err := c.client.Get(ctx, pageKey(boardID, v, keyword, page)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, ErrMiss
	}
	if err != nil {
		return nil, v, fmt.Errorf("read cached page: %w", err)
	}

	var obj models.PaginationObject[models.Post]
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, v, fmt.Errorf("decode cached page: %w", err)
	}

	return &obj, v, nil
}

func (c *RedisPageCache) Set(ctx context.Context, boardID, version int64, keyword string, page int, obj *models.PaginationObject[models.Post]) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}

	return c.client.Set(ctx, pageKey(boardID, version, keyword, page), data, c.ttl).Err()
}

func (c *RedisPageCache) InvalidateBoard(ctx context.Context, boardID int64) error {
	return c.client.Incr(ctx, versionKey(boardID)).Err()
}

// NopPageCache is used when Redis is not configured.
type NopPageCache struct{}

func (NopPageCache) Get(context.Context, int64, string, int) (*models.PaginationObject[models.Post], int64, error) {
	return nil, 0, ErrMiss
}

func (NopPageCache) Set(context.Context, int64, int64, string, int, *models.PaginationObject[models.Post]) error {
	return nil
}

func (NopPageCache) InvalidateBoard(context.Context, int64) error {
	return nil
}
