package app

import (
	"github.com/redis/go-redis/v9"

	"millage/internal/cache"
	"millage/internal/config"
	"millage/internal/database"
	"millage/internal/logger"
	"millage/internal/repository"
	"millage/internal/service"
	"millage/internal/storage"
)

// App holds what main needs to close on shutdown.
type App struct {
	DB       *database.DB
	Redis    *redis.Client
	Services *service.Service
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Get().Warn().Err(err).Msg("closing redis")
		}
	}
	if err := a.DB.CloseDB(); err != nil {
		logger.Get().Warn().Err(err).Msg("closing database")
	}
}

func New(cfg *config.Config) *App {
	log := logger.Get()

	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize MinIO")
	}

	// page cache is optional
	var (
		redisClient *redis.Client
		pageCache   cache.PageCache = cache.NopPageCache{}
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, page cache disabled")
			redisClient = nil
		} else {
			pageCache = cache.NewRedisPageCache(redisClient, cfg.Redis.PageTTL)
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, minioClient, pageCache)

	return &App{DB: db, Redis: redisClient, Services: services}
}
