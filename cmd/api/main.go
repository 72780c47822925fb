package main

import (
	"fmt"
	"net/http"

	"millage/cmd/app"
	"millage/internal/config"
	handlers "millage/internal/handler"
	"millage/internal/logger"
	"millage/internal/middleware"
	"millage/internal/session"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY is not set")
	}

	application := app.New(cfg)
	defer application.Close()

	handler := handlers.NewHandlers(application.Services, cfg)
	router := handlers.NewRouter(handler)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(session.NewCodec(cfg.JWTSecretKey)),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().
		Str("addr", addr).
		Str("database", cfg.DB.DbNAME).
		Bool("page_cache", application.Redis != nil).
		Msg("server started")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
