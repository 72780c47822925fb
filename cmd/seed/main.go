package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"millage/internal/config"
	"millage/internal/database"
	"millage/internal/logger"
	"millage/internal/repository"
	"millage/internal/seed"
	"millage/internal/session"
)

var (
	seedFile  = flag.String("file", "seed.yaml", "seed file with units, users, boards and posts")
	printKeys = flag.Bool("tokens", false, "print a session token for every seeded user")
	tokenTTL  = flag.Duration("token-ttl", 24*time.Hour, "lifetime of printed session tokens")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	f, err := seed.Load(*seedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *seedFile).Msg("failed to load seed file")
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.CloseDB()

	res, err := seed.Apply(context.Background(), repository.NewRepository(db.DB), f)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Int("units", res.Units).
		Int("boards", res.Boards).
		Int("posts", res.Posts).
		Int("users", len(res.Users)).
		Msg("seed applied")

	if !*printKeys {
		return
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY is not set")
	}

	codec := session.NewCodec(cfg.JWTSecretKey)
	for _, u := range res.Users {
		token, err := codec.Issue(u, *tokenTTL)
		if err != nil {
			log.Fatal().Err(err).Str("username", u.Username).Msg("failed to issue token")
		}
		fmt.Printf("%s\t%s\n", u.Username, token)
	}
}
