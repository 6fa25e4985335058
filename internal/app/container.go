package app

import (
	"context"
	"time"

	"careercatalyst/internal/config"
	"careercatalyst/internal/database"
	dbpostgres "careercatalyst/internal/database/postgres"
	"careercatalyst/internal/infrastructure/cache"
	"careercatalyst/internal/infrastructure/generation"
	"careercatalyst/internal/infrastructure/search"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	Generator *generation.Client
	Searcher  *search.GoogleClient
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config:    cfg,
		DB:        db,
		Cache:     cache.NewRedis(cfg.Redis),
		Generator: generation.NewClient(cfg.Generation),
		Searcher:  search.NewGoogleClient(cfg.Search),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
