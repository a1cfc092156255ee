package app

import (
	"provider-match/internal/config"
	"provider-match/internal/database/sqlite"
)

type Container struct {
	Config config.Config
	DB     *sqlite.SQLiteDB
}

func NewContainer(cfg config.Config) (*Container, error) {
	db, err := sqlite.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{Config: cfg, DB: db}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
