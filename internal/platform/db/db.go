// Package db opens the banner database through gorm. Sqlite is the default
// store; a Postgres DSN switches the driver without touching callers.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	// Path is the sqlite database file. Ignored when PostgresDSN is set.
	Path        string
	PostgresDSN string
}

func Connect(opts Options) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var dialector gorm.Dialector
	if opts.PostgresDSN != "" {
		dialector = postgres.Open(opts.PostgresDSN)
	} else {
		path := opts.Path
		if path == "" {
			path = "hometown_hero.db"
		}
		dialector = sqlite.Open(path)
	}

	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("access database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return conn, nil
}

func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
