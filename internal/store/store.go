// Package store is the in-memory persistence layer: gorm over an in-memory
// sqlite database. It owns the Food/Recipe/PantryItem collections, keeps the
// cached ingredient calories and pantry statuses up to date on writes, and
// hands immutable snapshots to the calculation engine.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"forkful/internal/config"
	applog "forkful/internal/log"
	"forkful/models"
)

var (
	ErrDuplicateFood  = errors.New("store: food name already in use")
	ErrUnknownFood    = errors.New("store: referenced food does not exist")
	ErrInvalidServing = errors.New("store: serving size must be positive")
	ErrInvalidAmount  = errors.New("store: quantity must be positive")
	ErrSizeExceeded   = errors.New("store: current size exceeds original size")
	ErrShortStock     = errors.New("store: not enough left to consume")
	ErrUnitMismatch   = errors.New("store: amount unit is not convertible")
)

// nowFunc supplies the clock for status computation and publish timestamps.
// Tests swap it for a fixed instant.
var nowFunc = time.Now

// Store wraps the database handle. All methods are safe for concurrent
// readers; writers are serialized by sqlite itself.
type Store struct {
	db *gorm.DB
}

// Open initialises a named in-memory database and migrates the schema.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, fmt.Errorf("store name must not be empty")
	}

	applog.Debug(ctx, "opening in-memory store", "name", name)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return nowFunc().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Food{},
		&models.Measurement{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.PantryItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	store := &Store{db: db}
	if cfg.Seed {
		if err := store.Seed(ctx); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// DB exposes the underlying handle for tests and ad-hoc queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}
