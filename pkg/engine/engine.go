// Package engine assembles a ready-to-use question-answering engine from
// configuration: it opens the configured database, builds the catalog store
// and answer cache, and exposes the Q&A entry points for embedding in other
// programs. The API server and the CLI both build on this package.
package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/buildfacts/material-engine/internal/cache"
	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/config"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

// Runtime bundles the engine with the resources it owns. Close releases the
// database and cache connections.
type Runtime struct {
	Engine *qa.Engine
	Store  catalog.Store
	Cache  cache.Client

	db *sql.DB
}

// Open builds a runtime from configuration. The database schema is created
// if missing. Pass a nil logger to disable logging.
func Open(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Runtime, error) {
	if logger == nil {
		logger = observability.NopLogger()
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	sqlStore := catalog.NewSQLStore(db)
	if err := sqlStore.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	cacheClient, err := openCache(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	eng := qa.NewEngine(sqlStore, cacheClient, logger, qa.EngineConfig{
		MaxSubjectMaterials: cfg.Engine.MaxSubjectMaterials,
		ConfidenceCap:       cfg.Engine.ConfidenceCap,
		CacheAnswers:        cfg.Engine.CacheAnswers,
		CacheTTL:            cfg.Engine.CacheTTL,
	})

	return &Runtime{
		Engine: eng,
		Store:  sqlStore,
		Cache:  cacheClient,
		db:     db,
	}, nil
}

// Close releases the runtime's database and cache connections.
func (r *Runtime) Close() error {
	var firstErr error
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		db, err := sql.Open("sqlite3", cfg.DatabaseDSN())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if cfg.Database.SQLite.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.Database.SQLite.MaxOpenConns)
		}
		return db, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseDSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pg := cfg.Database.Postgres
		if pg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(pg.MaxOpenConns)
		}
		if pg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(pg.MaxIdleConns)
		}
		if pg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(pg.ConnMaxLifetime)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func openCache(cfg *config.Config) (cache.Client, error) {
	switch cfg.Cache.Driver {
	case "redis":
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return client, nil
	default:
		return cache.NewMemoryClient(cfg.Cache.MaxEntries), nil
	}
}
