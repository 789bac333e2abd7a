package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jungle-app/jungle-booking/apperr"
	"github.com/jungle-app/jungle-booking/config"
)

//go:embed setup.sql
var setupSQL string

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Connect opens a pool on cfg.URL and pings it.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	if !cfg.Configured() {
		return nil, apperr.ErrNotConfigured
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, apperr.Mark(fmt.Errorf("failed to parse DATABASE_URL: %w", err), apperr.ErrNotConfigured)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Init creates the tables used by the repositories when they are missing.
func Init(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, setupSQL); err != nil {
		return fmt.Errorf("failed to initialize tables: %w", err)
	}
	return nil
}

// Open never fails: when the database cannot be reached it logs the reason
// and hands back Unconfigured so that read paths degrade to empty results.
func Open(ctx context.Context, cfg config.DBConfig) (DB, func()) {
	logger := slog.Default().With("component", "database")

	logger.Info("connecting to PostgreSQL database")
	pool, err := Connect(ctx, cfg)

	if err != nil {
		logger.Warn("database unavailable, running without backend", "err", err)
		return Unconfigured{}, func() {}
	}

	if cfg.InitSchema {
		if err := Init(ctx, pool); err != nil {
			logger.Error("failed to initialize tables", "err", err)
		} else {
			logger.Info("initialized database tables")
		}
	}

	return pool, pool.Close
}
