// Package database provides PostgreSQL connection management via pgx.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// ParseURL validates a PostgreSQL connection URL.
func ParseURL(url string) (*pgxpool.Config, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is empty")
	}
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	return cfg, nil
}

// New creates a new database connection pool.
func New(ctx context.Context, url string, maxConns, minConns int) (*DB, error) {
	cfg, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = int32(minConns)
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close shuts down the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// HealthCheck verifies the database connection is alive.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// schema holds the telemetry and level tables. Telemetry tables are
// append-only; learner_levels is the one mutable row per learner.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS keywords (
		id UUID PRIMARY KEY,
		keyword TEXT NOT NULL,
		level TEXT NOT NULL,
		mode TEXT NOT NULL,
		learner_id TEXT NOT NULL,
		rejected BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS generations (
		id UUID PRIMARY KEY,
		learner_id TEXT NOT NULL,
		keyword TEXT NOT NULL,
		level TEXT NOT NULL,
		mode TEXT NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS error_events (
		id UUID PRIMARY KEY,
		keyword TEXT NOT NULL,
		level TEXT NOT NULL,
		mode TEXT NOT NULL,
		kind TEXT NOT NULL,
		message TEXT NOT NULL,
		detail TEXT NOT NULL,
		learner_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS assessment_records (
		id UUID PRIMARY KEY,
		learner_id TEXT NOT NULL,
		content_id TEXT NOT NULL,
		correctness BOOLEAN[] NOT NULL,
		submitted_labels TEXT[] NOT NULL,
		correct_labels TEXT[] NOT NULL,
		score INT NOT NULL,
		elapsed_seconds INT NOT NULL DEFAULT 0,
		mode TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS learner_levels (
		learner_id TEXT PRIMARY KEY,
		inferred_level TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the application tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
