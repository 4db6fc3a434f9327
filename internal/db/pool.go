package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// NewPool opens a pgx pool and waits for postgres to come up, retrying so
// the server can start before the database does (compose ordering).
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	// Sized for short election-day bursts; ballot inserts and tally queries
	// share the same pool.
	cfg.MaxConns = 12
	cfg.MinConns = 3
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 15 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			pingErr := pool.Ping(ctx)
			if pingErr == nil {
				log.Printf("postgres: connected (max %d conns)", cfg.MaxConns)
				return pool, nil
			}
			pool.Close()
			err = pingErr
		}

		log.Printf("postgres: connection attempt %d/%d failed: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}

	return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", connectAttempts, err)
}
