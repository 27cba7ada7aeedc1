package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fenilmodi00/ipo-pulse/shared"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresBackend stores cache entries in PostgreSQL
type PostgresBackend struct {
	db *sql.DB
}

// OpenPostgres connects, applies the pool configuration and migrates the cache table
func OpenPostgres(ctx context.Context, dbURL string, config shared.DatabaseConfig) (*PostgresBackend, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres cache backend")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, config.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, db, "postgres.sql"); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"component":          "Database",
		"backend":            "postgres",
		"max_open_conns":     config.MaxOpenConns,
		"max_idle_conns":     config.MaxIdleConns,
		"conn_max_lifetime":  config.ConnMaxLifetime,
		"conn_max_idle_time": config.ConnMaxIdleTime,
	}).Info("Connected to database successfully")

	return &PostgresBackend{db: db}, nil
}

// Get reads the payload stored under key
func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM kv_cache WHERE cache_key = $1`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return []byte(payload), true, nil
}

// Put overwrites the payload stored under key
func (b *PostgresBackend) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_cache (cache_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := b.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// HealthCheck pings the database and logs pool statistics
func (b *PostgresBackend) HealthCheck(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logPoolStats("postgres", b.db.Stats())
	return nil
}

// Close releases the connection pool
func (b *PostgresBackend) Close() error {
	logrus.WithField("component", "Database").Info("Database connection closed")
	return b.db.Close()
}
