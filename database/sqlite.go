package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteBackend stores cache entries in a local SQLite file
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database file and migrates the cache table
func OpenSQLite(ctx context.Context, path string, config shared.DatabaseConfig) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// WAL keeps readers unblocked while a refresh writes the snapshot
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, config.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, db, "sqlite.sql"); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"component": "Database",
		"backend":   "sqlite",
		"path":      path,
	}).Info("Opened SQLite cache database")

	return &SQLiteBackend{db: db, path: path}, nil
}

// Get reads the payload stored under key
func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM kv_cache WHERE cache_key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return []byte(payload), true, nil
}

// Put overwrites the payload stored under key
func (b *SQLiteBackend) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_cache (cache_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	if _, err := b.db.ExecContext(ctx, query, key, string(value), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// HealthCheck pings the database and logs pool statistics
func (b *SQLiteBackend) HealthCheck(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logPoolStats("sqlite", b.db.Stats())
	return nil
}

// Path returns the database file location
func (b *SQLiteBackend) Path() string {
	return b.path
}

// Close releases the database handle
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
