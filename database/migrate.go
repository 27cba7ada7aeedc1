package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// Migrate applies an embedded schema file. Every statement is attempted; failures
// are logged and returned together.
func Migrate(ctx context.Context, db *sql.DB, schemaName string) error {
	content, err := schemaFiles.ReadFile("schema/" + schemaName)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"component": "Database",
		"schema":    schemaName,
	})

	var failures []error
	statements := parseSQLStatements(string(content))
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Warnf("Migration statement failed (continuing): %v", err)
			failures = append(failures, fmt.Errorf("statement %q: %w", truncateStatement(stmt), err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("migration finished with %d failed statements: %w", len(failures), errors.Join(failures...))
	}

	logger.WithField("statements", len(statements)).Info("Database migration completed successfully")
	return nil
}

// parseSQLStatements splits SQL content into individual statements,
// skipping blank lines and comment-only lines
func parseSQLStatements(content string) []string {
	var statements []string
	var currentStatement strings.Builder

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		if currentStatement.Len() > 0 {
			currentStatement.WriteString(" ")
		}
		currentStatement.WriteString(line)

		if strings.HasSuffix(line, ";") {
			stmt := strings.TrimSpace(strings.TrimSuffix(currentStatement.String(), ";"))
			if stmt != "" {
				statements = append(statements, stmt)
			}
			currentStatement.Reset()
		}
	}

	// A trailing statement may omit its semicolon
	if stmt := strings.TrimSpace(currentStatement.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

func truncateStatement(stmt string) string {
	if len(stmt) <= 60 {
		return stmt
	}
	return stmt[:60] + "..."
}

// logPoolStats reports connection pool usage at debug level
func logPoolStats(backend string, stats sql.DBStats) {
	logrus.WithFields(logrus.Fields{
		"component":            "Database",
		"backend":              backend,
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration,
	}).Debug("Database connection pool health check")
}
