package store

import (
	"context"
	"errors"
	"fmt"

	"devjournal/internal/config"
	"devjournal/internal/logger"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// NewDB opens a connection to the configured relational backend and
// verifies it with a ping. The driver name selects between PostgreSQL
// (pgx) and SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// isUniqueViolation reports whether err is a unique-constraint
// violation from either supported driver. Callers treat these as
// "row already exists, re-fetch" rather than hard failures, which is
// how the first-seen-principal and concurrent-tag-creation races are
// resolved.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
