package medium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/realverse/internal/client/migrations"
	"github.com/dmitrijs2005/realverse/internal/common"
	"github.com/dmitrijs2005/realverse/internal/dbx"
	"github.com/dmitrijs2005/realverse/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLite stores values in the kv table of a local SQLite database.
// When quota is positive, Set checks the byte budget and upserts inside one
// transaction.
type SQLite struct {
	db    *sql.DB
	quota int64
}

var _ Medium = (*SQLite)(nil)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded kv migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (or creates) the database at dsn, enables WAL and applies
// the migrations. A file dsn gets its parent directory created.
func OpenSQLite(ctx context.Context, dsn string, quotaBytes int64) (*SQLite, error) {
	if dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLite(db, quotaBytes), nil
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB, quotaBytes int64) *SQLite {
	return &SQLite{db: db, quota: quotaBytes}
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	if s.quota <= 0 {
		return upsert(ctx, s.db, key, value)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var others int64
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(length(CAST(key AS BLOB)) + length(CAST(value AS BLOB))), 0)
			FROM kv WHERE key <> ?`, key).Scan(&others)
		if err != nil {
			return fmt.Errorf("failed to measure kv usage: %w", err)
		}

		next := others + entrySize(key, value)
		if next > s.quota {
			return fmt.Errorf("%w: %d of %d bytes", common.ErrQuotaExceeded, next, s.quota)
		}
		return upsert(ctx, tx, key, value)
	})
}

// Close releases the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func upsert(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
