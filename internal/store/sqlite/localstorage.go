// Package sqlite implements storage.Storage on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/colonyops/taskboard/internal/core/storage"
)

//go:embed schema/schema.sql
var schemaSQL string

// FileName is the database file created inside the data directory.
const FileName = "taskboard.db"

const (
	maxRetries  = 5
	initialWait = 100 * time.Millisecond
	busyTimeout = 5000 // milliseconds
)

var _ storage.Storage = (*LocalStorage)(nil)

// LocalStorage keeps key-value slots in a single SQLite table.
type LocalStorage struct {
	conn *sql.DB
}

// Open creates or opens the database in dataDir and ensures the schema exists.
func Open(ctx context.Context, dataDir string) (*LocalStorage, error) {
	return OpenPath(ctx, filepath.Join(dataDir, FileName))
}

// OpenPath opens the database file at dbPath.
func OpenPath(ctx context.Context, dbPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", dbPath, busyTimeout)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single writer; the board never issues concurrent statements
	conn.SetMaxOpenConns(1)

	s := &LocalStorage{conn: conn}

	if err := s.pingWithRetry(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, s.wrap("get item", err)
	}
	return value, true, nil
}

func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return s.wrap("set item", err)
	}
	return nil
}

func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return s.wrap("remove item", err)
	}
	return nil
}

func (s *LocalStorage) Close() error {
	return s.conn.Close()
}

func (s *LocalStorage) wrap(op string, err error) error {
	if errors.Is(err, sql.ErrConnDone) || err.Error() == "sql: database is closed" {
		return fmt.Errorf("%s: %w", op, storage.ErrClosed)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// pingWithRetry attempts to ping the database with exponential backoff.
func (s *LocalStorage) pingWithRetry(ctx context.Context) error {
	wait := initialWait
	for i := range maxRetries {
		if err := s.conn.PingContext(ctx); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
	}

	return fmt.Errorf("failed to ping database after %d retries", maxRetries)
}
