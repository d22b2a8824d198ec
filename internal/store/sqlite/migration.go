package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// MigrateFromJSON copies the slots of a jsonfile backend into the database
// when both of these hold:
//   - the JSON file exists
//   - the database has no slots yet
//
// The JSON file is left in place. It returns the number of slots copied.
func MigrateFromJSON(ctx context.Context, s *LocalStorage, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var count int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM local_storage`).Scan(&count); err != nil {
		return 0, s.wrap("count items", err)
	}
	if count > 0 {
		return 0, nil
	}

	if len(data) == 0 {
		return 0, nil
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, s.wrap("begin migration", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	for key, value := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)`,
			key, value, now,
		); err != nil {
			return 0, fmt.Errorf("failed to migrate key %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, s.wrap("commit migration", err)
	}

	return len(items), nil
}
