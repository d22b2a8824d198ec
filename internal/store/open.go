// Package store selects and opens a storage.Storage backend.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/internal/store/jsonfile"
	"github.com/colonyops/taskboard/internal/store/memory"
	"github.com/colonyops/taskboard/internal/store/sqlite"
)

// JSONFileName is the storage file used by the jsonfile backend.
const JSONFileName = "localstorage.json"

// Open opens the named backend rooted at dataDir.
func Open(ctx context.Context, backend, dataDir string) (storage.Storage, error) {
	switch backend {
	case storage.BackendJSONFile, "":
		s, err := jsonfile.Open(filepath.Join(dataDir, JSONFileName))
		if err != nil {
			return nil, fmt.Errorf("open jsonfile storage: %w", err)
		}
		return s, nil
	case storage.BackendSQLite:
		s, err := sqlite.Open(ctx, dataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}

		// pick up a board previously kept by the jsonfile backend
		n, err := sqlite.MigrateFromJSON(ctx, s, filepath.Join(dataDir, JSONFileName))
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("migrate from JSON: %w", err)
		}
		if n > 0 {
			log.Info().Int("items", n).Msg("migrated jsonfile storage into sqlite")
		}
		return s, nil
	case storage.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
