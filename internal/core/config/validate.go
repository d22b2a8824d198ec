package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

// Validate checks that the configuration is valid. Every problem is reported
// as a criterio field error.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("storage.backend", c.Storage.Backend, validBackend),
		criterio.Run("storage.key", c.Storage.Key, nonBlank),
		criterio.Run("defaults.category", string(c.Defaults.Category), validCategory),
		criterio.Run("defaults.status", string(c.Defaults.Status), validStatus),
		criterio.Run("tui.theme", c.TUI.Theme, validTheme),
	)
}

func validBackend(name string) error {
	if !storage.IsValidBackend(name) {
		return fmt.Errorf("unknown backend %q: must be one of jsonfile, sqlite, memory", name)
	}
	return nil
}

func nonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func validCategory(c string) error {
	_, err := task.ParseCategory(c)
	return err
}

func validStatus(s string) error {
	_, err := task.ParseStatus(s)
	return err
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: must be one of %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
