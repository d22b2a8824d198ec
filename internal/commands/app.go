package commands

import (
	"context"
	"fmt"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/internal/store"
)

// App is what every command runs against. main pre-allocates it so commands
// can hold a pointer before the Before hook fills it in.
type App struct {
	Config  *config.Config
	Storage storage.Storage
	Board   *board.App
}

// OpenApp opens the configured storage backend and loads the board from it.
func OpenApp(ctx context.Context, cfg *config.Config, opts ...board.Option) (*App, error) {
	s, err := store.Open(ctx, cfg.Storage.Backend, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	app, err := NewApp(ctx, cfg, s, opts...)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return app, nil
}

// NewApp wires a board to an already open storage and loads it.
func NewApp(ctx context.Context, cfg *config.Config, s storage.Storage, opts ...board.Option) (*App, error) {
	p, err := board.NewPersistence(s, cfg.Storage.Key)
	if err != nil {
		return nil, fmt.Errorf("create persistence: %w", err)
	}

	opts = append([]board.Option{board.WithLogger(logging.Component("board"))}, opts...)
	b := board.New(p, opts...)
	if err := b.Load(ctx); err != nil {
		return nil, err
	}

	return &App{Config: cfg, Storage: s, Board: b}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a == nil || a.Storage == nil {
		return nil
	}
	return a.Storage.Close()
}
