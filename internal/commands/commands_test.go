package commands

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/store/memory"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.DefaultConfig()
	n := 0
	app, err := NewApp(context.Background(), &cfg, memory.New(),
		board.WithClock(func() time.Time { return testNow }),
		board.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("task%d", n)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

// run executes args against a root command carrying only r.
func run(t *testing.T, r registrar, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := &cli.Command{
		Name:      "taskboard",
		Writer:    &buf,
		ErrWriter: &buf,
	}
	root = r.Register(root)

	err := root.Run(context.Background(), append([]string{"taskboard"}, args...))
	return buf.String(), err
}

func mustAdd(t *testing.T, app *App, args ...string) {
	t.Helper()

	_, err := run(t, NewAddCmd(&Flags{}, app), append([]string{"add"}, args...)...)
	require.NoError(t, err)
}
