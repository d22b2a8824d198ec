package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
)

type StatusCmd struct {
	flags *Flags
	app   *App
}

// NewStatusCmd creates a new status command
func NewStatusCmd(flags *Flags, app *App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the status command to the application
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Change the status of a task",
		UsageText: "taskboard status <id> <not-started|in-progress|completed>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <id> <status>, got %d argument(s)", c.Args().Len())
	}

	id := c.Args().Get(0)
	if err := validate.TaskID(id); err != nil {
		return err
	}

	status, err := task.ParseStatus(c.Args().Get(1))
	if err != nil {
		return err
	}

	ctx = logging.WithTaskID(logging.WithCommand(ctx, "status"), id)

	found, err := cmd.app.Board.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	out := c.Root().Writer
	if !found {
		_, _ = fmt.Fprintf(out, "No task with id %s\n", id)
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s is now %s\n", id, status.Label())
	return nil
}
