package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/validate"
)

type RmCmd struct {
	flags *Flags
	app   *App
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags, app *App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete tasks",
		UsageText: "taskboard rm <id>...",
		Action:    cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("expected at least one task id")
	}

	ids := c.Args().Slice()
	for _, id := range ids {
		if err := validate.TaskID(id); err != nil {
			return err
		}
	}

	out := c.Root().Writer
	ctx = logging.WithCommand(ctx, "rm")

	for _, id := range ids {
		removed, err := cmd.app.Board.DeleteTask(logging.WithTaskID(ctx, id), id)
		if err != nil {
			return fmt.Errorf("delete task %s: %w", id, err)
		}

		if removed {
			_, _ = fmt.Fprintf(out, "Deleted %s\n", id)
		} else {
			_, _ = fmt.Fprintf(out, "No task with id %s\n", id)
		}
	}

	return nil
}
