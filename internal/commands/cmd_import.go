package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags
	app   *App
	fr    *iojson.FileReader[[]task.Task]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *App) *ImportCmd {
	return &ImportCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[[]task.Task]{},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "import",
		Usage: "Replace all tasks with a JSON array",
		UsageText: `taskboard import [options]

Read from stdin:
  taskboard export | taskboard --data-dir other import

Read from file:
  taskboard import -f tasks.json`,
		Description: `Replaces the whole board with the tasks in the input. The input is the
same JSON array 'taskboard export' writes:

  [
    {
      "id": "k3j9x0a2b",
      "title": "Buy milk",
      "category": "home",
      "status": "not-started",
      "createdAt": "2025-06-01T09:00:00Z"
    }
  ]

Every task is validated before anything is written. Tasks that repeat an
earlier id are given a new one.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "import")

	tasks, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := validateImport(tasks); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	if err := cmd.app.Board.ReplaceTasks(ctx, tasks); err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Imported %d task(s)\n", len(tasks))
	return nil
}

func validateImport(tasks []task.Task) error {
	var errs []error
	for i, t := range tasks {
		if err := validate.Task(fmt.Sprintf("tasks[%d]", i), t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
