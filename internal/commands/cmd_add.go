package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
)

type AddCmd struct {
	flags *Flags
	app   *App

	// flags
	category    string
	status      string
	interactive bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "taskboard add [--category home|work|study] [--status STATUS] <title>",
		Description: `Adds a task to the end of the board.

Category and status default to the values under "defaults" in the config
file. Use --interactive to fill in the task with a form instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "task category (home, work, study)",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "initial status (not-started, in-progress, completed)",
				Destination: &cmd.status,
			},
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "prompt for the task with a form",
				Destination: &cmd.interactive,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "add")

	title := strings.Join(c.Args().Slice(), " ")
	category := cmd.app.Config.Defaults.Category
	status := cmd.app.Config.Defaults.Status

	if cmd.category != "" {
		parsed, err := task.ParseCategory(cmd.category)
		if err != nil {
			return err
		}
		category = parsed
	}
	if cmd.status != "" {
		parsed, err := task.ParseStatus(cmd.status)
		if err != nil {
			return err
		}
		status = parsed
	}

	if cmd.interactive {
		var err error
		title, category, status, err = promptTask(ctx, title, category, status)
		if err != nil {
			return err
		}
	}

	if err := validate.TaskTitleField("title", title); err != nil {
		return err
	}

	t, err := cmd.app.Board.AddTask(ctx, title, category, status)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Added %s %s %s\n", t.ID, t.Category.Icon(), t.Title)
	return nil
}

func promptTask(ctx context.Context, title string, category task.Category, status task.Status) (string, task.Category, task.Status, error) {
	categoryOpts := make([]huh.Option[task.Category], 0, len(task.Categories()))
	for _, c := range task.Categories() {
		categoryOpts = append(categoryOpts, huh.NewOption(c.Icon()+" "+string(c), c))
	}

	statusOpts := make([]huh.Option[task.Status], 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(s.Label(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(validate.TaskTitle),
			huh.NewSelect[task.Category]().
				Title("Category").
				Options(categoryOpts...).
				Value(&category),
			huh.NewSelect[task.Status]().
				Title("Status").
				Options(statusOpts...).
				Value(&status),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", "", "", fmt.Errorf("task form: %w", err)
	}

	return title, category, status, nil
}
