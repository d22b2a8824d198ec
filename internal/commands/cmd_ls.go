package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *App

	// flags
	category   string
	status     string
	match      string
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List tasks",
		UsageText: "taskboard ls [--category CATEGORY] [--status STATUS] [--match GLOB] [--json]",
		Description: `Displays a table of tasks in the order they were added.

--match filters titles with a glob pattern (case-insensitive), for example
"*report*" or "buy {milk,eggs}". Use --json for JSON lines output including
the computed priority.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "only show tasks in this category (all, home, work, study)",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "only show tasks with this status",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only show tasks whose title matches the glob",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	rows, err := cmd.rows()
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range rows {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCATEGORY\tSTATUS\tPRIORITY\tTITLE")
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\t%.2f\t%s\n", r.ID, r.Icon, r.Category, r.StatusLabel, r.Priority, r.Title)
	}
	return w.Flush()
}

func (cmd *LsCmd) rows() ([]board.Row, error) {
	filter := board.FilterAll
	if cmd.category != "" {
		f, err := board.ParseFilter(cmd.category)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	var status task.Status
	if cmd.status != "" {
		s, err := task.ParseStatus(cmd.status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	pattern := strings.ToLower(cmd.match)
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid --match pattern %q", cmd.match)
	}

	b := cmd.app.Board
	now := b.Now()

	var rows []board.Row
	for _, t := range b.TasksFor(filter) {
		if status != "" && t.Status != status {
			continue
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, strings.ToLower(t.Title))
			if err != nil {
				return nil, fmt.Errorf("match %q: %w", cmd.match, err)
			}
			if !ok {
				continue
			}
		}
		rows = append(rows, board.NewRow(t, now))
	}

	return rows, nil
}
