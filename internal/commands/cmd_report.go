package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

type ReportCmd struct {
	flags *Flags
	app   *App

	// flags
	raw   bool
	width int
}

// NewReportCmd creates a new report command
func NewReportCmd(flags *Flags, app *App) *ReportCmd {
	return &ReportCmd{flags: flags, app: app}
}

// Register adds the report command to the application
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "report",
		Usage: "Print a markdown summary of the board",
		Description: `Groups tasks by category, most recent first within each group, and
renders the summary for the terminal. Use --raw to print the markdown.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReportCmd) run(_ context.Context, c *cli.Command) error {
	md := reportMarkdown(cmd.app.Board)
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

// reportMarkdown summarizes the board as markdown. Within each category
// tasks are ordered by priority, newest first.
func reportMarkdown(b *board.App) string {
	var sb strings.Builder
	stats := b.Stats()
	now := b.Now()

	sb.WriteString("# Taskboard\n\n")
	fmt.Fprintf(&sb, "**%d** tasks, **%d** completed, **%d** in progress, **%d** not started.\n",
		stats.Total, stats.Completed, stats.InProgress, stats.NotStarted)

	for _, c := range task.Categories() {
		rows := make([]board.Row, 0)
		for _, t := range b.TasksFor(board.Filter(c)) {
			rows = append(rows, board.NewRow(t, now))
		}
		if len(rows) == 0 {
			continue
		}

		sortByPriority(rows)

		fmt.Fprintf(&sb, "\n## %s %s\n\n", c.Icon(), c)
		for _, r := range rows {
			writeReportLine(&sb, r)
		}
	}

	writeOtherSection(&sb, b)

	return sb.String()
}

// writeOtherSection lists tasks whose category is not one of the known
// categories. Such tasks can arrive from stored data or an import.
func writeOtherSection(sb *strings.Builder, b *board.App) {
	now := b.Now()
	rows := make([]board.Row, 0)
	for _, t := range b.Tasks() {
		if !t.Category.IsValid() {
			rows = append(rows, board.NewRow(t, now))
		}
	}
	if len(rows) == 0 {
		return
	}

	sortByPriority(rows)

	fmt.Fprintf(sb, "\n## %s other\n\n", task.Category("").Icon())
	for _, r := range rows {
		writeReportLine(sb, r)
	}
}

func writeReportLine(sb *strings.Builder, r board.Row) {
	check := " "
	if r.Status == task.StatusCompleted {
		check = "x"
	}
	fmt.Fprintf(sb, "- [%s] %s _(%s)_\n", check, r.Title, r.StatusLabel)
}
