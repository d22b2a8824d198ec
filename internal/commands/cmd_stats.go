package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/pkg/iojson"
)

type StatsCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags, app *App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "stats",
		Usage: "Show task counters",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	stats := cmd.app.Board.Stats()
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, stats)
	}

	_, _ = fmt.Fprintf(out, "Total: %d\nCompleted: %d\nIn progress: %d\nNot started: %d\n",
		stats.Total, stats.Completed, stats.InProgress, stats.NotStarted)
	return nil
}
