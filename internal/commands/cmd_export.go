package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/pkg/iojson"
)

type ExportCmd struct {
	flags *Flags
	app   *App

	// flags
	output string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags, app *App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Write all tasks as a JSON array",
		UsageText: "taskboard export [-o tasks.json]",
		Description: `Writes the full task list in the same shape it is persisted in. The
output can be read back with 'taskboard import'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "file to write (stdout if not provided)",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(_ context.Context, c *cli.Command) (err error) {
	var w io.Writer = c.Root().Writer

	if cmd.output != "" {
		f, cerr := os.Create(cmd.output)
		if cerr != nil {
			return fmt.Errorf("create export file: %w", cerr)
		}
		defer func() { err = closeExport(f, err) }()
		w = f
	}

	return iojson.WriteWith(w, c.Root().ErrWriter, cmd.app.Board.Tasks())
}

// closeExport closes the export file and reports the close error unless the
// write already failed.
func closeExport(f io.Closer, err error) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		return fmt.Errorf("close export file: %w", cerr)
	}
	return err
}
