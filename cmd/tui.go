package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/quietgrove/jukebox/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse starts the interactive catalog browser. Log output is routed
// to a file so it never corrupts the alternate screen.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	logPath := r.config.Logging.TUILogPath
	if cmd.IsSet("log") {
		logPath = cmd.String("log")
	}

	if logPath != "" {
		fileLogger, err := shared.NewFileLogger(logPath)
		if err != nil {
			return err
		}
		r.SetLogger(shared.WithLogger(fileLogger, "component", "browser"))
	}

	model := ui.NewModel(r.catalog, r.playlists)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}

func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse the catalog and playlists interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log", Usage: "Write logs to this file while the browser runs"},
		},
		Action: r.Browse,
	}
}
