package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/repositories"
	"github.com/quietgrove/jukebox/internal/services"
	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	db        *sql.DB
	catalog   services.Catalog
	playlists services.Playlists
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	DB        *sql.DB
	Catalog   services.Catalog
	Playlists services.Playlists
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided dependencies. When
// Catalog/Playlists are not supplied they are constructed on top of DB.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.DB != nil && (opts.Catalog == nil || opts.Playlists == nil) {
		mediaRepo := repositories.NewMediaRepository(opts.DB)
		playlistRepo := repositories.NewPlaylistRepository(opts.DB, mediaRepo)
		if opts.Catalog == nil {
			opts.Catalog = services.NewCatalogService(mediaRepo, opts.Logger)
		}
		if opts.Playlists == nil {
			opts.Playlists = services.NewPlaylistService(playlistRepo, mediaRepo, opts.Logger)
		}
	}

	return &Runner{
		config:    opts.Config,
		db:        opts.DB,
		catalog:   opts.Catalog,
		playlists: opts.Playlists,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. for file logging while the
// browser owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, mediaCommand, playlistCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeMediaTable prints one line per media entry.
func (r *Runner) writeMediaTable(media []models.Media) {
	if len(media) == 0 {
		r.writePlain("no media found\n")
		return
	}
	for _, m := range media {
		r.writePlain("%4d  %-10s %-30s %-20s %8s\n",
			m.ID(), m.Type(), m.Name(), m.Creator(), shared.FormatDuration(m.Duration()))
	}
	r.writePlain("%d item(s), total %s\n", len(media), shared.FormatDuration(models.TotalDuration(media)))
}
