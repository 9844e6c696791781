package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quietgrove/jukebox/internal/formatter"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseMediaIDs splits a comma-separated flag value into media ids.
func parseMediaIDs(value string) ([]int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(value, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid media id %q", shared.ErrInvalidInput, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PlaylistCreate creates a playlist, optionally seeded with catalog
// entries given as a comma-separated id list.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	playlist := models.NewPlaylist(cmd.String("name"), cmd.String("description"))

	ids, err := parseMediaIDs(cmd.String("media"))
	if err != nil {
		return err
	}
	for _, id := range ids {
		entry, err := r.catalog.GetMediaByID(id)
		if err != nil {
			return err
		}
		playlist.AddItem(entry)
	}

	created, err := r.playlists.CreatePlaylist(playlist)
	if err != nil {
		return err
	}

	r.writePlain("✓ created playlist #%d: %s\n", created.ID(), created.Describe())
	return nil
}

// PlaylistList lists all playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	playlists, err := r.playlists.GetAllPlaylists()
	if err != nil {
		return err
	}

	if cmd.Bool("by-size") {
		models.SortPlaylistsBySize(playlists)
	}

	if len(playlists) == 0 {
		r.writePlain("no playlists found\n")
		return nil
	}

	for _, p := range playlists {
		r.writePlain("%4d  %-30s %3d item(s)  %s\n", p.ID(), p.Name(), len(p.Items()), p.Description())
	}
	return nil
}

// PlaylistShow prints one playlist and its members, looked up by id or
// by case-insensitive name.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.resolvePlaylist(cmd)
	if err != nil {
		return err
	}

	r.writePlain("%s\n", playlist.Describe())
	if playlist.Description() != "" {
		r.writePlain("%s\n", playlist.Description())
	}
	r.writePlainln("members:")
	r.writeMediaTable(playlist.Items())
	return nil
}

// PlaylistUpdate renames a playlist and/or replaces its description.
func (r *Runner) PlaylistUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")

	existing, err := r.playlists.GetPlaylistByID(id)
	if err != nil {
		return err
	}

	if cmd.IsSet("name") {
		existing.SetName(cmd.String("name"))
	}
	if cmd.IsSet("description") {
		existing.SetDescription(cmd.String("description"))
	}

	updated, err := r.playlists.UpdatePlaylist(id, existing)
	if err != nil {
		return err
	}

	r.writePlain("✓ updated playlist #%d: %s\n", updated.ID(), updated.Name())
	return nil
}

// PlaylistDelete removes a playlist and its memberships.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if err := r.playlists.DeletePlaylist(id); err != nil {
		return err
	}

	r.writePlain("✓ deleted playlist #%d\n", id)
	return nil
}

// PlaylistAdd records a membership.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.Int("id")
	mediaID := cmd.Int("media")

	if err := r.playlists.AddMediaToPlaylist(playlistID, mediaID); err != nil {
		return err
	}

	r.writePlain("✓ added media #%d to playlist #%d\n", mediaID, playlistID)
	return nil
}

// PlaylistRemove removes a membership.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.Int("id")
	mediaID := cmd.Int("media")

	if err := r.playlists.RemoveMediaFromPlaylist(playlistID, mediaID); err != nil {
		return err
	}

	r.writePlain("✓ removed media #%d from playlist #%d\n", mediaID, playlistID)
	return nil
}

// PlaylistExport writes a playlist to a file in the requested format.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.resolvePlaylist(cmd)
	if err != nil {
		return err
	}

	var data []byte
	var ext string
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportPlaylistToCSV(playlist)
		ext = "csv"
	case "markdown", "md":
		data, err = formatter.ExportPlaylistToMarkdown(playlist)
		ext = "md"
	case "text", "txt":
		data, err = formatter.ExportPlaylistToText(playlist)
		ext = "txt"
	default:
		return fmt.Errorf("%w: unsupported export format %q", shared.ErrInvalidInput, format)
	}
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		slug := strings.ToLower(strings.ReplaceAll(playlist.Name(), " ", "-"))
		outputPath = fmt.Sprintf("%s-%s.%s", slug, shared.GenerateID()[:8], ext)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.writePlain("✓ exported playlist %q to %s\n", playlist.Name(), outputPath)
	return nil
}

// resolvePlaylist looks up a playlist by the id or name flag.
func (r *Runner) resolvePlaylist(cmd *cli.Command) (*models.Playlist, error) {
	if cmd.IsSet("id") {
		return r.playlists.GetPlaylistByID(cmd.Int("id"))
	}
	if cmd.IsSet("name") {
		return r.playlists.GetPlaylistByName(cmd.String("name"))
	}
	return nil, fmt.Errorf("%w: either --id or --name is required", shared.ErrInvalidInput)
}

func playlistLookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "id", Usage: "Playlist id"},
		&cli.StringFlag{Name: "name", Usage: "Playlist name (case-insensitive)"},
	}
}

func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a playlist, optionally with initial members",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true},
					&cli.StringFlag{Name: "description", Usage: "Playlist description"},
					&cli.StringFlag{Name: "media", Usage: "Comma-separated media ids"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "by-size", Usage: "Sort largest first"},
				},
				Action: r.PlaylistList,
			},
			{
				Name:   "show",
				Usage:  "Show a playlist and its members",
				Flags:  playlistLookupFlags(),
				Action: r.PlaylistShow,
			},
			{
				Name:  "update",
				Usage: "Rename a playlist or change its description",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "Playlist id", Required: true},
					&cli.StringFlag{Name: "name", Usage: "New playlist name"},
					&cli.StringFlag{Name: "description", Usage: "New description"},
				},
				Action: r.PlaylistUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "Playlist id", Required: true},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "add",
				Usage: "Add a catalog entry to a playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "Playlist id", Required: true},
					&cli.IntFlag{Name: "media", Usage: "Media id", Required: true},
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a catalog entry from a playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "Playlist id", Required: true},
					&cli.IntFlag{Name: "media", Usage: "Media id", Required: true},
				},
				Action: r.PlaylistRemove,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to CSV, Markdown, or text",
				Flags: append(playlistLookupFlags(),
					&cli.StringFlag{Name: "format", Usage: "csv, markdown, or text", Value: "csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path"},
				),
				Action: r.PlaylistExport,
			},
		},
	}
}
