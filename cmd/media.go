package main

import (
	"context"

	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// MediaAdd creates a new catalog entry from the command flags.
func (r *Runner) MediaAdd(ctx context.Context, cmd *cli.Command) error {
	mediaType, err := models.ParseMediaType(cmd.String("type"))
	if err != nil {
		return err
	}

	var entry models.Media
	switch mediaType {
	case models.SongType:
		song := models.NewSong(cmd.String("name"), int(cmd.Int("duration")), cmd.String("creator"))
		song.SetAlbum(cmd.String("album"))
		song.SetGenre(cmd.String("genre"))
		if cmd.IsSet("price") {
			song.SetPrice(cmd.Float("price"))
		}
		entry = song
	case models.PodcastType:
		podcast := models.NewPodcast(cmd.String("name"), int(cmd.Int("duration")), cmd.String("creator"))
		if cmd.IsSet("host") {
			podcast.SetHost(cmd.String("host"))
		}
		podcast.SetEpisodeNumber(int(cmd.Int("episode")))
		podcast.SetCategory(cmd.String("category"))
		entry = podcast
	}

	created, err := r.catalog.CreateMedia(entry)
	if err != nil {
		return err
	}

	r.writePlain("✓ created #%d: %s\n", created.ID(), created.Describe())
	return nil
}

// MediaList lists the catalog, optionally filtered by variant or creator
// and re-sorted in memory.
func (r *Runner) MediaList(ctx context.Context, cmd *cli.Command) error {
	var media []models.Media
	var err error

	switch {
	case cmd.IsSet("type"):
		var mediaType models.MediaType
		if mediaType, err = models.ParseMediaType(cmd.String("type")); err != nil {
			return err
		}
		media, err = r.catalog.GetMediaByType(mediaType)
	case cmd.IsSet("creator"):
		media, err = r.catalog.GetMediaByCreator(cmd.String("creator"))
	default:
		media, err = r.catalog.GetAllMedia()
	}
	if err != nil {
		return err
	}

	switch cmd.String("sort") {
	case "name":
		models.SortByName(media)
	case "duration":
		models.SortByDuration(media)
	case "creator":
		models.SortByCreator(media)
	case "type":
		models.SortByTypeAndName(media)
	}

	r.writeMediaTable(media)
	return nil
}

// MediaSearch lists catalog entries whose name contains the keyword.
func (r *Runner) MediaSearch(ctx context.Context, cmd *cli.Command) error {
	media, err := r.catalog.SearchMediaByName(cmd.String("query"))
	if err != nil {
		return err
	}

	r.writeMediaTable(media)
	return nil
}

// MediaGet prints one catalog entry.
func (r *Runner) MediaGet(ctx context.Context, cmd *cli.Command) error {
	entry, err := r.catalog.GetMediaByID(cmd.Int("id"))
	if err != nil {
		return err
	}

	r.writePlain("%s\n", entry.Describe())
	r.writePlain("duration: %s\n", shared.FormatDuration(entry.Duration()))
	return nil
}

// MediaInspect prints the explicit field description of an entry.
func (r *Runner) MediaInspect(ctx context.Context, cmd *cli.Command) error {
	entry, err := r.catalog.GetMediaByID(cmd.Int("id"))
	if err != nil {
		return err
	}

	r.writePlain("%s\n", entry.Describe())
	for _, field := range entry.Fields() {
		r.writePlain("  %-16s %-10s %v\n", field.Name, field.Type, field.Value)
	}
	return nil
}

// MediaUpdate replaces the mutable fields of an existing entry. Flags
// that are not provided keep their current value; the variant of an
// entry never changes.
func (r *Runner) MediaUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")

	entry, err := r.catalog.GetMediaByID(id)
	if err != nil {
		return err
	}

	if cmd.IsSet("name") {
		entry.SetName(cmd.String("name"))
	}
	if cmd.IsSet("duration") {
		entry.SetDuration(int(cmd.Int("duration")))
	}
	if cmd.IsSet("creator") {
		entry.SetCreator(cmd.String("creator"))
	}

	switch v := entry.(type) {
	case *models.Song:
		if cmd.IsSet("album") {
			v.SetAlbum(cmd.String("album"))
		}
		if cmd.IsSet("genre") {
			v.SetGenre(cmd.String("genre"))
		}
		if cmd.IsSet("price") {
			v.SetPrice(cmd.Float("price"))
		}
	case *models.Podcast:
		if cmd.IsSet("host") {
			v.SetHost(cmd.String("host"))
		}
		if cmd.IsSet("episode") {
			v.SetEpisodeNumber(int(cmd.Int("episode")))
		}
		if cmd.IsSet("category") {
			v.SetCategory(cmd.String("category"))
		}
	}

	updated, err := r.catalog.UpdateMedia(id, entry)
	if err != nil {
		return err
	}

	r.writePlain("✓ updated #%d: %s\n", updated.ID(), updated.Describe())
	return nil
}

// MediaDelete removes a catalog entry and its playlist memberships.
func (r *Runner) MediaDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if err := r.catalog.DeleteMedia(id); err != nil {
		return err
	}

	r.writePlain("✓ deleted media #%d\n", id)
	return nil
}

// mediaVariantFlags are the flags shared by add and update.
func mediaVariantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Media name"},
		&cli.IntFlag{Name: "duration", Usage: "Duration in seconds"},
		&cli.StringFlag{Name: "creator", Usage: "Artist or creator name"},
		&cli.StringFlag{Name: "album", Usage: "Album (songs only)"},
		&cli.StringFlag{Name: "genre", Usage: "Genre (songs only)"},
		&cli.FloatFlag{Name: "price", Usage: "Price (songs only)", Value: models.DefaultSongPrice},
		&cli.StringFlag{Name: "host", Usage: "Host (podcasts only, defaults to creator)"},
		&cli.IntFlag{Name: "episode", Usage: "Episode number (podcasts only)"},
		&cli.StringFlag{Name: "category", Usage: "Category (podcasts only)"},
	}
}

func mediaIDFlag() *cli.IntFlag {
	return &cli.IntFlag{Name: "id", Usage: "Media id", Required: true}
}

func mediaCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "media",
		Usage: "Manage the media catalog",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a song or podcast to the catalog",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "Media type (song or podcast)", Required: true},
				}, mediaVariantFlags()...),
				Action: r.MediaAdd,
			},
			{
				Name:  "list",
				Usage: "List catalog entries",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "Filter by media type"},
					&cli.StringFlag{Name: "creator", Usage: "Filter by creator"},
					&cli.StringFlag{Name: "sort", Usage: "Sort by name, duration, creator, or type"},
				},
				Action: r.MediaList,
			},
			{
				Name:  "search",
				Usage: "Search catalog entries by name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Search keyword", Required: true},
				},
				Action: r.MediaSearch,
			},
			{
				Name:   "get",
				Usage:  "Show one catalog entry",
				Flags:  []cli.Flag{mediaIDFlag()},
				Action: r.MediaGet,
			},
			{
				Name:   "inspect",
				Usage:  "Show the field-level description of an entry",
				Flags:  []cli.Flag{mediaIDFlag()},
				Action: r.MediaInspect,
			},
			{
				Name:   "update",
				Usage:  "Update an existing catalog entry",
				Flags:  append([]cli.Flag{mediaIDFlag()}, mediaVariantFlags()...),
				Action: r.MediaUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Delete a catalog entry",
				Flags:  []cli.Flag{mediaIDFlag()},
				Action: r.MediaDelete,
			},
		},
	}
}
