package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
)

var (
	_ list.Item = mediaItem{}
	_ list.Item = playlistItem{}
)

// mediaItem wraps [models.Media] to implement [list.Item].
type mediaItem struct {
	media models.Media
}

func (i mediaItem) FilterValue() string { return i.media.Name() }
func (i mediaItem) Title() string       { return i.media.Name() }
func (i mediaItem) Description() string {
	return fmt.Sprintf("%s • %s • %s",
		i.media.Creator(),
		i.media.Type(),
		shared.FormatDuration(i.media.Duration()))
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist *models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name() }
func (i playlistItem) Title() string       { return i.playlist.Name() }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d items", len(i.playlist.Items()))
	if i.playlist.Description() != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description())
	}
	return desc
}
