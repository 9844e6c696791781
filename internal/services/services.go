package services

import (
	"github.com/quietgrove/jukebox/internal/models"
)

// Catalog defines the media catalog operations exposed to the
// presentation layer.
type Catalog interface {
	// CreateMedia validates m, rejects duplicates of its
	// (name, type, creator) triple and durations over the ceiling,
	// then persists it and returns it with an assigned id.
	CreateMedia(m models.Media) (models.Media, error)

	// GetAllMedia returns every catalog entry ordered by id.
	GetAllMedia() ([]models.Media, error)

	// GetMediaByID returns the entry with the given id.
	GetMediaByID(id int64) (models.Media, error)

	// UpdateMedia validates m and replaces the mutable fields of an
	// existing entry. The id and variant of an entry never change.
	UpdateMedia(id int64, m models.Media) (models.Media, error)

	// DeleteMedia removes an existing entry and its playlist
	// memberships.
	DeleteMedia(id int64) error

	// GetMediaByType returns entries of one variant ordered by name.
	GetMediaByType(t models.MediaType) ([]models.Media, error)

	// GetMediaByCreator returns entries by creator, case-insensitively.
	GetMediaByCreator(creator string) ([]models.Media, error)

	// SearchMediaByName returns entries whose name contains the
	// keyword, case-insensitively.
	SearchMediaByName(keyword string) ([]models.Media, error)
}

// Playlists defines the playlist operations exposed to the presentation
// layer.
type Playlists interface {
	// CreatePlaylist validates p, rejects duplicate names, and
	// persists the playlist together with its initial members.
	CreatePlaylist(p *models.Playlist) (*models.Playlist, error)

	// GetAllPlaylists returns every playlist ordered by id.
	GetAllPlaylists() ([]*models.Playlist, error)

	// GetPlaylistByID returns the playlist with the given id.
	GetPlaylistByID(id int64) (*models.Playlist, error)

	// GetPlaylistByName returns the playlist with the given name,
	// matched case-insensitively.
	GetPlaylistByName(name string) (*models.Playlist, error)

	// UpdatePlaylist replaces name and description; a name change is
	// re-checked for uniqueness against the other playlists.
	UpdatePlaylist(id int64, p *models.Playlist) (*models.Playlist, error)

	// DeletePlaylist removes an existing playlist and its memberships.
	DeletePlaylist(id int64) error

	// AddMediaToPlaylist records a membership; both sides must exist.
	// Re-adding an existing member is a no-op.
	AddMediaToPlaylist(playlistID, mediaID int64) error

	// RemoveMediaFromPlaylist removes a membership; removing a
	// non-member is a no-op.
	RemoveMediaFromPlaylist(playlistID, mediaID int64) error
}
