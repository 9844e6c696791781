package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/repositories"
	"github.com/quietgrove/jukebox/internal/shared"
)

// PlaylistService implements [Playlists] on top of the playlist and
// media repositories.
type PlaylistService struct {
	playlists *repositories.PlaylistRepository
	media     *repositories.MediaRepository
	logger    *log.Logger
}

var _ Playlists = (*PlaylistService)(nil)

// NewPlaylistService creates a PlaylistService with the given repositories and logger.
func NewPlaylistService(playlists *repositories.PlaylistRepository, media *repositories.MediaRepository, logger *log.Logger) *PlaylistService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &PlaylistService{playlists: playlists, media: media, logger: logger}
}

// CreatePlaylist validates p, rejects duplicate names, and persists the
// playlist together with its initial members.
func (s *PlaylistService) CreatePlaylist(p *models.Playlist) (*models.Playlist, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	duplicate, err := s.playlists.ExistsByName(p.Name())
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, fmt.Errorf("%w: playlist %q", shared.ErrDuplicateResource, p.Name())
	}

	if err := s.playlists.Create(p); err != nil {
		return nil, err
	}

	s.logger.Info("playlist created", "id", p.ID(), "name", p.Name(), "items", len(p.Items()))
	return p, nil
}

// GetAllPlaylists returns every playlist ordered by id.
func (s *PlaylistService) GetAllPlaylists() ([]*models.Playlist, error) {
	return s.playlists.GetAll()
}

// GetPlaylistByID returns the playlist with the given id.
func (s *PlaylistService) GetPlaylistByID(id int64) (*models.Playlist, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: playlist %d", shared.ErrNotFound, id)
	}
	return s.playlists.GetByID(id)
}

// GetPlaylistByName returns the playlist with the given name, matched
// case-insensitively. A blank name is invalid input; no match is
// not-found.
func (s *PlaylistService) GetPlaylistByName(name string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name cannot be empty", shared.ErrInvalidInput)
	}
	return s.playlists.FindByName(name)
}

// UpdatePlaylist replaces name and description of an existing playlist.
// When the name changes it is re-checked for uniqueness against the
// other playlists.
func (s *PlaylistService) UpdatePlaylist(id int64, p *models.Playlist) (*models.Playlist, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.playlists.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(existing.Name(), p.Name()) {
		duplicate, err := s.playlists.ExistsByName(p.Name())
		if err != nil {
			return nil, err
		}
		if duplicate {
			return nil, fmt.Errorf("%w: playlist %q", shared.ErrDuplicateResource, p.Name())
		}
	}

	updated, err := s.playlists.Update(id, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info("playlist updated", "id", id, "name", p.Name())
	return updated, nil
}

// DeletePlaylist removes an existing playlist; memberships cascade.
func (s *PlaylistService) DeletePlaylist(id int64) error {
	exists, err := s.playlists.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: playlist %d", shared.ErrNotFound, id)
	}

	if err := s.playlists.Delete(id); err != nil {
		return err
	}

	s.logger.Info("playlist deleted", "id", id)
	return nil
}

// AddMediaToPlaylist verifies both sides exist before recording the
// membership, naming whichever is missing.
func (s *PlaylistService) AddMediaToPlaylist(playlistID, mediaID int64) error {
	exists, err := s.playlists.Exists(playlistID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: playlist %d", shared.ErrNotFound, playlistID)
	}

	exists, err = s.media.Exists(mediaID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: media %d", shared.ErrNotFound, mediaID)
	}

	if err := s.playlists.AddMedia(playlistID, mediaID); err != nil {
		return err
	}

	s.logger.Info("playlist member added", "playlist", playlistID, "media", mediaID)
	return nil
}

// RemoveMediaFromPlaylist removes a membership. The media is not
// required to currently be a member.
func (s *PlaylistService) RemoveMediaFromPlaylist(playlistID, mediaID int64) error {
	if err := s.playlists.RemoveMedia(playlistID, mediaID); err != nil {
		return err
	}

	s.logger.Info("playlist member removed", "playlist", playlistID, "media", mediaID)
	return nil
}
