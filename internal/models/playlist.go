package models

import (
	"fmt"

	"github.com/quietgrove/jukebox/internal/shared"
)

// Playlist is an ordered collection of media references. Playlist names
// are unique case-insensitively across the catalog; the uniqueness rule
// itself is enforced by the playlist service.
type Playlist struct {
	id          int64
	name        string
	description string
	items       []Media
}

// NewPlaylist creates an empty playlist.
func NewPlaylist(name, description string) *Playlist {
	return &Playlist{name: name, description: description}
}

func (p *Playlist) ID() int64               { return p.id }
func (p *Playlist) SetID(id int64)          { p.id = id }
func (p *Playlist) Name() string            { return p.name }
func (p *Playlist) SetName(name string)     { p.name = name }
func (p *Playlist) Description() string     { return p.description }
func (p *Playlist) SetDescription(d string) { p.description = d }

// Items returns the playlist members in order.
func (p *Playlist) Items() []Media { return p.items }

// SetItems replaces the member list, preserving the given order.
func (p *Playlist) SetItems(items []Media) { p.items = items }

// AddItem appends media to the playlist. Re-adding a member that is
// already present (by id) is a no-op.
func (p *Playlist) AddItem(m Media) {
	if m == nil {
		return
	}
	if m.ID() > 0 && p.Contains(m.ID()) {
		return
	}
	p.items = append(p.items, m)
}

// Contains reports whether the playlist holds a member with the given id.
func (p *Playlist) Contains(mediaID int64) bool {
	for _, item := range p.items {
		if item.ID() == mediaID {
			return true
		}
	}
	return false
}

// Validate checks the playlist invariants. Empty playlists are valid;
// members are only required to be well-formed once present.
func (p *Playlist) Validate() error {
	if isBlank(p.name) {
		return fmt.Errorf("%w: playlist name cannot be empty", shared.ErrInvalidInput)
	}
	return nil
}

func (p *Playlist) IsValid() bool { return p.Validate() == nil }

// Describe returns a one-line summary of the playlist.
func (p *Playlist) Describe() string {
	return fmt.Sprintf("Playlist: %q (%d items)", p.name, len(p.items))
}
