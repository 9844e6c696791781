package models

import (
	"fmt"

	"github.com/quietgrove/jukebox/internal/shared"
)

// DefaultSongPrice is applied to songs created without an explicit price.
const DefaultSongPrice = 0.99

// Song is the SONG variant of the media family.
type Song struct {
	mediaBase
	album string
	genre string
	price float64
}

// NewSong creates a Song with the default price and no album/genre.
func NewSong(name string, duration int, creator string) *Song {
	return &Song{
		mediaBase: mediaBase{name: name, duration: duration, creator: creator, mediaType: SongType},
		price:     DefaultSongPrice,
	}
}

func (s *Song) Album() string      { return s.album }
func (s *Song) SetAlbum(a string)  { s.album = a }
func (s *Song) Genre() string      { return s.genre }
func (s *Song) SetGenre(g string)  { s.genre = g }
func (s *Song) Price() float64     { return s.price }
func (s *Song) SetPrice(p float64) { s.price = p }

// Validate checks the base invariants plus the non-negative price rule.
func (s *Song) Validate() error {
	if err := s.validateBase(); err != nil {
		return err
	}
	if s.price < 0 {
		return fmt.Errorf("%w: song price cannot be negative", shared.ErrInvalidInput)
	}
	return nil
}

func (s *Song) IsValid() bool { return s.Validate() == nil }

// Describe returns a one-line summary of the song.
func (s *Song) Describe() string {
	album := s.album
	if album == "" {
		album = "Unknown"
	}
	genre := s.genre
	if genre == "" {
		genre = "Unknown"
	}
	return fmt.Sprintf("Song: %q by %s from album %q (Genre: %s)", s.name, s.creator, album, genre)
}

// Fields lists the song's attributes, base attributes first.
func (s *Song) Fields() []Field {
	return append(s.baseFields(),
		Field{Name: "album", Type: "string", Value: s.album},
		Field{Name: "genre", Type: "string", Value: s.genre},
		Field{Name: "price", Type: "float64", Value: s.price},
	)
}

// Podcast is the PODCAST variant of the media family.
type Podcast struct {
	mediaBase
	host          string
	episodeNumber int
	category      string
}

// NewPodcast creates a Podcast hosted by its creator with episode 0.
func NewPodcast(name string, duration int, creator string) *Podcast {
	return &Podcast{
		mediaBase: mediaBase{name: name, duration: duration, creator: creator, mediaType: PodcastType},
		host:      creator,
	}
}

func (p *Podcast) Host() string           { return p.host }
func (p *Podcast) SetHost(h string)       { p.host = h }
func (p *Podcast) EpisodeNumber() int     { return p.episodeNumber }
func (p *Podcast) SetEpisodeNumber(n int) { p.episodeNumber = n }
func (p *Podcast) Category() string       { return p.category }
func (p *Podcast) SetCategory(c string)   { p.category = c }

// Validate checks the base invariants plus the host and episode rules.
func (p *Podcast) Validate() error {
	if err := p.validateBase(); err != nil {
		return err
	}
	if isBlank(p.host) {
		return fmt.Errorf("%w: podcast host cannot be empty", shared.ErrInvalidInput)
	}
	if p.episodeNumber < 0 {
		return fmt.Errorf("%w: episode number cannot be negative", shared.ErrInvalidInput)
	}
	return nil
}

func (p *Podcast) IsValid() bool { return p.Validate() == nil }

// Describe returns a one-line summary of the podcast.
func (p *Podcast) Describe() string {
	category := p.category
	if category == "" {
		category = "General"
	}
	return fmt.Sprintf("Podcast: %q hosted by %s (Episode #%d, Category: %s)", p.name, p.host, p.episodeNumber, category)
}

// Fields lists the podcast's attributes, base attributes first.
func (p *Podcast) Fields() []Field {
	return append(p.baseFields(),
		Field{Name: "host", Type: "string", Value: p.host},
		Field{Name: "episode_number", Type: "int", Value: p.episodeNumber},
		Field{Name: "category", Type: "string", Value: p.category},
	)
}
