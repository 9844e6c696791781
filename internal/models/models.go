package models

import (
	"fmt"

	"github.com/quietgrove/jukebox/internal/shared"
)

// MediaType discriminates the concrete variant a media value (or row)
// represents.
type MediaType string

const (
	SongType    MediaType = "SONG"
	PodcastType MediaType = "PODCAST"
)

// ParseMediaType converts a string to a MediaType, case-insensitively.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(normalizeTag(s)) {
	case SongType:
		return SongType, nil
	case PodcastType:
		return PodcastType, nil
	default:
		return "", fmt.Errorf("%w: unknown media type %q", shared.ErrInvalidInput, s)
	}
}

// Media is the interface implemented by every catalog entry variant.
//
// The discriminator returned by Type is fixed at construction; there is
// deliberately no setter for it.
type Media interface {
	ID() int64
	SetID(int64)
	Name() string
	SetName(string)
	Duration() int // in seconds
	SetDuration(int)
	Creator() string
	SetCreator(string)
	Type() MediaType

	// Validate checks the entity invariants and returns an error
	// wrapping [shared.ErrInvalidInput] when any is violated.
	Validate() error
	// IsValid is the non-throwing boolean form of Validate.
	IsValid() bool

	// Describe returns a one-line human-readable summary.
	Describe() string
	// Fields returns an explicit field-name/type/value description of
	// the entity, base attributes first.
	Fields() []Field
}

// Field describes a single attribute of an entity for display and
// diagnostics.
type Field struct {
	Name  string
	Type  string
	Value any
}

// mediaBase holds the attributes shared by all variants.
type mediaBase struct {
	id        int64
	name      string
	duration  int
	creator   string
	mediaType MediaType
}

func (m *mediaBase) ID() int64           { return m.id }
func (m *mediaBase) SetID(id int64)      { m.id = id }
func (m *mediaBase) Name() string        { return m.name }
func (m *mediaBase) SetName(name string) { m.name = name }
func (m *mediaBase) Duration() int       { return m.duration }
func (m *mediaBase) SetDuration(d int)   { m.duration = d }
func (m *mediaBase) Creator() string     { return m.creator }
func (m *mediaBase) SetCreator(c string) { m.creator = c }
func (m *mediaBase) Type() MediaType     { return m.mediaType }

// validateBase checks the invariants common to all variants.
func (m *mediaBase) validateBase() error {
	if isBlank(m.name) {
		return fmt.Errorf("%w: media name cannot be empty", shared.ErrInvalidInput)
	}
	if m.duration <= 0 {
		return fmt.Errorf("%w: duration must be greater than 0", shared.ErrInvalidInput)
	}
	if isBlank(m.creator) {
		return fmt.Errorf("%w: creator name cannot be empty", shared.ErrInvalidInput)
	}
	return nil
}

// baseFields returns the shared attributes as [Field] descriptions.
func (m *mediaBase) baseFields() []Field {
	return []Field{
		{Name: "id", Type: "int64", Value: m.id},
		{Name: "name", Type: "string", Value: m.name},
		{Name: "duration", Type: "int", Value: m.duration},
		{Name: "creator", Type: "string", Value: m.creator},
		{Name: "type", Type: "MediaType", Value: m.mediaType},
	}
}
