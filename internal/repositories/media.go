package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
)

// mediaColumns is the select list for every media query, in scan order.
const mediaColumns = "id, name, duration, type, creator, album, genre, price, host, episode_number, category"

// MediaRepository persists the media variant family in a single table
// with a sparse-column union layout: each row reserves columns for both
// variants and populates only those of its own discriminator.
type MediaRepository struct {
	db *sql.DB
}

// NewMediaRepository creates a new MediaRepository with the given database connection
func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// variantColumns serializes the variant-specific column values for m,
// nulling/zeroing the columns that belong to the other variant.
func variantColumns(m models.Media) (album, genre any, price float64, host any, episodeNumber int, category any, err error) {
	switch v := m.(type) {
	case *models.Song:
		return nullable(v.Album()), nullable(v.Genre()), v.Price(), nil, 0, nil, nil
	case *models.Podcast:
		return nil, nil, 0, nullable(v.Host()), v.EpisodeNumber(), nullable(v.Category()), nil
	default:
		return nil, nil, 0, nil, 0, nil, fmt.Errorf("%w: unsupported media variant %T", shared.ErrCorruptData, m)
	}
}

// nullable maps the empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create inserts a new media row and assigns the generated id to m.
func (r *MediaRepository) Create(m models.Media) error {
	album, genre, price, host, episodeNumber, category, err := variantColumns(m)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO media (name, duration, type, creator, album, genre, price, host, episode_number, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.Exec(query,
		m.Name(),
		m.Duration(),
		string(m.Type()),
		m.Creator(),
		album,
		genre,
		price,
		host,
		episodeNumber,
		category,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert media: %w", shared.ErrStorageFailure, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read generated media id: %w", shared.ErrStorageFailure, err)
	}
	m.SetID(id)

	return nil
}

// GetAll retrieves every media row ordered by id.
func (r *MediaRepository) GetAll() ([]models.Media, error) {
	return r.queryMedia("SELECT "+mediaColumns+" FROM media ORDER BY id", nil)
}

// GetByID retrieves a media row by id. A missing row is ErrNotFound,
// never a nil result.
func (r *MediaRepository) GetByID(id int64) (models.Media, error) {
	row := r.db.QueryRow("SELECT "+mediaColumns+" FROM media WHERE id = ?", id)

	m, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the mutable fields of the row with the given id. The
// discriminator column is never updated; the id and tag of a record are
// immutable.
func (r *MediaRepository) Update(id int64, m models.Media) (models.Media, error) {
	exists, err := r.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}

	album, genre, price, host, episodeNumber, category, err := variantColumns(m)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE media
		SET name = ?, duration = ?, creator = ?, album = ?, genre = ?,
		    price = ?, host = ?, episode_number = ?, category = ?
		WHERE id = ?
	`

	_, err = r.db.Exec(query,
		m.Name(),
		m.Duration(),
		m.Creator(),
		album,
		genre,
		price,
		host,
		episodeNumber,
		category,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update media %d: %w", shared.ErrStorageFailure, id, err)
	}

	m.SetID(id)
	return m, nil
}

// Delete removes the row with the given id, cascading its playlist
// memberships. A missing row is ErrNotFound.
func (r *MediaRepository) Delete(id int64) error {
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}

	if _, err := r.db.Exec("DELETE FROM media WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: failed to delete media %d: %w", shared.ErrStorageFailure, id, err)
	}
	return nil
}

// Exists reports whether a media row with the given id exists.
func (r *MediaRepository) Exists(id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM media WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check media existence: %w", shared.ErrStorageFailure, err)
	}
	return exists, nil
}

// FindByType retrieves media of the given variant ordered by name.
func (r *MediaRepository) FindByType(t models.MediaType) ([]models.Media, error) {
	query := "SELECT " + mediaColumns + " FROM media WHERE type = ? ORDER BY name"
	return r.queryMedia(query, []any{string(t)})
}

// FindByCreator retrieves media by creator, case-insensitively, ordered by name.
func (r *MediaRepository) FindByCreator(creator string) ([]models.Media, error) {
	query := "SELECT " + mediaColumns + " FROM media WHERE LOWER(creator) = LOWER(?) ORDER BY name"
	return r.queryMedia(query, []any{creator})
}

// SearchByName retrieves media whose name contains the keyword,
// case-insensitively, ordered by name.
func (r *MediaRepository) SearchByName(keyword string) ([]models.Media, error) {
	query := "SELECT " + mediaColumns + " FROM media WHERE LOWER(name) LIKE LOWER(?) ORDER BY name"
	return r.queryMedia(query, []any{"%" + keyword + "%"})
}

// ExistsByNameTypeCreator reports whether a row with the exact
// (name, type, creator) triple exists, matching names and creators
// case-insensitively.
func (r *MediaRepository) ExistsByNameTypeCreator(name string, t models.MediaType, creator string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM media
			WHERE LOWER(name) = LOWER(?) AND type = ? AND LOWER(creator) = LOWER(?)
		)
	`

	var exists bool
	err := r.db.QueryRow(query, name, string(t), creator).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check media existence: %w", shared.ErrStorageFailure, err)
	}
	return exists, nil
}

// queryMedia runs a multi-row media query and maps every row.
func (r *MediaRepository) queryMedia(query string, args []any) ([]models.Media, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query media: %w", shared.ErrStorageFailure, err)
	}
	defer rows.Close()

	media := make([]models.Media, 0)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration error: %w", shared.ErrStorageFailure, err)
	}

	return media, nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMedia maps a media row to its typed variant. The discriminator
// column is read first and branches to the variant-specific field set;
// an unrecognized discriminator is a fatal mapping error, never
// silently coerced.
func scanMedia(s scanner) (models.Media, error) {
	var (
		id            int64
		name          string
		duration      int
		mediaType     string
		creator       string
		album         sql.NullString
		genre         sql.NullString
		price         sql.NullFloat64
		host          sql.NullString
		episodeNumber sql.NullInt64
		category      sql.NullString
	)

	err := s.Scan(&id, &name, &duration, &mediaType, &creator, &album, &genre, &price, &host, &episodeNumber, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan media row: %w", shared.ErrStorageFailure, err)
	}

	switch models.MediaType(mediaType) {
	case models.SongType:
		song := models.NewSong(name, duration, creator)
		song.SetID(id)
		song.SetAlbum(album.String)
		song.SetGenre(genre.String)
		song.SetPrice(price.Float64)
		return song, nil
	case models.PodcastType:
		podcast := models.NewPodcast(name, duration, creator)
		podcast.SetID(id)
		if host.Valid {
			podcast.SetHost(host.String)
		}
		podcast.SetEpisodeNumber(int(episodeNumber.Int64))
		podcast.SetCategory(category.String)
		return podcast, nil
	default:
		return nil, fmt.Errorf("%w: unknown media type %q in row %d", shared.ErrCorruptData, mediaType, id)
	}
}
