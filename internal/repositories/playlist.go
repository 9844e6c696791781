package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
)

// PlaylistRepository persists playlists and the playlist_items join
// table. Member lists are resolved through the MediaRepository so that
// every fetched playlist carries fully typed media values.
type PlaylistRepository struct {
	db    *sql.DB
	media *MediaRepository
}

// NewPlaylistRepository creates a new PlaylistRepository backed by the
// given connection and media repository.
func NewPlaylistRepository(db *sql.DB, media *MediaRepository) *PlaylistRepository {
	return &PlaylistRepository{db: db, media: media}
}

// Create inserts the playlist row and a membership for every initial
// item that already has an assigned id, all inside one transaction: a
// failed membership insert rolls the playlist row back too.
func (r *PlaylistRepository) Create(p *models.Playlist) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", shared.ErrStorageFailure, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO playlists (name, description) VALUES (?, ?)", p.Name(), nullable(p.Description()))
	if err != nil {
		return fmt.Errorf("%w: failed to insert playlist: %w", shared.ErrStorageFailure, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read generated playlist id: %w", shared.ErrStorageFailure, err)
	}

	for position, item := range p.Items() {
		if item.ID() <= 0 {
			continue
		}
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO playlist_items (playlist_id, media_id, position) VALUES (?, ?, ?)",
			id, item.ID(), position,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to insert playlist member %d: %w", shared.ErrStorageFailure, item.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit playlist creation: %w", shared.ErrStorageFailure, err)
	}

	p.SetID(id)
	return nil
}

// GetAll retrieves every playlist ordered by id, members included.
func (r *PlaylistRepository) GetAll() ([]*models.Playlist, error) {
	rows, err := r.db.Query("SELECT id, name, description FROM playlists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query playlists: %w", shared.ErrStorageFailure, err)
	}
	defer rows.Close()

	playlists := make([]*models.Playlist, 0)
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration error: %w", shared.ErrStorageFailure, err)
	}

	for _, p := range playlists {
		items, err := r.Members(p.ID())
		if err != nil {
			return nil, err
		}
		p.SetItems(items)
	}

	return playlists, nil
}

// GetByID retrieves a playlist by id with its full member list.
func (r *PlaylistRepository) GetByID(id int64) (*models.Playlist, error) {
	row := r.db.QueryRow("SELECT id, name, description FROM playlists WHERE id = ?", id)

	p, err := scanPlaylist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: playlist %d", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.Members(id)
	if err != nil {
		return nil, err
	}
	p.SetItems(items)

	return p, nil
}

// Update replaces the name and description of the playlist with the
// given id. Memberships are managed only through AddMedia/RemoveMedia.
func (r *PlaylistRepository) Update(id int64, p *models.Playlist) (*models.Playlist, error) {
	exists, err := r.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: playlist %d", shared.ErrNotFound, id)
	}

	_, err = r.db.Exec("UPDATE playlists SET name = ?, description = ? WHERE id = ?", p.Name(), nullable(p.Description()), id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update playlist %d: %w", shared.ErrStorageFailure, id, err)
	}

	p.SetID(id)
	return p, nil
}

// Delete removes the playlist with the given id, cascading its
// membership rows.
func (r *PlaylistRepository) Delete(id int64) error {
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: playlist %d", shared.ErrNotFound, id)
	}

	if _, err := r.db.Exec("DELETE FROM playlists WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: failed to delete playlist %d: %w", shared.ErrStorageFailure, id, err)
	}
	return nil
}

// Exists reports whether a playlist row with the given id exists.
func (r *PlaylistRepository) Exists(id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check playlist existence: %w", shared.ErrStorageFailure, err)
	}
	return exists, nil
}

// AddMedia records a membership at the next free position. Adding a
// media id that is already a member is a no-op.
func (r *PlaylistRepository) AddMedia(playlistID, mediaID int64) error {
	query := `
		INSERT OR IGNORE INTO playlist_items (playlist_id, media_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM playlist_items WHERE playlist_id = ?))
	`

	if _, err := r.db.Exec(query, playlistID, mediaID, playlistID); err != nil {
		return fmt.Errorf("%w: failed to add media %d to playlist %d: %w", shared.ErrStorageFailure, mediaID, playlistID, err)
	}
	return nil
}

// RemoveMedia deletes a membership. Removing a non-member is a no-op.
func (r *PlaylistRepository) RemoveMedia(playlistID, mediaID int64) error {
	_, err := r.db.Exec("DELETE FROM playlist_items WHERE playlist_id = ? AND media_id = ?", playlistID, mediaID)
	if err != nil {
		return fmt.Errorf("%w: failed to remove media %d from playlist %d: %w", shared.ErrStorageFailure, mediaID, playlistID, err)
	}
	return nil
}

// Members returns the playlist's media ordered by stored position then
// media id, each resolved through the media repository. A membership
// whose media row cannot be resolved indicates a referential-integrity
// breach and is reported, never silently dropped.
func (r *PlaylistRepository) Members(playlistID int64) ([]models.Media, error) {
	rows, err := r.db.Query(
		"SELECT media_id FROM playlist_items WHERE playlist_id = ? ORDER BY position, media_id",
		playlistID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query playlist members: %w", shared.ErrStorageFailure, err)
	}
	defer rows.Close()

	var memberIDs []int64
	for rows.Next() {
		var mediaID int64
		if err := rows.Scan(&mediaID); err != nil {
			return nil, fmt.Errorf("%w: failed to scan playlist member: %w", shared.ErrStorageFailure, err)
		}
		memberIDs = append(memberIDs, mediaID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration error: %w", shared.ErrStorageFailure, err)
	}

	members := make([]models.Media, 0, len(memberIDs))
	for _, mediaID := range memberIDs {
		m, err := r.media.GetByID(mediaID)
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: playlist %d references missing media %d", shared.ErrStorageFailure, playlistID, mediaID)
		}
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

// ExistsByName reports whether a playlist with the given name exists,
// case-insensitively.
func (r *PlaylistRepository) ExistsByName(name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE LOWER(name) = LOWER(?))", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check playlist existence by name: %w", shared.ErrStorageFailure, err)
	}
	return exists, nil
}

// FindByName retrieves a playlist by exact name, case-insensitively,
// with its full member list. No match is ErrNotFound.
func (r *PlaylistRepository) FindByName(name string) (*models.Playlist, error) {
	row := r.db.QueryRow("SELECT id, name, description FROM playlists WHERE LOWER(name) = LOWER(?)", name)

	p, err := scanPlaylist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: playlist %q", shared.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.Members(p.ID())
	if err != nil {
		return nil, err
	}
	p.SetItems(items)

	return p, nil
}

// scanPlaylist maps a playlist row without its members.
func scanPlaylist(s scanner) (*models.Playlist, error) {
	var (
		id          int64
		name        string
		description sql.NullString
	)

	err := s.Scan(&id, &name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan playlist row: %w", shared.ErrStorageFailure, err)
	}

	p := models.NewPlaylist(name, description.String)
	p.SetID(id)
	return p, nil
}
