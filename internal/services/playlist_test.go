package services

import (
	"errors"
	"testing"

	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
)

func TestPlaylistServiceCreatePlaylist(t *testing.T) {
	t.Run("persists a valid playlist", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		created, err := playlists.CreatePlaylist(models.NewPlaylist("Favorites", "greats"))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if created.ID() <= 0 {
			t.Error("expected id to be assigned")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		_, err := playlists.CreatePlaylist(models.NewPlaylist("  ", ""))
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects duplicate name case-insensitively", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		if _, err := playlists.CreatePlaylist(models.NewPlaylist("Morning Mix", "")); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		_, err := playlists.CreatePlaylist(models.NewPlaylist("MORNING MIX", ""))
		if !errors.Is(err, shared.ErrDuplicateResource) {
			t.Errorf("expected ErrDuplicateResource, got %v", err)
		}
	})

	t.Run("allows empty playlists", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		created, err := playlists.CreatePlaylist(models.NewPlaylist("Empty", ""))
		if err != nil {
			t.Fatalf("failed to create empty playlist: %v", err)
		}
		if len(created.Items()) != 0 {
			t.Errorf("expected no members, got %d", len(created.Items()))
		}
	})
}

func TestPlaylistServiceLookup(t *testing.T) {
	t.Run("non-positive id is not found", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		if _, err := playlists.GetPlaylistByID(0); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank name is invalid input", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		if _, err := playlists.GetPlaylistByName("  "); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("name lookup is case-insensitive", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		created, err := playlists.CreatePlaylist(models.NewPlaylist("Morning Mix", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		found, err := playlists.GetPlaylistByName("morning mix")
		if err != nil {
			t.Fatalf("failed to find playlist: %v", err)
		}
		if found.ID() != created.ID() {
			t.Errorf("expected playlist %d, got %d", created.ID(), found.ID())
		}
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		if _, err := playlists.GetPlaylistByName("no such list"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPlaylistServiceUpdatePlaylist(t *testing.T) {
	t.Run("rename into collision is rejected", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		if _, err := playlists.CreatePlaylist(models.NewPlaylist("First", "")); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		second, err := playlists.CreatePlaylist(models.NewPlaylist("Second", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		second.SetName("first")
		_, err = playlists.UpdatePlaylist(second.ID(), second)
		if !errors.Is(err, shared.ErrDuplicateResource) {
			t.Errorf("expected ErrDuplicateResource, got %v", err)
		}
	})

	t.Run("keeping the name with a case change is allowed", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		created, err := playlists.CreatePlaylist(models.NewPlaylist("favorites", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		created.SetName("Favorites")
		updated, err := playlists.UpdatePlaylist(created.ID(), created)
		if err != nil {
			t.Fatalf("failed to rename playlist to its own name: %v", err)
		}
		if updated.Name() != "Favorites" {
			t.Errorf("expected renamed playlist, got %s", updated.Name())
		}
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		_, err := playlists.UpdatePlaylist(999, models.NewPlaylist("Ghost", ""))
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPlaylistServiceMembership(t *testing.T) {
	t.Run("add requires both sides to exist", func(t *testing.T) {
		catalog, playlists, db := setupServices(t)
		defer db.Close()

		song, err := catalog.CreateMedia(models.NewSong("Imagine", 183, "John Lennon"))
		if err != nil {
			t.Fatalf("failed to create song: %v", err)
		}
		playlist, err := playlists.CreatePlaylist(models.NewPlaylist("Favorites", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if err := playlists.AddMediaToPlaylist(999, song.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound for missing playlist, got %v", err)
		}
		if err := playlists.AddMediaToPlaylist(playlist.ID(), 999); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound for missing media, got %v", err)
		}
		if err := playlists.AddMediaToPlaylist(playlist.ID(), song.ID()); err != nil {
			t.Errorf("expected add to succeed, got %v", err)
		}
	})

	t.Run("re-adding a member is a no-op", func(t *testing.T) {
		catalog, playlists, db := setupServices(t)
		defer db.Close()

		song, err := catalog.CreateMedia(models.NewSong("Imagine", 183, "John Lennon"))
		if err != nil {
			t.Fatalf("failed to create song: %v", err)
		}
		playlist, err := playlists.CreatePlaylist(models.NewPlaylist("Favorites", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		for i := 0; i < 2; i++ {
			if err := playlists.AddMediaToPlaylist(playlist.ID(), song.ID()); err != nil {
				t.Fatalf("add %d failed: %v", i, err)
			}
		}

		got, err := playlists.GetPlaylistByID(playlist.ID())
		if err != nil {
			t.Fatalf("failed to re-read playlist: %v", err)
		}
		if len(got.Items()) != 1 {
			t.Errorf("expected 1 member, got %d", len(got.Items()))
		}
	})

	t.Run("removing a non-member succeeds", func(t *testing.T) {
		_, playlists, db := setupServices(t)
		defer db.Close()

		playlist, err := playlists.CreatePlaylist(models.NewPlaylist("Favorites", ""))
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if err := playlists.RemoveMediaFromPlaylist(playlist.ID(), 999); err != nil {
			t.Errorf("expected no error removing non-member, got %v", err)
		}
	})
}

// TestCatalogAndPlaylistsEndToEnd drives the two services together the
// way the CLI does.
func TestCatalogAndPlaylistsEndToEnd(t *testing.T) {
	catalog, playlists, db := setupServices(t)
	defer db.Close()

	imagine, err := catalog.CreateMedia(models.NewSong("Imagine", 183, "John Lennon"))
	if err != nil {
		t.Fatalf("failed to create song: %v", err)
	}

	goTime := models.NewPodcast("Go Time", 3600, "Changelog")
	goTime.SetEpisodeNumber(300)
	created, err := catalog.CreateMedia(goTime)
	if err != nil {
		t.Fatalf("failed to create podcast: %v", err)
	}

	favorites, err := playlists.CreatePlaylist(models.NewPlaylist("Favorites", "mixed media"))
	if err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}

	for _, mediaID := range []int64{imagine.ID(), created.ID()} {
		if err := playlists.AddMediaToPlaylist(favorites.ID(), mediaID); err != nil {
			t.Fatalf("failed to add media %d: %v", mediaID, err)
		}
	}

	got, err := playlists.GetPlaylistByName("FAVORITES")
	if err != nil {
		t.Fatalf("failed to find playlist by name: %v", err)
	}
	items := got.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 members, got %d", len(items))
	}
	if items[0].ID() != imagine.ID() || items[1].ID() != created.ID() {
		t.Errorf("expected add order preserved, got %d, %d", items[0].ID(), items[1].ID())
	}
	if _, ok := items[1].(*models.Podcast); !ok {
		t.Errorf("expected second member to be a podcast, got %T", items[1])
	}

	// Deleting the catalog entries empties the playlist via cascade.
	if err := catalog.DeleteMedia(imagine.ID()); err != nil {
		t.Fatalf("failed to delete song: %v", err)
	}
	if err := catalog.DeleteMedia(created.ID()); err != nil {
		t.Fatalf("failed to delete podcast: %v", err)
	}

	got, err = playlists.GetPlaylistByID(favorites.ID())
	if err != nil {
		t.Fatalf("failed to re-read playlist: %v", err)
	}
	if len(got.Items()) != 0 {
		t.Errorf("expected playlist to be emptied by cascade, got %d members", len(got.Items()))
	}
}
