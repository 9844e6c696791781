package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quietgrove/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// newTestRunner wires a Runner to a migrated in-memory database and a
// capture buffer.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	output := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		DB:     db,
		Logger: shared.NewLogger(logs),
		Output: output,
	})
	return runner, output
}

// run parses args against a freshly registered command tree so flag
// state never leaks between invocations.
func run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	root := &cli.Command{Name: "jukebox", Commands: r.register()}
	return root.Run(context.Background(), append([]string{"jukebox"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("services are built from the database", func(t *testing.T) {
			db, err := shared.NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to create database: %v", err)
			}
			defer db.Close()

			runner := NewRunner(RunnerOpts{DB: db})
			if runner.catalog == nil || runner.playlists == nil {
				t.Error("expected services to be constructed from DB")
			}
		})

		t.Run("without a database services stay nil", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.catalog != nil || runner.playlists != nil {
				t.Error("expected no services without a database")
			}
		})
	})

	t.Run("SetLogger", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		replacement := shared.NewLogger(&bytes.Buffer{})
		runner.SetLogger(replacement)
		if runner.logger != replacement {
			t.Error("expected logger to be replaced")
		}
	})
}

func TestMediaCommands(t *testing.T) {
	t.Run("add and get a song", func(t *testing.T) {
		runner, output := newTestRunner(t)

		err := run(t, runner, "media", "add",
			"--type", "song",
			"--name", "Imagine",
			"--duration", "183",
			"--creator", "John Lennon",
			"--album", "Imagine",
		)
		if err != nil {
			t.Fatalf("media add failed: %v", err)
		}
		if !strings.Contains(output.String(), "created #1") {
			t.Errorf("unexpected add output: %q", output.String())
		}

		output.Reset()
		if err := run(t, runner, "media", "get", "--id", "1"); err != nil {
			t.Fatalf("media get failed: %v", err)
		}
		if !strings.Contains(output.String(), "Imagine") {
			t.Errorf("expected get output to name the song, got %q", output.String())
		}
		if !strings.Contains(output.String(), "3:03") {
			t.Errorf("expected formatted duration, got %q", output.String())
		}
	})

	t.Run("add a podcast with defaulted host", func(t *testing.T) {
		runner, output := newTestRunner(t)

		err := run(t, runner, "media", "add",
			"--type", "podcast",
			"--name", "Go Time",
			"--duration", "3600",
			"--creator", "Changelog",
			"--episode", "300",
		)
		if err != nil {
			t.Fatalf("media add failed: %v", err)
		}
		if !strings.Contains(output.String(), "hosted by Changelog") {
			t.Errorf("expected host to default to creator, got %q", output.String())
		}
	})

	t.Run("add rejects an unknown type", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		err := run(t, runner, "media", "add",
			"--type", "audiobook",
			"--name", "X", "--duration", "10", "--creator", "Y",
		)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add surfaces duplicates", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		args := []string{"media", "add", "--type", "song", "--name", "Imagine", "--duration", "183", "--creator", "John Lennon"}
		if err := run(t, runner, args...); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if err := run(t, runner, args...); !errors.Is(err, shared.ErrDuplicateResource) {
			t.Errorf("expected ErrDuplicateResource, got %v", err)
		}
	})

	t.Run("list with sort flag", func(t *testing.T) {
		runner, output := newTestRunner(t)

		for _, args := range [][]string{
			{"media", "add", "--type", "song", "--name", "Zebra", "--duration", "100", "--creator", "A"},
			{"media", "add", "--type", "song", "--name", "Apple", "--duration", "200", "--creator", "B"},
		} {
			if err := run(t, runner, args...); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}

		output.Reset()
		if err := run(t, runner, "media", "list", "--sort", "name"); err != nil {
			t.Fatalf("media list failed: %v", err)
		}

		text := output.String()
		if strings.Index(text, "Apple") > strings.Index(text, "Zebra") {
			t.Errorf("expected name-sorted listing, got:\n%s", text)
		}
		if !strings.Contains(text, "2 item(s)") {
			t.Errorf("expected summary line, got:\n%s", text)
		}
	})

	t.Run("update keeps unset fields", func(t *testing.T) {
		runner, output := newTestRunner(t)

		err := run(t, runner, "media", "add",
			"--type", "song", "--name", "Imagine", "--duration", "183",
			"--creator", "John Lennon", "--genre", "Rock",
		)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		if err := run(t, runner, "media", "update", "--id", "1", "--name", "Imagine (Remastered)"); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		output.Reset()
		if err := run(t, runner, "media", "inspect", "--id", "1"); err != nil {
			t.Fatalf("inspect failed: %v", err)
		}
		text := output.String()
		if !strings.Contains(text, "Imagine (Remastered)") {
			t.Errorf("expected updated name, got:\n%s", text)
		}
		if !strings.Contains(text, "Rock") {
			t.Errorf("expected genre to survive the update, got:\n%s", text)
		}
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		err := run(t, runner, "media", "add",
			"--type", "song", "--name", "Imagine", "--duration", "183", "--creator", "John Lennon",
		)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		if err := run(t, runner, "media", "delete", "--id", "1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if err := run(t, runner, "media", "get", "--id", "1"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPlaylistCommands(t *testing.T) {
	seedSong := func(t *testing.T, runner *Runner, name string) {
		t.Helper()
		err := run(t, runner, "media", "add",
			"--type", "song", "--name", name, "--duration", "183", "--creator", "Various",
		)
		if err != nil {
			t.Fatalf("failed to seed song %q: %v", name, err)
		}
	}

	t.Run("create with initial members", func(t *testing.T) {
		runner, output := newTestRunner(t)
		seedSong(t, runner, "First")
		seedSong(t, runner, "Second")

		output.Reset()
		err := run(t, runner, "playlist", "create", "--name", "Favorites", "--media", "1, 2")
		if err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}
		if !strings.Contains(output.String(), "(2 items)") {
			t.Errorf("expected 2 members, got %q", output.String())
		}
	})

	t.Run("create rejects unknown member ids", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		err := run(t, runner, "playlist", "create", "--name", "Favorites", "--media", "42")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create rejects a malformed id list", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		err := run(t, runner, "playlist", "create", "--name", "Favorites", "--media", "1,x")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("show by name is case-insensitive", func(t *testing.T) {
		runner, output := newTestRunner(t)
		seedSong(t, runner, "First")

		if err := run(t, runner, "playlist", "create", "--name", "Morning Mix", "--media", "1"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}

		output.Reset()
		if err := run(t, runner, "playlist", "show", "--name", "morning mix"); err != nil {
			t.Fatalf("playlist show failed: %v", err)
		}
		if !strings.Contains(output.String(), "First") {
			t.Errorf("expected member listing, got %q", output.String())
		}
	})

	t.Run("show requires id or name", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := run(t, runner, "playlist", "show"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add and remove membership", func(t *testing.T) {
		runner, output := newTestRunner(t)
		seedSong(t, runner, "First")

		if err := run(t, runner, "playlist", "create", "--name", "Favorites"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}
		if err := run(t, runner, "playlist", "add", "--id", "1", "--media", "1"); err != nil {
			t.Fatalf("playlist add failed: %v", err)
		}

		output.Reset()
		if err := run(t, runner, "playlist", "show", "--id", "1"); err != nil {
			t.Fatalf("playlist show failed: %v", err)
		}
		if !strings.Contains(output.String(), "First") {
			t.Errorf("expected member in listing, got %q", output.String())
		}

		if err := run(t, runner, "playlist", "remove", "--id", "1", "--media", "1"); err != nil {
			t.Fatalf("playlist remove failed: %v", err)
		}

		output.Reset()
		if err := run(t, runner, "playlist", "show", "--id", "1"); err != nil {
			t.Fatalf("playlist show failed: %v", err)
		}
		if !strings.Contains(output.String(), "no media found") {
			t.Errorf("expected empty listing, got %q", output.String())
		}
	})

	t.Run("update rejects rename collision", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := run(t, runner, "playlist", "create", "--name", "First"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}
		if err := run(t, runner, "playlist", "create", "--name", "Second"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}

		err := run(t, runner, "playlist", "update", "--id", "2", "--name", "FIRST")
		if !errors.Is(err, shared.ErrDuplicateResource) {
			t.Errorf("expected ErrDuplicateResource, got %v", err)
		}
	})

	t.Run("export writes a markdown file", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		seedSong(t, runner, "First")

		if err := run(t, runner, "playlist", "create", "--name", "Favorites", "--media", "1"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}

		path := filepath.Join(t.TempDir(), "favorites.md")
		err := run(t, runner, "playlist", "export", "--id", "1", "--format", "markdown", "--output", path)
		if err != nil {
			t.Fatalf("playlist export failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "# Favorites") {
			t.Errorf("unexpected export contents:\n%s", data)
		}
	})

	t.Run("export rejects unknown formats", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := run(t, runner, "playlist", "create", "--name", "Favorites"); err != nil {
			t.Fatalf("playlist create failed: %v", err)
		}

		err := run(t, runner, "playlist", "export", "--id", "1", "--format", "xml")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestSetupCommand(t *testing.T) {
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	runner := NewRunner(RunnerOpts{
		DB:     db,
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Output: &bytes.Buffer{},
	})

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := run(t, runner, "setup", "--config", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
	if _, err := db.Exec("SELECT 1 FROM media LIMIT 1"); err != nil {
		t.Errorf("media table should exist after setup: %v", err)
	}

	if err := run(t, runner, "setup", "rollback"); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}
	if _, err := db.Exec("SELECT 1 FROM media LIMIT 1"); err == nil {
		t.Error("media table should be dropped after rollback")
	}
}
