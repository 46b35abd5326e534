package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"world": "outpost", "tile_size": 32, "feed_path": "/tmp/feed"}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NOX_VERBS_TILE_SIZE", "64")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World != "outpost" || cfg.FeedPath != "/tmp/feed" {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.TileSize != 64 {
		t.Fatalf("env should override tile size, got %d", cfg.TileSize)
	}
	if cfg.Width != 800 {
		t.Fatalf("unset width should keep its default, got %d", cfg.Width)
	}
}

func TestLoadFrom_BadJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{not json`), 0644)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World != "station" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadFrom_BadEnv(t *testing.T) {
	t.Setenv("NOX_VERBS_TILE_SIZE", "huge")
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an env parse error")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.World = "derelict"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.World != "derelict" {
		t.Fatalf("got %+v", got)
	}
}
