package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MapDir      string `json:"map_dir" env:"NOX_VERBS_MAP_DIR"`
	World       string `json:"world" env:"NOX_VERBS_WORLD"`
	FeedPath    string `json:"feed_path" env:"NOX_VERBS_FEED"`
	PalettePath string `json:"palette_path" env:"NOX_VERBS_PALETTE"`
	TileSize    int    `json:"tile_size" env:"NOX_VERBS_TILE_SIZE"`
	Width       int    `json:"window_width" env:"NOX_VERBS_WIDTH"`
	Height      int    `json:"window_height" env:"NOX_VERBS_HEIGHT"`
}

func Default() *Config {
	return &Config{
		MapDir:      filepath.Join("assets", "worlds"),
		World:       "station",
		PalettePath: filepath.Join("assets", "palette.json"),
		TileSize:    48,
		Width:       800,
		Height:      600,
	}
}

func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	configDir := filepath.Join(home, ".config", "nox-verbs")
	os.MkdirAll(configDir, 0755)
	return filepath.Join(configDir, "config.json")
}

// Load reads the config file, falling back to defaults, then applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			cfg = Default()
		}
	}

	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.fill()
	return cfg, nil
}

func (c *Config) fill() {
	d := Default()
	if c.TileSize <= 0 {
		c.TileSize = d.TileSize
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.World == "" {
		c.World = d.World
	}
}

func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
