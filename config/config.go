// Package config loads game settings from YAML, layered over embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zucenko/ecocity/layout"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Maze   MazeConfig   `yaml:"maze"`
	Layout LayoutConfig `yaml:"layout"`
	Game   GameConfig   `yaml:"game"`
	Screen ScreenConfig `yaml:"screen"`
	Server ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// MazeConfig selects the city grid. File, when set, points to an ASCII maze
// that replaces generation.
type MazeConfig struct {
	Size int    `yaml:"size"`
	Seed int64  `yaml:"seed"` // 0 = time based
	File string `yaml:"file"`
}

type LayoutConfig struct {
	TileSize              float64 `yaml:"tile_size"`
	RoadScale             float64 `yaml:"road_scale"`
	BuildingScale         float64 `yaml:"building_scale"`
	BuildingScaleIncrease float64 `yaml:"building_scale_increase"`
	Spacing               float64 `yaml:"spacing"`
	ItemScale             float64 `yaml:"item_scale"`
}

type GameConfig struct {
	TimeLimit    int     `yaml:"time_limit"`    // seconds
	TickRate     int     `yaml:"tick_rate"`     // ticks per second
	PopupSeconds int     `yaml:"popup_seconds"` // item popup lifetime
	WalkSpeed    float64 `yaml:"walk_speed"`    // units per tick
	SprintSpeed  float64 `yaml:"sprint_speed"`  // units per tick
}

type ScreenConfig struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	ViewportWidth  int    `yaml:"viewport_width"`
	ViewportHeight int    `yaml:"viewport_height"`
	Title          string `yaml:"title"`
	Assets         string `yaml:"assets"`
	Debug          bool   `yaml:"debug"`
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	Static      string `yaml:"static"`
	MaxSessions int    `yaml:"max_sessions"`
}

// Load reads the embedded defaults and, if path is not empty, overlays the
// file found there. Only keys present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Maze.File == "" && c.Maze.Size < layout.MinSize():
		return fmt.Errorf("%w: maze.size %d, at least %d fits the item catalog", ErrInvalid, c.Maze.Size, layout.MinSize())
	case c.Layout.TileSize <= 0 || c.Layout.RoadScale <= 0 || c.Layout.BuildingScale <= 0 || c.Layout.ItemScale <= 0:
		return fmt.Errorf("%w: layout sizes must be positive", ErrInvalid)
	case c.Game.TimeLimit < 1:
		return fmt.Errorf("%w: game.time_limit %d", ErrInvalid, c.Game.TimeLimit)
	case c.Game.TickRate < 1:
		return fmt.Errorf("%w: game.tick_rate %d", ErrInvalid, c.Game.TickRate)
	case c.Screen.ViewportWidth <= 0 || c.Screen.ViewportHeight <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalid)
	case c.Server.MaxSessions < 1:
		return fmt.Errorf("%w: server.max_sessions %d", ErrInvalid, c.Server.MaxSessions)
	}
	return nil
}

func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.TickRate)
}

func (c *Config) PopupDuration() time.Duration {
	return time.Duration(c.Game.PopupSeconds) * time.Second
}
