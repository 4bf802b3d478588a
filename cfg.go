package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/maze"
)

var (
	configPath = flag.String("config", "", "yaml file overriding the embedded defaults")
	debugFlag  = flag.Bool("debug", false, "start with the debug overlay on")
	seedFlag   = flag.Int64("seed", 0, "maze seed, 0 for a random city")
)

// Load reads the configuration and applies the command line on top of it.
func Load() (*config.Config, error) {
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *debugFlag {
		cfg.Screen.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Maze.Seed = *seedFlag
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	return cfg, nil
}

// loadMaze generates the city grid, or reads it from maze.file when set.
func loadMaze(cfg *config.Config) (*maze.Maze, error) {
	if cfg.Maze.File == "" {
		return maze.Generate(maze.Config{Size: cfg.Maze.Size, Seed: cfg.Maze.Seed})
	}
	file, err := ebitenutil.OpenFile(cfg.Maze.File)
	if err != nil {
		return nil, fmt.Errorf("opening maze file: %w", err)
	}
	defer file.Close()
	m, err := maze.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.Maze.File, err)
	}
	log.Printf("maze loaded from %s, size %d", cfg.Maze.File, m.Size)
	return m, nil
}
