package main

import (
	"math/rand"
	"time"

	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/world"
)

// newWorld builds a fresh city with the player on its middle crossing.
func newWorld(cfg *config.Config, hud world.HUD) (*world.World, error) {
	m, err := loadMaze(cfg)
	if err != nil {
		return nil, err
	}
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return world.Build(cfg, m, hud, world.RealClock{}, rand.New(rand.NewSource(seed)))
}
