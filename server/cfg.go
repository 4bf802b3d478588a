package server

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/maze"
	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/world"
)

func loadMaze(cfg *config.Config, seed int64) (*maze.Maze, error) {
	if cfg.Maze.File == "" {
		return maze.Generate(maze.Config{Size: cfg.Maze.Size, Seed: seed})
	}
	file, err := os.Open(cfg.Maze.File)
	if err != nil {
		return nil, fmt.Errorf("opening maze file: %w", err)
	}
	defer file.Close()
	return maze.Parse(file)
}

// NewGameSession builds a city for one remote player. A zero maze seed
// gives every session its own city.
func NewGameSession(cfg *config.Config) (*GameSession, error) {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := loadMaze(cfg, seed)
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		Id:       uuid.NewString(),
		State:    GS_NEW,
		mazeSize: m.Size,
		huds:     make([]model.HudEvent, 0),
		done:     make(chan struct{}),
	}
	clock := &postingClock{}
	w, err := world.Build(cfg, m, sessionHUD{gs}, clock, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	gs.World = w
	gs.Loop = world.NewLoop(w, cfg.TickInterval())
	gs.Loop.OnTick = gs.publish
	clock.loop = gs.Loop
	log.WithFields(log.Fields{"session": gs.Id, "maze": m.Size, "seed": seed}).Info("NewGameSession")
	return gs, nil
}
