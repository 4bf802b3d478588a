package world

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/layout"
	"github.com/zucenko/ecocity/maze"
	"github.com/zucenko/ecocity/model"
)

func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Viewport: model.Vec{
			X: float64(cfg.Screen.ViewportWidth),
			Y: float64(cfg.Screen.ViewportHeight),
		},
		PopupDuration: cfg.PopupDuration(),
	}
}

func layoutParams(c config.LayoutConfig) layout.Params {
	return layout.Params{
		TileSize:              c.TileSize,
		RoadScale:             c.RoadScale,
		BuildingScale:         c.BuildingScale,
		BuildingScaleIncrease: c.BuildingScaleIncrease,
		Spacing:               c.Spacing,
		ItemScale:             c.ItemScale,
	}
}

// Build lays out the city of m and puts a fresh player on its spawn road.
func Build(cfg *config.Config, m *maze.Maze, hud HUD, clock Clock, rng *rand.Rand) (*World, error) {
	city, err := layout.Compile(m, layoutParams(cfg.Layout), rng)
	if err != nil {
		return nil, err
	}
	player := model.NewPlayer(city.Spawn, cfg.Game.WalkSpeed, cfg.Game.SprintSpeed)
	w := New(OptionsFrom(cfg), player, model.NewSession(cfg.Game.TimeLimit), hud, clock)
	w.Add(city.Entities...)
	log.WithFields(log.Fields{
		"maze":     m.Size,
		"entities": len(city.Entities),
		"items":    len(city.Items),
	}).Debug("World.Build")
	return w, nil
}
