package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/world"
)

type GameState int

const (
	PLAYING GameState = iota + 1
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State    GameState
	World    *world.World
	Overlay  *Overlay
	Config   *config.Config
	Tweens   map[*gween.Tween]Action
	Debug    bool
	renderer *ebitenRenderer
	assets   *Assets
	strokes  map[*Stroke]struct{}
	itemLift float64
	dt       float32
	started  bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	overlay := NewOverlay()
	hud := world.LogHUD{Next: overlay, Fields: log.Fields{"client": cfg.Screen.Title}}
	w, err := newWorld(cfg, hud)
	if err != nil {
		return nil, err
	}
	assets := NewAssets(cfg.Screen.Assets)
	g := &Game{
		State:    PLAYING,
		World:    w,
		Overlay:  overlay,
		Config:   cfg,
		Tweens:   make(map[*gween.Tween]Action),
		Debug:    cfg.Screen.Debug,
		renderer: &ebitenRenderer{assets: assets},
		assets:   assets,
		strokes:  map[*Stroke]struct{}{},
		dt:       1 / float32(cfg.Game.TickRate),
	}
	g.bob()
	return g, nil
}

func (g *Game) update(screen *ebiten.Image) error {
	g.assets.Poll()
	g.updateStrokes()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Debug = !g.Debug
	}

	if !g.started {
		g.World.Start()
		g.started = true
	}
	if g.State == PLAYING {
		g.World.Tick(g.readInput())
		if !g.World.Running() {
			log.WithField("ticks", g.World.Ticks()).Info("Game over")
			g.State = GAME_OVER
		}
	}

	if popup, end := g.Overlay.takeShown(); popup || end {
		if popup {
			g.fade(g.Overlay.setPopupAlpha)
		}
		if end {
			g.fade(g.Overlay.setEndAlpha)
		}
	}
	g.updateTweens(g.dt)

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	w, h := screen.Size()
	g.renderer.screen = screen
	g.World.Render(g.renderer, world.Frame{
		Screen:   model.Vec{X: float64(w), Y: float64(h)},
		ItemLift: g.itemLift,
		Debug:    g.Debug,
		FPS:      ebiten.CurrentFPS(),
	})
	g.Overlay.Draw(screen)
	return nil
}

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetMaxTPS(cfg.Game.TickRate)
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(game.update, cfg.Screen.Width, cfg.Screen.Height, 1, cfg.Screen.Title); err != nil {
		log.Fatal(err)
	}
}
