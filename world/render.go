package world

import (
	"fmt"

	"github.com/zucenko/ecocity/model"
)

// Renderer draws in screen space. Positions are centres. Sprites a renderer
// cannot draw yet are skipped.
type Renderer interface {
	Clear()
	Background(screen model.Vec)
	Draw(sprite model.Sprite, pos, size model.Vec)
	Shadow(pos, size model.Vec)
	Hitbox(pos, size model.Vec)
	Text(s string, x, y float64)
}

type Frame struct {
	// Screen is the size of the drawing surface.
	Screen model.Vec
	// ItemLift raises items above their road, for the floating animation.
	ItemLift float64
	Debug    bool
	FPS      float64
}

// Render draws one frame. The player stays in the middle of the screen and
// everything else is shifted by the player's position. Layers, bottom up:
// background, shadows, roads, buildings, player, items, debug overlay.
func (w *World) Render(r Renderer, f Frame) {
	center := f.Screen.Scale(.5)
	offset := center.Sub(w.Player.Pos)
	toScreen := func(p model.Vec) model.Vec { return p.Add(offset) }

	visible := make([]*model.Entity, 0, 64)
	for _, e := range w.entities {
		if IsInsideViewport(e, w.Player.Pos, w.opts.Viewport) {
			visible = append(visible, e)
		}
	}

	r.Clear()
	r.Background(f.Screen)

	for _, e := range visible {
		if e.HasShadow() {
			r.Shadow(toScreen(e.Pos), e.Size())
		}
	}
	if w.Player.HasShadow() {
		r.Shadow(center, w.Player.Size())
	}

	for _, e := range visible {
		if e.Kind == model.ROAD {
			r.Draw(e.Sprite, toScreen(e.Pos), e.Size())
		}
	}
	for _, e := range visible {
		if e.Kind != model.ROAD && e.Kind != model.ITEM {
			r.Draw(e.Sprite, toScreen(e.Pos), e.Size())
		}
	}

	r.Draw(w.Player.Sprite, center, w.Player.Size())

	for _, e := range visible {
		if e.Kind == model.ITEM {
			pos := toScreen(e.Pos)
			pos.Y -= f.ItemLift
			r.Draw(e.Sprite, pos, e.Size())
		}
	}

	if f.Debug {
		w.renderDebug(r, visible, toScreen, center, f.FPS)
	}
}

func (w *World) renderDebug(r Renderer, visible []*model.Entity, toScreen func(model.Vec) model.Vec, center model.Vec, fps float64) {
	for _, e := range visible {
		pos := toScreen(e.Pos)
		r.Hitbox(pos, e.Size())
		r.Text(e.Identifier, pos.X, pos.Y)
	}
	r.Hitbox(center, w.Player.Size())

	r.Text(fmt.Sprintf("X: %.1f", w.Player.Pos.X), 20, 30)
	r.Text(fmt.Sprintf("Y: %.1f", w.Player.Pos.Y), 20, 60)
	r.Text(fmt.Sprintf("FPS: %.0f", fps), 20, 90)
	r.Text(fmt.Sprintf("TPS: %d", w.tps), 20, 120)
}
