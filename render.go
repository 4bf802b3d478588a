package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/zucenko/ecocity/model"
)

var (
	COLOR_BACKGROUND = color.RGBA{70, 70, 70, 255}
	COLOR_HITBOX     = color.RGBA{255, 0, 0, 255}
)

// ebitenRenderer draws world layers onto the current screen image.
type ebitenRenderer struct {
	screen *ebiten.Image
	assets *Assets
}

func (r *ebitenRenderer) Clear() {
	r.screen.Clear()
}

func (r *ebitenRenderer) Background(screen model.Vec) {
	ebitenutil.DrawRect(r.screen, 0, 0, screen.X, screen.Y, COLOR_BACKGROUND)
}

// drawScaled stretches img over the box centred on pos.
func (r *ebitenRenderer) drawScaled(img *ebiten.Image, pos, size model.Vec, op *ebiten.DrawImageOptions) {
	w, h := img.Size()
	op.GeoM.Scale(size.X/float64(w), size.Y/float64(h))
	op.GeoM.Translate(pos.X-size.X/2, pos.Y-size.Y/2)
	_ = r.screen.DrawImage(img, op)
}

func (r *ebitenRenderer) Draw(sprite model.Sprite, pos, size model.Vec) {
	img := r.assets.Frame(sprite)
	if img == nil {
		return
	}
	r.drawScaled(img, pos, size, &ebiten.DrawImageOptions{})
}

// Shadow is a flattened ellipse at the feet of the box.
func (r *ebitenRenderer) Shadow(pos, size model.Vec) {
	img := r.assets.Frame(model.Sprite{Sheet: model.SHEET_SHADOW})
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorM.Scale(1, 1, 1, .5)
	r.drawScaled(img, model.Vec{X: pos.X, Y: pos.Y + size.Y/2}, model.Vec{X: size.X, Y: size.Y / 4}, op)
}

func (r *ebitenRenderer) Hitbox(pos, size model.Vec) {
	x, y := pos.X-size.X/2, pos.Y-size.Y/2
	ebitenutil.DrawRect(r.screen, x, y, size.X, 1, COLOR_HITBOX)
	ebitenutil.DrawRect(r.screen, x, y+size.Y-1, size.X, 1, COLOR_HITBOX)
	ebitenutil.DrawRect(r.screen, x, y, 1, size.Y, COLOR_HITBOX)
	ebitenutil.DrawRect(r.screen, x+size.X-1, y, 1, size.Y, COLOR_HITBOX)
}

func (r *ebitenRenderer) Text(s string, x, y float64) {
	ebitenutil.DebugPrintAt(r.screen, s, int(x), int(y))
}
