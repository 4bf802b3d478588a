package main

import (
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/ecocity/model"
)

// drag distance, in pixels, that counts as a fully pushed stick
const STROKE_RADIUS = 80

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke is a drag used as a virtual stick: the offset from where it
// started is the stick deflection.
type Stroke struct {
	source StrokeSource

	initX, initY       int
	currentX, currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

// Axis is the deflection clamped to the unit circle.
func (s *Stroke) Axis() (float64, float64) {
	dx := float64(s.currentX-s.initX) / STROKE_RADIUS
	dy := float64(s.currentY-s.initY) / STROKE_RADIUS
	if l := math.Hypot(dx, dy); l > 1 {
		dx, dy = dx/l, dy/l
	}
	return dx, dy
}

func (g *Game) updateStrokes() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		s.Update()
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readInput merges keyboard, gamepads and drags into one input.
func (g *Game) readInput() model.Input {
	in := model.Input{
		Up:     anyKey(ebiten.KeyW, ebiten.KeyUp),
		Down:   anyKey(ebiten.KeyS, ebiten.KeyDown),
		Left:   anyKey(ebiten.KeyA, ebiten.KeyLeft),
		Right:  anyKey(ebiten.KeyD, ebiten.KeyRight),
		Sprint: anyKey(ebiten.KeyShift),
	}
	for _, id := range ebiten.GamepadIDs() {
		x, y := ebiten.GamepadAxis(id, 0), ebiten.GamepadAxis(id, 1)
		if math.Abs(x) > math.Abs(in.AxisX) {
			in.AxisX = x
		}
		if math.Abs(y) > math.Abs(in.AxisY) {
			in.AxisY = y
		}
		if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0) {
			in.Sprint = true
		}
	}
	for s := range g.strokes {
		x, y := s.Axis()
		if math.Abs(x) > math.Abs(in.AxisX) {
			in.AxisX = x
		}
		if math.Abs(y) > math.Abs(in.AxisY) {
			in.AxisY = y
		}
	}
	return in
}
