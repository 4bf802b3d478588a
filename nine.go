package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-patch panel: corners keep their size, edges and the
// centre stretch to fill the box.
type Nine struct {
	image          *ebiten.Image
	alpha          float64
	R, G, B, Scale float64
	// source cuts: outer top left, inner top left, inner bottom right, outer bottom right
	positions [4][2]int
	x, y      float64
	width     float64
	height    float64
	// target cuts on screen, same order as positions
	targets [4][2]float64
}

const PANEL_RADIUS = 12

// NewPanel builds a rounded panel image in memory so the popup needs no file.
func NewPanel(r, g, b float64) *Nine {
	side := PANEL_RADIUS*2 + 1
	rgba := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := x-PANEL_RADIUS, y-PANEL_RADIUS
			if dx*dx+dy*dy <= PANEL_RADIUS*PANEL_RADIUS {
				rgba.Set(x, y, color.White)
			}
		}
	}
	// the middle row and column become the stretchable edges
	for i := 0; i < side; i++ {
		rgba.Set(i, PANEL_RADIUS, color.White)
		rgba.Set(PANEL_RADIUS, i, color.White)
	}
	img, _ := ebiten.NewImageFromImage(rgba, ebiten.FilterDefault)
	return &Nine{
		image: img,
		alpha: 1,
		R:     r, G: g, B: b, Scale: 1,
		positions: [4][2]int{{0, 0}, {PANEL_RADIUS, PANEL_RADIUS}, {PANEL_RADIUS + 1, PANEL_RADIUS + 1}, {side, side}},
	}
}

func (n *Nine) SetAlpha(a float64) {
	n.alpha = a
}

func (n *Nine) SetBounds(x, y, width, height float64) {
	n.x, n.y, n.width, n.height = x, y, width, height
	n.targets[0] = [2]float64{x, y}
	n.targets[1] = [2]float64{
		x + n.Scale*float64(n.positions[1][0]-n.positions[0][0]),
		y + n.Scale*float64(n.positions[1][1]-n.positions[0][1]),
	}
	n.targets[2] = [2]float64{
		x + width - n.Scale*float64(n.positions[3][0]-n.positions[2][0]),
		y + height - n.Scale*float64(n.positions[3][1]-n.positions[2][1]),
	}
	n.targets[3] = [2]float64{x + width, y + height}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			tw := n.targets[col+1][0] - n.targets[col][0]
			th := n.targets[row+1][1] - n.targets[row][1]
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(tw/float64(src.Dx()), th/float64(src.Dy()))
			op.GeoM.Translate(n.targets[col][0], n.targets[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			_ = screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
