package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// halfPlane allows everything left of a vertical line.
type halfPlane struct{ maxX float64 }

func (h halfPlane) Walkable(p Vec) bool { return p.X < h.maxX }

func TestPlayerStep(t *testing.T) {
	p := NewPlayer(Vec{}, 2.5, 4)

	tests := []struct {
		name string
		in   Input
		want Vec
	}{
		{"idle", Input{}, Vec{}},
		{"up", Input{Up: true}, Vec{0, -2.5}},
		{"down right", Input{Down: true, Right: true}, Vec{2.5, 2.5}},
		{"sprint left", Input{Left: true, Sprint: true}, Vec{-4, 0}},
		{"opposite keys cancel", Input{Left: true, Right: true}, Vec{}},
		{"stick", Input{AxisX: .5, AxisY: -1}, Vec{1.25, -2.5}},
		{"stick dead zone", Input{AxisX: .1, AxisY: -.15}, Vec{}},
		{"keys win over stick", Input{Right: true, AxisX: -1}, Vec{2.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Step(tt.in))
		})
	}
}

func TestPlayerTickFacing(t *testing.T) {
	p := NewPlayer(Vec{}, 2.5, 4)
	assert.Equal(t, DOWN, p.Facing)
	assert.False(t, p.Walking)

	p.Tick(Input{Up: true, Right: true}, nil)
	assert.Equal(t, Vec{2.5, -2.5}, p.Pos)
	assert.Equal(t, UP, p.Facing, "vertical motion wins")
	assert.True(t, p.Walking)

	p.Tick(Input{Left: true}, nil)
	assert.Equal(t, LEFT, p.Facing)

	p.Tick(Input{}, nil)
	assert.False(t, p.Walking)
	assert.Equal(t, int(LEFT)*WALK_FRAMES, p.Sprite.Frame)
}

func TestPlayerWalkAnimation(t *testing.T) {
	p := NewPlayer(Vec{}, 1, 2)
	base := int(RIGHT) * WALK_FRAMES

	p.Tick(Input{Right: true}, nil)
	assert.Equal(t, base+1, p.Sprite.Frame)
	for i := 1; i < WALK_FRAME_TICKS; i++ {
		p.Tick(Input{Right: true}, nil)
	}
	assert.Equal(t, base+2, p.Sprite.Frame)
	for i := 0; i < WALK_FRAME_TICKS; i++ {
		p.Tick(Input{Right: true}, nil)
	}
	assert.Equal(t, base+1, p.Sprite.Frame)
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	p := NewPlayer(Vec{9, 0}, 2, 4)

	p.Tick(Input{Right: true, Down: true}, halfPlane{maxX: 10})

	assert.Equal(t, Vec{9, 2}, p.Pos, "x is blocked, y still applies")
	assert.Equal(t, DOWN, p.Facing)

	p.Tick(Input{Right: true}, halfPlane{maxX: 10})
	assert.Equal(t, Vec{9, 2}, p.Pos)
	assert.False(t, p.Walking)
}
