package model

import "fmt"

type Direction int

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
)

func (d Direction) Name() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

const (
	// ticks per walk frame, 250ms at 60 ticks per second
	WALK_FRAME_TICKS = 15
	// frames per direction on the character sheet: standing + 2 walking
	WALK_FRAMES = 3

	STICK_DEAD_ZONE = .2
)

type Player struct {
	Entity
	WalkSpeed   float64
	SprintSpeed float64
	Facing      Direction
	Walking     bool
	walkTicks   int
}

func NewPlayer(pos Vec, walkSpeed, sprintSpeed float64) *Player {
	p := &Player{
		Entity:      newEntity(PLAYER, pos, PLAYER_WIDTH, PLAYER_HEIGHT, PLAYER_SCALE),
		WalkSpeed:   walkSpeed,
		SprintSpeed: sprintSpeed,
		Facing:      DOWN,
	}
	p.Shadow = true
	p.Sprite = Sprite{Sheet: SHEET_CHARACTER, Frame: p.frame()}
	return p
}

// Step is the displacement the input asks for in one tick. Held directions
// win over the analog stick on their axis.
func (p *Player) Step(in Input) Vec {
	speed := p.WalkSpeed
	if in.Sprint {
		speed = p.SprintSpeed
	}
	var d Vec
	switch {
	case in.Up && !in.Down:
		d.Y = -speed
	case in.Down && !in.Up:
		d.Y = speed
	case in.AxisY > STICK_DEAD_ZONE || in.AxisY < -STICK_DEAD_ZONE:
		d.Y = clamp(in.AxisY) * speed
	}
	switch {
	case in.Left && !in.Right:
		d.X = -speed
	case in.Right && !in.Left:
		d.X = speed
	case in.AxisX > STICK_DEAD_ZONE || in.AxisX < -STICK_DEAD_ZONE:
		d.X = clamp(in.AxisX) * speed
	}
	return d
}

// Tick moves the player one step. Each axis is applied on its own and
// dropped when it would leave the ground, so the player slides along walls.
func (p *Player) Tick(in Input, ground Walkable) {
	prev := p.Pos
	d := p.Step(in)

	if d.X != 0 {
		next := Vec{p.Pos.X + d.X, p.Pos.Y}
		if ground == nil || ground.Walkable(next) {
			p.Pos = next
		}
	}
	if d.Y != 0 {
		next := Vec{p.Pos.X, p.Pos.Y + d.Y}
		if ground == nil || ground.Walkable(next) {
			p.Pos = next
		}
	}

	// vertical movement decides the facing when walking diagonally
	switch {
	case p.Pos.Y > prev.Y:
		p.walk(DOWN)
	case p.Pos.Y < prev.Y:
		p.walk(UP)
	case p.Pos.X > prev.X:
		p.walk(RIGHT)
	case p.Pos.X < prev.X:
		p.walk(LEFT)
	default:
		p.Walking = false
		p.walkTicks = 0
	}
	p.Sprite.Frame = p.frame()
}

func (p *Player) walk(d Direction) {
	if !p.Walking || p.Facing != d {
		p.walkTicks = 0
	}
	p.Facing = d
	p.Walking = true
	p.walkTicks++
}

func (p *Player) frame() int {
	base := int(p.Facing) * WALK_FRAMES
	if !p.Walking {
		return base
	}
	return base + 1 + (p.walkTicks/WALK_FRAME_TICKS)%2
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
