package model

import "fmt"

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

type Kind int

const (
	ROAD Kind = iota + 1
	BUILDING
	ITEM
	PLAYER
)

func (k Kind) Name() string {
	switch k {
	case ROAD:
		return "ROAD"
	case BUILDING:
		return "BUILDING"
	case ITEM:
		return "ITEM"
	case PLAYER:
		return "PLAYER"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// RoadTile is the sprite variant of a road piece, picked from the openings of
// the maze cell it belongs to.
type RoadTile int

const (
	VERTICAL RoadTile = iota + 1
	HORIZONTAL
	TOP_LEFT
	TOP_RIGHT
	BOTTOM_LEFT
	BOTTOM_RIGHT
	THREE_WAY_LEFT
	THREE_WAY_RIGHT
	THREE_WAY_TOP
	THREE_WAY_BOTTOM
)

func (t RoadTile) Name() string {
	switch t {
	case VERTICAL:
		return "VERTICAL"
	case HORIZONTAL:
		return "HORIZONTAL"
	case TOP_LEFT:
		return "TOP_LEFT"
	case TOP_RIGHT:
		return "TOP_RIGHT"
	case BOTTOM_LEFT:
		return "BOTTOM_LEFT"
	case BOTTOM_RIGHT:
		return "BOTTOM_RIGHT"
	case THREE_WAY_LEFT:
		return "THREE_WAY_LEFT"
	case THREE_WAY_RIGHT:
		return "THREE_WAY_RIGHT"
	case THREE_WAY_TOP:
		return "THREE_WAY_TOP"
	case THREE_WAY_BOTTOM:
		return "THREE_WAY_BOTTOM"
	default:
		return fmt.Sprintf("N/A(%d)", t)
	}
}

// Sheets understood by renderers.
const (
	SHEET_ROAD      = "road"
	SHEET_BUILDINGS = "buildings"
	SHEET_ITEMS     = "items"
	SHEET_CHARACTER = "character"
	SHEET_SHADOW    = "shadow"
)

// Sprite points at a frame of a sprite sheet. The zero value draws nothing.
type Sprite struct {
	Sheet string
	Frame int
}

func (s Sprite) IsZero() bool {
	return s.Sheet == ""
}

// Entity is anything placed in the world. Kind selects the variant; Road and
// Item are only meaningful for their own kind. Pos is the centre of the box.
type Entity struct {
	ID         int
	Kind       Kind
	Identifier string
	Pos        Vec
	Width      float64
	Height     float64
	Scale      float64
	Shadow     bool
	Sprite     Sprite
	Road       RoadTile
	Item       *Item
}

// Size is the scaled size of the entity.
func (e *Entity) Size() Vec {
	return Vec{e.Width * e.Scale, e.Height * e.Scale}
}

// Bounds returns the top left and bottom right corners.
func (e *Entity) Bounds() (Vec, Vec) {
	half := e.Size().Scale(.5)
	return e.Pos.Sub(half), e.Pos.Add(half)
}

func (e *Entity) HasShadow() bool {
	return e.Shadow
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d(%.0f,%.0f)", e.Kind.Name(), e.ID, e.Pos.X, e.Pos.Y)
}

// Shadowed is implemented by everything that may cast a shadow.
type Shadowed interface {
	HasShadow() bool
}

// Walkable answers whether a point is on ground an entity may stand on.
type Walkable interface {
	Walkable(p Vec) bool
}

// Tickable receives one update per simulation step.
type Tickable interface {
	Tick(in Input, ground Walkable)
}

type Item struct {
	Index       int
	Good        bool
	Name        string
	Description string
}

// Input is the held state of the controls for one tick.
type Input struct {
	Up, Down, Left, Right bool
	Sprint                bool
	AxisX, AxisY          float64 // analog stick, [-1,1]
}
