package model

import "fmt"

const (
	BUILDING_FRAMES = 9

	ITEM_SIZE = 64

	PLAYER_WIDTH  = 48
	PLAYER_HEIGHT = 60
	PLAYER_SCALE  = 1.5
)

func newEntity(kind Kind, pos Vec, width, height, scale float64) Entity {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("%s: size must be positive, got %vx%v", kind.Name(), width, height))
	}
	if scale <= 0 {
		panic(fmt.Sprintf("%s: scale must be positive, got %v", kind.Name(), scale))
	}
	return Entity{
		Kind:       kind,
		Identifier: kind.Name(),
		Pos:        pos,
		Width:      width,
		Height:     height,
		Scale:      scale,
	}
}

func NewRoad(pos Vec, tileSize, scale float64, tile RoadTile) *Entity {
	e := newEntity(ROAD, pos, tileSize, tileSize, scale)
	e.Road = tile
	e.Sprite = Sprite{Sheet: SHEET_ROAD, Frame: int(tile)}
	return &e
}

func NewBuilding(pos Vec, tileSize, scale float64, frame int) *Entity {
	e := newEntity(BUILDING, pos, tileSize, tileSize, scale)
	e.Sprite = Sprite{Sheet: SHEET_BUILDINGS, Frame: frame % BUILDING_FRAMES}
	return &e
}

func NewItem(pos Vec, scale float64, item Item) *Entity {
	e := newEntity(ITEM, pos, ITEM_SIZE, ITEM_SIZE, scale)
	e.Shadow = true
	e.Item = &item
	e.Sprite = Sprite{Sheet: SHEET_ITEMS, Frame: item.Index}
	return &e
}
