// Package layout turns a maze into the city: roads along the open sides of
// every cell, buildings everywhere else, and the item catalog spread over the
// roads.
package layout

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/maze"
	"github.com/zucenko/ecocity/model"
)

var ErrNotEnoughRoads = errors.New("not enough roads for the item catalog")

type Params struct {
	TileSize              float64
	RoadScale             float64
	BuildingScale         float64
	BuildingScaleIncrease float64
	Spacing               float64
	ItemScale             float64
}

func DefaultParams() Params {
	return Params{
		TileSize:              64,
		RoadScale:             5,
		BuildingScale:         8,
		BuildingScaleIncrease: 3,
		Spacing:               2,
		ItemScale:             1.5,
	}
}

type Layout struct {
	// Entities in insertion order: per cell roads and buildings, then items.
	Entities []*model.Entity
	Roads    []*model.Entity
	Items    []*model.Entity
	// Spawn is the centre road of the middle cell.
	Spawn model.Vec
}

// SelectTile picks the road sprite for a cell. Rules run in order and a later
// match replaces an earlier one, so a cell open on all four sides ends up
// HORIZONTAL.
func SelectTile(c maze.Cell) model.RoadTile {
	n, s, w, e := c.North, c.South, c.West, c.East
	tile := model.HORIZONTAL
	if n || (s && !w && !e) {
		tile = model.VERTICAL
	}
	if (!n && !s && w) || e {
		tile = model.HORIZONTAL
	}
	if n && !s && w && !e {
		tile = model.TOP_LEFT
	}
	if n && !s && !w && e {
		tile = model.TOP_RIGHT
	}
	if !n && s && w && !e {
		tile = model.BOTTOM_LEFT
	}
	if !n && s && !w && e {
		tile = model.BOTTOM_RIGHT
	}
	if n && s && w && !e {
		tile = model.THREE_WAY_LEFT
	}
	if n && s && !w && e {
		tile = model.THREE_WAY_RIGHT
	}
	if n && !s && w && e {
		tile = model.THREE_WAY_TOP
	}
	if !n && s && w && e {
		tile = model.THREE_WAY_BOTTOM
	}
	return tile
}

// CellPosition is the world position of the centre road of the cell at
// row, col. The grid is centred on the world origin.
func (p Params) CellPosition(size, row, col int) model.Vec {
	step := p.TileSize * p.RoadScale
	start := -(step * (float64(size*3-3) / 2))
	return model.Vec{
		X: start + p.Spacing*float64(col)*step + step*float64(col),
		Y: start + p.Spacing*float64(row)*step + step*float64(row),
	}
}

type compiler struct {
	p         Params
	rng       *rand.Rand
	layout    *Layout
	spawnRoad int
}

func (c *compiler) add(e *model.Entity) {
	e.ID = len(c.layout.Entities) + 1
	c.layout.Entities = append(c.layout.Entities, e)
	switch e.Kind {
	case model.ROAD:
		c.layout.Roads = append(c.layout.Roads, e)
	case model.ITEM:
		c.layout.Items = append(c.layout.Items, e)
	}
}

func (c *compiler) road(pos model.Vec, tile model.RoadTile) {
	c.add(model.NewRoad(pos, c.p.TileSize, c.p.RoadScale, tile))
}

func (c *compiler) building(pos model.Vec) {
	c.add(model.NewBuilding(pos, c.p.TileSize, c.p.BuildingScale, c.rng.Intn(model.BUILDING_FRAMES)))
}

// Compile builds the city for m. A nil rng is seeded from the clock.
func Compile(m *maze.Maze, p Params, rng *rand.Rand) (*Layout, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &compiler{p: p, rng: rng, layout: &Layout{}}

	step := p.TileSize * p.RoadScale
	offset := (p.BuildingScale - p.BuildingScaleIncrease/2) * p.TileSize

	for _, cell := range m.Cells {
		row, col := m.Position(cell.Index)
		pos := p.CellPosition(m.Size, row, col)
		x, y := pos.X, pos.Y

		if cell.Index == m.Center() {
			c.layout.Spawn = pos
			c.spawnRoad = len(c.layout.Roads)
		}
		c.road(pos, SelectTile(cell))

		c.building(model.Vec{X: x - step, Y: y - offset})
		c.building(model.Vec{X: x + step, Y: y - offset})

		if cell.North {
			c.road(model.Vec{X: x, Y: y - step}, model.VERTICAL)
		} else {
			c.building(model.Vec{X: x, Y: y - offset})
		}
		if cell.South {
			c.road(model.Vec{X: x, Y: y + step}, model.VERTICAL)
		} else {
			c.building(model.Vec{X: x, Y: y + offset})
		}
		if cell.West {
			c.road(model.Vec{X: x - step, Y: y}, model.HORIZONTAL)
		} else {
			c.building(model.Vec{X: x - step, Y: y})
		}
		if cell.East {
			c.road(model.Vec{X: x + step, Y: y}, model.HORIZONTAL)
		} else {
			c.building(model.Vec{X: x + step, Y: y})
		}

		c.building(model.Vec{X: x - step, Y: y + offset})
		c.building(model.Vec{X: x + step, Y: y + offset})
	}

	if err := c.placeItems(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"size":     m.Size,
		"entities": len(c.layout.Entities),
		"roads":    len(c.layout.Roads),
		"items":    len(c.layout.Items),
	}).Debug("layout compiled")
	return c.layout, nil
}

// RoadCount is the number of roads Compile lays for a maze of the given
// size: one per cell plus two per opened wall of the spanning tree.
func RoadCount(size int) int {
	cells := size * size
	return cells + 2*(cells-1)
}

// MinSize is the smallest maze whose roads, the spawn road aside, hold the
// whole item catalog.
func MinSize() int {
	size := 1
	for RoadCount(size)-1 < model.CatalogSize() {
		size++
	}
	return size
}

// placeItems puts one catalog item on a distinct random road, never the spawn
// road. Random picks are retried a bounded number of times, then the item goes
// to a random road drawn from the ones still free.
func (c *compiler) placeItems() error {
	roads := c.layout.Roads
	count := model.CatalogSize()
	if len(roads)-1 < count {
		return fmt.Errorf("%w: %d roads besides spawn, %d items", ErrNotEnoughRoads, len(roads)-1, count)
	}

	used := make([]bool, len(roads))
	used[c.spawnRoad] = true
	attempts := 4 * len(roads)

	for index := 0; index < count; index++ {
		chosen := -1
		for try := 0; try < attempts && chosen == -1; try++ {
			if r := c.rng.Intn(len(roads)); !used[r] {
				chosen = r
			}
		}
		if chosen == -1 {
			free := make([]int, 0, len(roads))
			for r := range roads {
				if !used[r] {
					free = append(free, r)
				}
			}
			chosen = free[c.rng.Intn(len(free))]
		}
		used[chosen] = true
		c.add(model.NewItem(roads[chosen].Pos, c.p.ItemScale, model.CatalogItem(index)))
	}
	return nil
}
