// Package maze generates spanning-tree mazes on a square grid with a
// randomized depth-first backtracker.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidSize = errors.New("maze size must be positive")
	ErrGeneration  = errors.New("maze generation did not terminate")
)

// Cell is one grid unit. The four flags are openings towards the neighbour
// in that direction; Backlink is the index of the cell it was carved from.
type Cell struct {
	Visited  bool
	Backlink int
	Index    int
	North    bool
	South    bool
	East     bool
	West     bool
}

// Openings counts the open sides of the cell.
func (c Cell) Openings() int {
	n := 0
	for _, open := range [4]bool{c.North, c.South, c.East, c.West} {
		if open {
			n++
		}
	}
	return n
}

// Maze owns size*size cells in row-major order.
type Maze struct {
	Size  int
	Cells []Cell
}

type Config struct {
	Size int
	Seed int64 // 0 = random
}

func (m *Maze) Cell(row, col int) *Cell {
	return &m.Cells[row*m.Size+col]
}

// Position returns the row and column of a cell index.
func (m *Maze) Position(index int) (row, col int) {
	return index / m.Size, index % m.Size
}

// Center is the index of the middle cell, rounding towards the top left.
func (m *Maze) Center() int {
	return (m.Size/2)*m.Size + m.Size/2
}

// Edges counts opened walls. Each opening is set on both cells, so pairs are
// counted once through the east and south flags.
func (m *Maze) Edges() int {
	n := 0
	for _, c := range m.Cells {
		if c.East {
			n++
		}
		if c.South {
			n++
		}
	}
	return n
}

func newMaze(size int) *Maze {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = Cell{Backlink: -1, Index: i}
	}
	return &Maze{Size: size, Cells: cells}
}

// Generate carves a perfect maze. Every cell ends up visited and the
// openings form a spanning tree with Size*Size-1 edges.
func Generate(cfg Config) (*Maze, error) {
	if cfg.Size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m := newMaze(cfg.Size)
	current := &m.Cells[rng.Intn(len(m.Cells))]
	current.Visited = true

	// every cell is entered once and left once, plus the final check at the root
	limit := 2 * len(m.Cells)
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil, fmt.Errorf("%w after %d steps", ErrGeneration, steps)
		}
		neighbors := m.unvisitedNeighbors(current)
		if len(neighbors) == 0 {
			if current.Backlink == -1 {
				break
			}
			current = &m.Cells[current.Backlink]
			continue
		}
		next := neighbors[rng.Intn(len(neighbors))]
		m.open(current, next)
		next.Visited = true
		next.Backlink = current.Index
		current = next
	}

	log.WithFields(log.Fields{"size": cfg.Size, "seed": seed}).Debug("maze generated")
	return m, nil
}

func (m *Maze) unvisitedNeighbors(c *Cell) []*Cell {
	candidates := make([]*Cell, 0, 4)
	row := c.Index / m.Size
	add := func(index int, ok bool) {
		if ok && index >= 0 && index < len(m.Cells) && !m.Cells[index].Visited {
			candidates = append(candidates, &m.Cells[index])
		}
	}
	add(c.Index-m.Size, true)
	add(c.Index+m.Size, true)
	// east and west must stay on the same row
	add(c.Index+1, (c.Index+1)/m.Size == row)
	add(c.Index-1, c.Index > 0 && (c.Index-1)/m.Size == row)
	return candidates
}

func (m *Maze) open(current, next *Cell) {
	switch current.Index - next.Index {
	case 1:
		next.East = true
		current.West = true
	case -1:
		next.West = true
		current.East = true
	case m.Size:
		next.South = true
		current.North = true
	case -m.Size:
		next.North = true
		current.South = true
	}
}
