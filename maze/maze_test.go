package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connected walks the openings from cell 0 and reports how many cells it reached.
func connected(m *Maze) int {
	seen := make([]bool, len(m.Cells))
	stack := []int{0}
	seen[0] = true
	count := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		c := m.Cells[i]
		var next []int
		if c.North {
			next = append(next, i-m.Size)
		}
		if c.South {
			next = append(next, i+m.Size)
		}
		if c.East {
			next = append(next, i+1)
		}
		if c.West {
			next = append(next, i-1)
		}
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return count
}

func TestGenerateSpanningTree(t *testing.T) {
	for size := 2; size <= 16; size++ {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("size=%d/seed=%d", size, seed), func(t *testing.T) {
				m, err := Generate(Config{Size: size, Seed: seed})
				require.NoError(t, err)
				require.Len(t, m.Cells, size*size)

				for i, c := range m.Cells {
					assert.True(t, c.Visited, "cell %d not visited", i)
					assert.Equal(t, i, c.Index)
				}
				assert.Equal(t, size*size-1, m.Edges())
				assert.Equal(t, size*size, connected(m))
			})
		}
	}
}

func TestGenerateOpeningSymmetry(t *testing.T) {
	m, err := Generate(Config{Size: 13, Seed: 42})
	require.NoError(t, err)

	for i, c := range m.Cells {
		row, col := m.Position(i)
		if c.East {
			require.Less(t, col, m.Size-1, "east opening on the last column")
			assert.True(t, m.Cells[i+1].West, "cell %d east not mirrored", i)
		}
		if c.West {
			require.Greater(t, col, 0, "west opening on the first column")
			assert.True(t, m.Cells[i-1].East, "cell %d west not mirrored", i)
		}
		if c.North {
			require.Greater(t, row, 0)
			assert.True(t, m.Cells[i-m.Size].South, "cell %d north not mirrored", i)
		}
		if c.South {
			require.Less(t, row, m.Size-1)
			assert.True(t, m.Cells[i+m.Size].North, "cell %d south not mirrored", i)
		}
	}
}

func TestGenerateBacklinksFormTree(t *testing.T) {
	m, err := Generate(Config{Size: 9, Seed: 7})
	require.NoError(t, err)

	roots := 0
	for _, c := range m.Cells {
		if c.Backlink == -1 {
			roots++
			continue
		}
		// a backlink always points across an opening
		parent := m.Cells[c.Backlink]
		switch c.Index - parent.Index {
		case 1:
			assert.True(t, c.West && parent.East)
		case -1:
			assert.True(t, c.East && parent.West)
		case m.Size:
			assert.True(t, c.North && parent.South)
		case -m.Size:
			assert.True(t, c.South && parent.North)
		default:
			t.Fatalf("cell %d backlink %d is not adjacent", c.Index, c.Backlink)
		}
	}
	assert.Equal(t, 1, roots)
}

func TestGenerateSingleCell(t *testing.T) {
	m, err := Generate(Config{Size: 1, Seed: 3})
	require.NoError(t, err)
	require.Len(t, m.Cells, 1)

	c := m.Cells[0]
	assert.True(t, c.Visited)
	assert.Equal(t, -1, c.Backlink)
	assert.Equal(t, 0, c.Openings())
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		_, err := Generate(Config{Size: size})
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGenerateSeedIsDeterministic(t *testing.T) {
	a, err := Generate(Config{Size: 11, Seed: 99})
	require.NoError(t, err)
	b, err := Generate(Config{Size: 11, Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, a.Cells, b.Cells)
}

func TestCenter(t *testing.T) {
	m := newMaze(13)
	assert.Equal(t, 6*13+6, m.Center())
	row, col := m.Position(m.Center())
	assert.Equal(t, 6, row)
	assert.Equal(t, 6, col)
}
