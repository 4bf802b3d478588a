package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrFormat = errors.New("malformed maze text")

// Format draws the maze as text. Cell lines hold a cell glyph at even
// positions and the east side at odd positions ('|' wall, ' ' open, '.' line
// end). Wall lines hold the south side of each cell ('-' wall, ' ' open).
//
//	o o|o.
//	-   -
func Format(m *Maze) string {
	var b strings.Builder
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			cell := m.Cell(r, c)
			b.WriteByte('o')
			switch {
			case c == m.Size-1:
				b.WriteByte('.')
			case cell.East:
				b.WriteByte(' ')
			default:
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		for c := 0; c < m.Size; c++ {
			if m.Cell(r, c).South {
				b.WriteByte(' ')
			} else {
				b.WriteByte('-')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads text produced by Format. Parsed cells are all visited and carry
// no backlinks.
func Parse(reader io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	var rows [][]Cell
	lines := 0
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), "\r")
		if lines%2 == 0 {
			if strings.TrimSpace(s) == "" {
				break
			}
			line := make([]Cell, 0)
			for i, char := range s {
				if i%2 == 0 {
					if char != 'o' {
						return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrFormat, lines+1, i+1, char)
					}
					line = append(line, Cell{Visited: true, Backlink: -1})
					continue
				}
				cell := &line[len(line)-1]
				switch char {
				case ' ':
					cell.East = true
				case '|', '.':
				default:
					return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrFormat, lines+1, i+1, char)
				}
			}
			if len(line) == 0 {
				return nil, fmt.Errorf("%w: empty cell line %d", ErrFormat, lines+1)
			}
			if len(rows) > 0 && len(line) != len(rows[0]) {
				return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrFormat, lines+1, len(line), len(rows[0]))
			}
			rows = append(rows, line)
		} else {
			line := rows[len(rows)-1]
			col := 0
			for i, char := range s {
				if i%2 != 0 {
					continue
				}
				if col >= len(line) {
					return nil, fmt.Errorf("%w: line %d too long", ErrFormat, lines+1)
				}
				switch char {
				case ' ':
					line[col].South = true
				case '-':
				default:
					return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrFormat, lines+1, i+1, char)
				}
				col++
			}
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrFormat)
	}
	if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("%w: %d rows of %d cells, maze must be square", ErrFormat, len(rows), len(rows[0]))
	}

	size := len(rows)
	m := &Maze{Size: size, Cells: make([]Cell, 0, size*size)}
	for _, line := range rows {
		m.Cells = append(m.Cells, line...)
	}
	for i := range m.Cells {
		cell := &m.Cells[i]
		cell.Index = i
		row, col := m.Position(i)
		if cell.East && col == size-1 || cell.South && row == size-1 {
			return nil, fmt.Errorf("%w: cell %d opens outside the grid", ErrFormat, i)
		}
		// mirror openings onto the neighbour
		if cell.East {
			m.Cells[i+1].West = true
		}
		if cell.South {
			m.Cells[i+size].North = true
		}
	}
	return m, nil
}
