package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeByThree = "" +
	"o o o.\n" +
	"  -   \n" +
	"o o|o.\n" +
	"  - - \n" +
	"o o o.\n" +
	"- - - \n"

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(threeByThree))
	require.NoError(t, err)
	require.Equal(t, 3, m.Size)

	top := m.Cell(0, 2)
	assert.True(t, top.West)
	assert.True(t, top.South)
	assert.False(t, top.East)

	mid := m.Cell(1, 1)
	assert.True(t, mid.West)
	assert.False(t, mid.East)
	assert.False(t, mid.South)
	assert.False(t, mid.North)

	assert.True(t, m.Cell(1, 0).North)
	assert.True(t, m.Cell(1, 0).South)
	assert.True(t, m.Cell(2, 0).North)
	assert.Equal(t, 8, m.Edges())
	assert.Equal(t, 9, connected(m))
}

func TestFormatMatchesParse(t *testing.T) {
	m, err := Generate(Config{Size: 8, Seed: 5})
	require.NoError(t, err)

	text := Format(m)
	parsed, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	require.Equal(t, m.Size, parsed.Size)
	for i := range m.Cells {
		a, b := m.Cells[i], parsed.Cells[i]
		assert.Equal(t, [4]bool{a.North, a.South, a.East, a.West}, [4]bool{b.North, b.South, b.East, b.West}, "cell %d", i)
	}
	assert.Equal(t, text, Format(parsed))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"not square", "o o.\n- - \n"},
		{"bad glyph", "x.\n- \n"},
		{"ragged", "o o.\n- - \no.\n- \n"},
		{"opens outside", "o \n- \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
