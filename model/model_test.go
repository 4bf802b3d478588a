package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityBounds(t *testing.T) {
	road := NewRoad(Vec{100, 200}, 64, 5, VERTICAL)

	tl, br := road.Bounds()
	assert.Equal(t, Vec{-60, 40}, tl)
	assert.Equal(t, Vec{260, 360}, br)
	assert.Equal(t, Vec{320, 320}, road.Size())
	assert.Equal(t, "ROAD", road.Identifier)
	assert.Equal(t, Sprite{Sheet: SHEET_ROAD, Frame: int(VERTICAL)}, road.Sprite)
	assert.False(t, road.HasShadow())
}

func TestNewItem(t *testing.T) {
	e := NewItem(Vec{1, 2}, 1.5, CatalogItem(3))

	assert.Equal(t, ITEM, e.Kind)
	assert.True(t, e.HasShadow())
	assert.Equal(t, 3, e.Item.Index)
	assert.Equal(t, Vec{96, 96}, e.Size())
}

func TestNewBuildingWrapsFrame(t *testing.T) {
	b := NewBuilding(Vec{}, 64, 8, BUILDING_FRAMES+2)
	assert.Equal(t, 2, b.Sprite.Frame)
}

func TestConstructorsRejectBadDimensions(t *testing.T) {
	assert.Panics(t, func() { NewRoad(Vec{}, 0, 5, VERTICAL) })
	assert.Panics(t, func() { NewBuilding(Vec{}, 64, -1, 0) })
	assert.Panics(t, func() { NewItem(Vec{}, 0, CatalogItem(0)) })
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, 20, CatalogSize())
	good := 0
	for i := 0; i < CatalogSize(); i++ {
		item := CatalogItem(i)
		assert.Equal(t, i, item.Index)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Description)
		assert.Equal(t, i < 10, item.Good, "item %d", i)
		if item.Good {
			good++
		}
	}
	assert.Equal(t, 10, good)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		good, bad int
		want      Outcome
	}{
		{12, 8, GOOD_ENDING},
		{5, 9, BAD_ENDING},
		{7, 7, NEUTRAL_ENDING},
		{0, 0, NEUTRAL_ENDING},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.good, tt.bad), "%d/%d", tt.good, tt.bad)
	}
}

func TestSessionPick(t *testing.T) {
	s := NewSession(60)
	assert.True(t, s.Running)
	assert.Equal(t, 60, s.TimeRemaining)

	s.Pick(CatalogItem(0))
	s.Pick(CatalogItem(15))
	s.Pick(CatalogItem(16))

	assert.Equal(t, 1, s.GoodPicked)
	assert.Equal(t, 2, s.BadPicked)
	assert.Equal(t, BAD_ENDING, s.Outcome())
	assert.Panics(t, func() { NewSession(0) })
}
