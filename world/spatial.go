package world

import "github.com/zucenko/ecocity/model"

// ROAD_SEAM grows road boxes for walking so that two touching roads overlap
// and their shared edge stays walkable.
const ROAD_SEAM = 1.0

// IsPointInsideRect is strict on both axes: a point on the edge is outside.
func IsPointInsideRect(p, topLeft, bottomRight model.Vec) bool {
	return p.X > topLeft.X && p.X < bottomRight.X &&
		p.Y > topLeft.Y && p.Y < bottomRight.Y
}

// IsInsideViewport reports whether any corner of e falls inside a window of
// the given size centred on the player.
func IsInsideViewport(e *model.Entity, playerPos, viewport model.Vec) bool {
	half := viewport.Scale(.5)
	vtl, vbr := playerPos.Sub(half), playerPos.Add(half)
	tl, br := e.Bounds()
	for _, corner := range [4]model.Vec{tl, {X: br.X, Y: tl.Y}, {X: tl.X, Y: br.Y}, br} {
		if IsPointInsideRect(corner, vtl, vbr) {
			return true
		}
	}
	return false
}

// Walkable reports whether p is on a road.
func (w *World) Walkable(p model.Vec) bool {
	seam := model.Vec{X: ROAD_SEAM, Y: ROAD_SEAM}
	for _, r := range w.roads {
		tl, br := r.Bounds()
		if IsPointInsideRect(p, tl.Sub(seam), br.Add(seam)) {
			return true
		}
	}
	return false
}
