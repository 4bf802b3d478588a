package model

import "fmt"

type ServerMessage struct {
	Setup     []Setup
	Snapshots []Snapshot
	Huds      []HudEvent
}

type Setup struct {
	SessionId string
	MazeSize  int
	TimeLimit int
	Entities  []Entity
	Player    Entity
}

// Snapshot is the state of the player after a tick, plus the ids of items
// removed since the previous snapshot.
type Snapshot struct {
	Tick    uint64
	Player  Vec
	Facing  Direction
	Frame   int
	Removed []int
}

type HudKind int

const (
	HUD_TIMER HudKind = iota + 1
	HUD_SCORE
	HUD_SHOW_ITEM
	HUD_HIDE_ITEM
	HUD_END
)

type HudEvent struct {
	Kind      HudKind
	Remaining int
	Good, Bad int
	Item      Item
	Outcome   Outcome
}

type ClientMessage struct {
	Input Input
}

func (k HudKind) Name() string {
	switch k {
	case HUD_TIMER:
		return "HUD_TIMER"
	case HUD_SCORE:
		return "HUD_SCORE"
	case HUD_SHOW_ITEM:
		return "HUD_SHOW_ITEM"
	case HUD_HIDE_ITEM:
		return "HUD_HIDE_ITEM"
	case HUD_END:
		return "HUD_END"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}
