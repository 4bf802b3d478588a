package server

import (
	"time"

	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/world"
)

// sessionHUD queues HUD events for the next published message. It runs on
// the loop goroutine only: the session clock posts timer callbacks there.
type sessionHUD struct {
	gs *GameSession
}

func (h sessionHUD) add(e model.HudEvent) {
	h.gs.huds = append(h.gs.huds, e)
}

func (h sessionHUD) Timer(remaining int) {
	h.add(model.HudEvent{Kind: model.HUD_TIMER, Remaining: remaining})
}

func (h sessionHUD) Score(good, bad int) {
	h.add(model.HudEvent{Kind: model.HUD_SCORE, Good: good, Bad: bad})
}

func (h sessionHUD) ShowItem(item model.Item) {
	h.add(model.HudEvent{Kind: model.HUD_SHOW_ITEM, Item: item})
}

func (h sessionHUD) HideItem() {
	h.add(model.HudEvent{Kind: model.HUD_HIDE_ITEM})
}

func (h sessionHUD) End(outcome model.Outcome) {
	h.add(model.HudEvent{Kind: model.HUD_END, Outcome: outcome})
}

// postingClock runs AfterFunc callbacks on the loop goroutine.
type postingClock struct {
	loop *world.Loop
}

func (c *postingClock) Now() time.Time {
	return time.Now()
}

func (c *postingClock) AfterFunc(d time.Duration, f func()) world.Timer {
	return time.AfterFunc(d, func() {
		c.loop.Post(f)
	})
}
