// Package world owns the placed entities of a city and advances the game:
// player movement on roads, item pickup, the countdown and the ending.
package world

import (
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
)

const (
	DEFAULT_VIEWPORT_WIDTH  = 1920
	DEFAULT_VIEWPORT_HEIGHT = 1080
	DEFAULT_POPUP           = 10 * time.Second
)

type Options struct {
	// Viewport is the culling window around the player.
	Viewport      model.Vec
	PopupDuration time.Duration
}

func DefaultOptions() Options {
	return Options{
		Viewport:      model.Vec{X: DEFAULT_VIEWPORT_WIDTH, Y: DEFAULT_VIEWPORT_HEIGHT},
		PopupDuration: DEFAULT_POPUP,
	}
}

// World is not safe for concurrent use: a single goroutine ticks and renders it.
type World struct {
	opts      Options
	entities  []*model.Entity
	roads     []*model.Entity
	tickables []model.Tickable

	Player  *model.Player
	Session *model.Session

	hud   HUD
	clock Clock

	ticks      uint64
	lastSecond time.Time
	tpsStart   time.Time
	tpsCount   int
	tps        int
	ended      bool
	removed    []int

	popup           Timer
	popupGeneration atomic.Uint64
}

func New(opts Options, player *model.Player, session *model.Session, hud HUD, clock Clock) *World {
	if hud == nil {
		hud = NopHUD{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	if opts.Viewport == (model.Vec{}) {
		opts.Viewport = DefaultOptions().Viewport
	}
	now := clock.Now()
	w := &World{
		opts:       opts,
		Player:     player,
		Session:    session,
		hud:        hud,
		clock:      clock,
		lastSecond: now,
		tpsStart:   now,
		tickables:  []model.Tickable{player},
	}
	hud.Timer(session.TimeRemaining)
	hud.Score(session.GoodPicked, session.BadPicked)
	return w
}

// Add appends entities in order. The player is not part of the collection.
func (w *World) Add(entities ...*model.Entity) {
	for _, e := range entities {
		w.entities = append(w.entities, e)
		if e.Kind == model.ROAD {
			w.roads = append(w.roads, e)
		}
	}
}

func (w *World) Entities() []*model.Entity {
	return w.entities
}

func (w *World) Running() bool {
	return w.Session.Running
}

func (w *World) Ticks() uint64 {
	return w.ticks
}

// TPS is the number of ticks counted during the last full second.
func (w *World) TPS() int {
	return w.tps
}

// Removed returns the ids of entities removed since the previous call.
func (w *World) Removed() []int {
	r := w.removed
	w.removed = nil
	return r
}

func (w *World) remove(i int) {
	w.removed = append(w.removed, w.entities[i].ID)
	w.entities = append(w.entities[:i], w.entities[i+1:]...)
}

// Start restarts the countdown and TPS baselines from now. Owners call it
// when ticking actually begins, so setup time is not taken off the clock.
func (w *World) Start() {
	now := w.clock.Now()
	w.lastSecond = now
	w.tpsStart = now
	w.tpsCount = 0
}

// Tick advances the simulation by one step. It does nothing once the session
// is over.
func (w *World) Tick(in model.Input) {
	if !w.Session.Running {
		return
	}
	w.ticks++
	for _, t := range w.tickables {
		t.Tick(in, w)
	}
	w.resolvePickup()

	now := w.clock.Now()
	w.advanceTimer(now)
	w.countTick(now)
}

// advanceTimer takes one second off the session for every whole second of
// wall time since the last step.
func (w *World) advanceTimer(now time.Time) {
	for w.Session.Running && now.Sub(w.lastSecond) >= time.Second {
		w.lastSecond = w.lastSecond.Add(time.Second)
		w.Session.TimeRemaining--
		w.hud.Timer(w.Session.TimeRemaining)
		if w.Session.TimeRemaining <= 0 {
			w.Session.TimeRemaining = 0
			w.Session.Running = false
			w.end()
		}
	}
}

func (w *World) end() {
	if w.ended {
		return
	}
	w.ended = true
	outcome := w.Session.Outcome()
	log.WithFields(log.Fields{
		"good":    w.Session.GoodPicked,
		"bad":     w.Session.BadPicked,
		"outcome": outcome.Name(),
		"ticks":   w.ticks,
	}).Info("World.end")
	w.hud.End(outcome)
}

func (w *World) countTick(now time.Time) {
	w.tpsCount++
	if now.Sub(w.tpsStart) >= time.Second {
		w.tps = w.tpsCount
		w.tpsCount = 0
		w.tpsStart = now
	}
}
