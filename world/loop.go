package world

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
)

// Loop ticks a world on a wall clock ticker. Events are closures run on the
// loop goroutine between ticks, which keeps the world single writer.
type Loop struct {
	World    *World
	Interval time.Duration
	Events   chan func()
	// OnTick runs after every tick, on the loop goroutine.
	OnTick func()

	input   model.Input
	stopped bool
}

func NewLoop(w *World, interval time.Duration) *Loop {
	return &Loop{
		World:    w,
		Interval: interval,
		Events:   make(chan func(), 64),
	}
}

// SetInput replaces the held input. Call it from an event.
func (l *Loop) SetInput(in model.Input) {
	l.input = in
}

// Stop ends Run before the next tick. Call it from an event.
func (l *Loop) Stop() {
	l.stopped = true
}

// Post queues f for the loop goroutine. It reports false when the queue is
// full and f was dropped.
func (l *Loop) Post(f func()) bool {
	select {
	case l.Events <- f:
		return true
	default:
		log.Warn("Loop.Post events FULL, dropping")
		return false
	}
}

// Run blocks until the session is over or Stop is called. Ticks are paced by
// the ticker, never by event handling or rendering.
func (l *Loop) Run() {
	l.World.Start()
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()
	log.WithField("interval", l.Interval).Debug("Loop.Run start")
	for !l.stopped {
		select {
		case <-ticker.C:
			l.World.Tick(l.input)
			if l.OnTick != nil {
				l.OnTick()
			}
			if !l.World.Running() {
				l.stopped = true
			}
		case f := <-l.Events:
			f()
		}
	}
	log.WithField("ticks", l.World.Ticks()).Debug("Loop.Run end")
}
