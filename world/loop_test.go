package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ecocity/model"
)

func TestLoopRunsUntilSessionEnds(t *testing.T) {
	w, hud, clock := newTestWorld(t, 2)
	loop := NewLoop(w, time.Millisecond)

	ticks := 0
	loop.OnTick = func() {
		ticks++
		if ticks%10 == 0 {
			clock.Advance(time.Second)
		}
	}
	require.True(t, loop.Post(func() { loop.SetInput(model.Input{Right: true}) }))

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, w.Running())
	assert.Len(t, hud.outcomes, 1)
	assert.Greater(t, w.Player.Pos.X, 0.0, "input posted as an event reached the player")
	assert.Equal(t, ticks, int(w.Ticks()))
}

func TestLoopStop(t *testing.T) {
	w, _, _ := newTestWorld(t, 60)
	loop := NewLoop(w, time.Millisecond)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	loop.Post(loop.Stop)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.True(t, w.Running())
}

func TestLoopRunStartsCountdown(t *testing.T) {
	w, _, clock := newTestWorld(t, 60)
	clock.Advance(5 * time.Second)

	loop := NewLoop(w, time.Millisecond)
	loop.OnTick = loop.Stop

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, uint64(1), w.Ticks())
	assert.Equal(t, 60, w.Session.TimeRemaining, "time before Run is not counted")
}
