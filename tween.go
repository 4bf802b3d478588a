package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is what happens while a tween runs and once it finishes.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t after the tween owning a. The returned action is t's.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts, func(g *Game) {
		g.Tweens[t] = *action
	})
	return action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

const (
	ITEM_BOB_HEIGHT  = 5
	ITEM_BOB_SECONDS = 1
	FADE_SECONDS     = .4
)

// bob floats items between -5 and +5 and back, forever.
func (g *Game) bob() {
	up := gween.New(-ITEM_BOB_HEIGHT, ITEM_BOB_HEIGHT, ITEM_BOB_SECONDS, ease.InOutSine)
	down := gween.New(ITEM_BOB_HEIGHT, -ITEM_BOB_HEIGHT, ITEM_BOB_SECONDS, ease.InOutSine)
	lift := func(v float32) { g.itemLift = float64(v) }

	a := Action{onChange: lift}
	back := a.next(down)
	back.onChange = lift
	back.addOnFinish(g.bob)
	g.Tweens[up] = a
}

// fade runs set from 0 to 1.
func (g *Game) fade(set func(float64)) {
	set(0)
	g.Tweens[gween.New(0, 1, FADE_SECONDS, ease.OutQuad)] = Action{
		onChange: func(v float32) { set(float64(v)) },
	}
}
