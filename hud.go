package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/world"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	COLOR_GOOD    = color.RGBA{40, 170, 80, 255}
	COLOR_BAD     = color.RGBA{200, 50, 50, 255}
	COLOR_NEUTRAL = color.RGBA{120, 120, 120, 255}
)

const POPUP_LINE_CHARS = 42

func newFace(size float64) font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Overlay is the on-screen HUD. The world calls it from update, popup
// dismissal arrives from a timer goroutine, so all state sits behind mu.
type Overlay struct {
	mu        sync.Mutex
	remaining int
	good, bad int
	item      *model.Item
	outcome   *model.Outcome
	// set when something appeared that should fade in
	popupShown bool
	endShown   bool

	title, body font.Face
	panel       *Nine
	popupAlpha  float64
	endAlpha    float64
}

var _ world.HUD = (*Overlay)(nil)

func NewOverlay() *Overlay {
	return &Overlay{
		title: newFace(28),
		body:  newFace(18),
		panel: NewPanel(.1, .1, .1),
	}
}

func (o *Overlay) Timer(remaining int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remaining = remaining
}

func (o *Overlay) Score(good, bad int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.good, o.bad = good, bad
}

func (o *Overlay) ShowItem(item model.Item) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.item = &item
	o.popupShown = true
}

func (o *Overlay) HideItem() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.item = nil
}

func (o *Overlay) End(outcome model.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcome = &outcome
	o.item = nil
	o.endShown = true
}

// takeShown reports, once, which panels appeared since the last call.
func (o *Overlay) takeShown() (popup, end bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	popup, end = o.popupShown, o.endShown
	o.popupShown, o.endShown = false, false
	return
}

func outcomeColor(outcome model.Outcome) color.RGBA {
	switch outcome {
	case model.GOOD_ENDING:
		return COLOR_GOOD
	case model.BAD_ENDING:
		return COLOR_BAD
	default:
		return COLOR_NEUTRAL
	}
}

func outcomeText(outcome model.Outcome) string {
	switch outcome {
	case model.GOOD_ENDING:
		return "The city is greener thanks to you!"
	case model.BAD_ENDING:
		return "The city is choking on your choices."
	default:
		return "The city stays the same."
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.mu.Lock()
	defer o.mu.Unlock()
	w, h := screen.Size()

	clock := world.FormatClock(o.remaining)
	text.Draw(screen, clock, o.title, w/2-40, 40, color.White)
	text.Draw(screen, fmt.Sprintf("Good: %d", o.good), o.body, 20, 40, COLOR_GOOD)
	text.Draw(screen, fmt.Sprintf("Bad: %d", o.bad), o.body, 20, 75, COLOR_BAD)

	if o.item != nil {
		lines := world.Wrap(o.item.Description, POPUP_LINE_CHARS)
		pw, ph := 520.0, float64(90+24*len(lines))
		px, py := float64(w)-pw-20, float64(h)-ph-20
		o.panel.SetAlpha(.8 * o.popupAlpha)
		o.panel.SetBounds(px, py, pw, ph)
		o.panel.Draw(screen)

		heading := COLOR_BAD
		if o.item.Good {
			heading = COLOR_GOOD
		}
		text.Draw(screen, o.item.Name, o.title, int(px)+20, int(py)+45, withAlpha(heading, o.popupAlpha))
		for i, line := range lines {
			text.Draw(screen, line, o.body, int(px)+20, int(py)+80+24*i, withAlpha(color.RGBA{255, 255, 255, 255}, o.popupAlpha))
		}
	}

	if o.outcome != nil {
		c := outcomeColor(*o.outcome)
		ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), withAlpha(c, .85*o.endAlpha))
		text.Draw(screen, o.outcome.Name(), o.title, w/2-100, h/2-20, withAlpha(color.RGBA{255, 255, 255, 255}, o.endAlpha))
		text.Draw(screen, outcomeText(*o.outcome), o.body, w/2-160, h/2+20, withAlpha(color.RGBA{255, 255, 255, 255}, o.endAlpha))
	}
}

// withAlpha scales a colour's alpha, premultiplied as ebiten expects.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func (o *Overlay) setPopupAlpha(a float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.popupAlpha = a
}

func (o *Overlay) setEndAlpha(a float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.endAlpha = a
}
