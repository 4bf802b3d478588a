package world

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
)

// HUD receives one way notifications about the session. HideItem is called
// from the clock's timer callback, which may run on another goroutine.
type HUD interface {
	Timer(remaining int)
	Score(good, bad int)
	ShowItem(item model.Item)
	HideItem()
	End(outcome model.Outcome)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Wrap breaks s on spaces into lines of at most width characters. A word
// longer than width gets a line of its own.
func Wrap(s string, width int) []string {
	lines := []string{}
	line := ""
	for _, word := range strings.Fields(s) {
		if line != "" && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

type NopHUD struct{}

func (NopHUD) Timer(int)                 {}
func (NopHUD) Score(int, int)            {}
func (NopHUD) ShowItem(model.Item)       {}
func (NopHUD) HideItem()                 {}
func (NopHUD) End(outcome model.Outcome) {}

// LogHUD logs every notification before passing it on to Next.
type LogHUD struct {
	Next   HUD
	Fields log.Fields
}

func (h LogHUD) entry() *log.Entry {
	return log.WithFields(h.Fields)
}

func (h LogHUD) Timer(remaining int) {
	if remaining%30 == 0 || remaining <= 10 {
		h.entry().WithField("time", FormatClock(remaining)).Debug("timer")
	}
	h.Next.Timer(remaining)
}

func (h LogHUD) Score(good, bad int) {
	h.entry().WithFields(log.Fields{"good": good, "bad": bad}).Debug("score")
	h.Next.Score(good, bad)
}

func (h LogHUD) ShowItem(item model.Item) {
	h.entry().WithFields(log.Fields{"item": item.Name, "good": item.Good}).Info("item picked")
	h.Next.ShowItem(item)
}

func (h LogHUD) HideItem() {
	h.Next.HideItem()
}

func (h LogHUD) End(outcome model.Outcome) {
	h.entry().WithField("outcome", outcome.Name()).Info("game over")
	h.Next.End(outcome)
}
