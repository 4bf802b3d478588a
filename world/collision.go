package world

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
)

// CheckOverlap reports whether the top left or the bottom right corner of a
// lies strictly inside b. Only two corners are tested: a box wholly containing
// b, or crossing it without enclosing one of those corners, is missed, and an
// entity moving further than its own size in one tick can pass through.
func CheckOverlap(a, b *model.Entity) bool {
	atl, abr := a.Bounds()
	btl, bbr := b.Bounds()
	return IsPointInsideRect(atl, btl, bbr) || IsPointInsideRect(abr, btl, bbr)
}

// resolvePickup removes the first item, in insertion order, that the player
// overlaps. At most one item is picked per tick.
func (w *World) resolvePickup() {
	for i, e := range w.entities {
		if e.Kind != model.ITEM || e.Item == nil {
			continue
		}
		if !CheckOverlap(&w.Player.Entity, e) {
			continue
		}
		w.remove(i)
		item := *e.Item
		w.Session.Pick(item)

		log.WithFields(log.Fields{
			"item": item.Name,
			"good": w.Session.GoodPicked,
			"bad":  w.Session.BadPicked,
		}).Debug("World.resolvePickup")

		w.hud.Score(w.Session.GoodPicked, w.Session.BadPicked)
		w.showItem(item)
		return
	}
}

func (w *World) showItem(item model.Item) {
	if w.popup != nil {
		w.popup.Stop()
	}
	generation := w.popupGeneration.Add(1)
	w.hud.ShowItem(item)
	w.popup = w.clock.AfterFunc(w.opts.PopupDuration, func() {
		// a newer popup owns the HUD now
		if w.popupGeneration.Load() == generation {
			w.hud.HideItem()
		}
	})
}
