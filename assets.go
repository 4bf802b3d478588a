package main

import (
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/sprite"
)

// Assets turns sheets decoded in the background into ebiten images. Images
// are only created in Poll, on the update goroutine.
type Assets struct {
	loader *sprite.Loader
	sheets map[string]*ebiten.Image
}

func NewAssets(dir string) *Assets {
	return &Assets{
		loader: sprite.NewLoader(dir, sprite.SHEETS, decode),
		sheets: map[string]*ebiten.Image{},
	}
}

func decode(file string) (image.Image, error) {
	f, err := ebitenutil.OpenFile(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Poll picks up finished loads. Call it from update.
func (a *Assets) Poll() {
	for _, d := range a.loader.Poll() {
		img, err := ebiten.NewImageFromImage(d.Image, ebiten.FilterDefault)
		if err != nil {
			log.WithField("sheet", d.Name).Warnf("Assets NewImageFromImage: %v", err)
			continue
		}
		log.WithField("sheet", d.Name).Debug("Assets loaded")
		a.sheets[d.Name] = img
	}
}

// Frame returns the image for s, or nil while its sheet is still loading.
func (a *Assets) Frame(s model.Sprite) *ebiten.Image {
	sheet, ok := a.loader.Sheet(s.Sheet)
	if !ok {
		return nil
	}
	img, ok := a.sheets[s.Sheet]
	if !ok {
		a.loader.Request(s.Sheet)
		return nil
	}
	w, h := img.Size()
	return img.SubImage(sheet.Region(s.Frame, image.Rect(0, 0, w, h))).(*ebiten.Image)
}
