// Package sprite knows how sprite sheets are cut into frames and loads them
// in the background. It holds decoded images only, renderers turn them into
// their own textures.
package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"path"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/model"
)

// Sheet describes a sprite sheet laid out as a grid of equal frames.
type Sheet struct {
	File          string
	Width, Height int
	Cols          int
	// First is the frame number stored in the top left cell.
	First int
	// Placeholder is drawn when the file cannot be loaded.
	Placeholder color.RGBA
}

var SHEETS = map[string]Sheet{
	model.SHEET_ROAD:      {File: "road.png", Width: 64, Height: 64, Cols: 5, First: 1, Placeholder: color.RGBA{90, 90, 90, 255}},
	model.SHEET_BUILDINGS: {File: "buildings.png", Width: 64, Height: 64, Cols: 3, Placeholder: color.RGBA{150, 110, 80, 255}},
	model.SHEET_ITEMS:     {File: "items.png", Width: 64, Height: 64, Cols: 5, Placeholder: color.RGBA{240, 200, 40, 255}},
	model.SHEET_CHARACTER: {File: "character.png", Width: 48, Height: 60, Cols: model.WALK_FRAMES, Placeholder: color.RGBA{40, 120, 230, 255}},
	model.SHEET_SHADOW:    {File: "shadow.png", Width: 64, Height: 32, Cols: 1, Placeholder: color.RGBA{0, 0, 0, 90}},
}

// FrameRect is the region of frame inside the sheet.
func (s Sheet) FrameRect(frame int) image.Rectangle {
	i := frame - s.First
	if i < 0 {
		i = 0
	}
	x := (i % s.Cols) * s.Width
	y := (i / s.Cols) * s.Height
	return image.Rect(x, y, x+s.Width, y+s.Height)
}

// Region is FrameRect clipped to a loaded image. Frames outside the image,
// as with single frame placeholders, fall back to the whole image.
func (s Sheet) Region(frame int, bounds image.Rectangle) image.Rectangle {
	r := s.FrameRect(frame).Add(bounds.Min)
	if !r.In(bounds) {
		return bounds
	}
	return r
}

// NewPlaceholder is one frame of flat colour.
func (s Sheet) NewPlaceholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: s.Placeholder}, image.Point{}, draw.Src)
	return img
}

// Decoder reads an image file.
type Decoder func(file string) (image.Image, error)

// Loaded is a finished load. On error Image is the sheet's placeholder.
type Loaded struct {
	Name  string
	Image image.Image
	Err   error
}

// Loader decodes sheets on background goroutines, each at most once.
type Loader struct {
	dir     string
	sheets  map[string]Sheet
	decode  Decoder
	mu      sync.Mutex
	pending map[string]bool
	ready   chan Loaded
}

func NewLoader(dir string, sheets map[string]Sheet, decode Decoder) *Loader {
	return &Loader{
		dir:     dir,
		sheets:  sheets,
		decode:  decode,
		pending: map[string]bool{},
		ready:   make(chan Loaded, len(sheets)),
	}
}

func (l *Loader) Sheet(name string) (Sheet, bool) {
	s, ok := l.sheets[name]
	return s, ok
}

// Request starts loading name unless it is unknown or already requested.
func (l *Loader) Request(name string) bool {
	sheet, ok := l.sheets[name]
	if !ok {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending[name] {
		return false
	}
	l.pending[name] = true
	go func() {
		img, err := l.decode(path.Join(l.dir, sheet.File))
		if err != nil {
			log.WithFields(log.Fields{"sheet": name, "file": sheet.File}).Warnf("Loader failed, using placeholder: %v", err)
			img = sheet.NewPlaceholder()
		}
		l.ready <- Loaded{Name: name, Image: img, Err: err}
	}()
	return true
}

// Poll returns the loads finished since the last call without blocking.
func (l *Loader) Poll() []Loaded {
	var done []Loaded
	for {
		select {
		case d := <-l.ready:
			done = append(done, d)
		default:
			return done
		}
	}
}
