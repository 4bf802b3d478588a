package sprite

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ecocity/model"
)

func TestFrameRect(t *testing.T) {
	road := SHEETS[model.SHEET_ROAD]
	character := SHEETS[model.SHEET_CHARACTER]
	tests := []struct {
		name  string
		sheet Sheet
		frame int
		want  image.Rectangle
	}{
		{"first road tile", road, int(model.VERTICAL), image.Rect(0, 0, 64, 64)},
		{"second row", road, int(model.BOTTOM_RIGHT), image.Rect(0, 64, 64, 128)},
		{"last road tile", road, int(model.THREE_WAY_BOTTOM), image.Rect(256, 64, 320, 128)},
		{"below first clamps", road, 0, image.Rect(0, 0, 64, 64)},
		{"walking left", character, int(model.LEFT)*model.WALK_FRAMES + 2, image.Rect(96, 120, 144, 180)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sheet.FrameRect(tt.frame))
		})
	}
}

func TestRegion(t *testing.T) {
	items := SHEETS[model.SHEET_ITEMS]
	full := image.Rect(0, 0, 320, 256)
	assert.Equal(t, image.Rect(64, 64, 128, 128), items.Region(6, full))

	// a single frame placeholder serves every frame
	one := image.Rect(0, 0, 64, 64)
	assert.Equal(t, one, items.Region(6, one))
	assert.Equal(t, one, items.Region(0, one))
}

func TestNewPlaceholder(t *testing.T) {
	shadow := SHEETS[model.SHEET_SHADOW]
	img := shadow.NewPlaceholder()
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(shadow.Placeholder), color.RGBAModel.Convert(img.At(10, 10)))
}

func waitLoaded(t *testing.T, l *Loader) []Loaded {
	t.Helper()
	var got []Loaded
	require.Eventually(t, func() bool {
		got = append(got, l.Poll()...)
		return len(got) > 0
	}, 5*time.Second, time.Millisecond)
	return got
}

func TestLoaderNothingUntilDecoded(t *testing.T) {
	release := make(chan struct{})
	var files []string
	decode := func(file string) (image.Image, error) {
		files = append(files, file)
		<-release
		return image.NewRGBA(image.Rect(0, 0, 320, 128)), nil
	}
	l := NewLoader("img", SHEETS, decode)

	assert.True(t, l.Request(model.SHEET_ROAD))
	assert.False(t, l.Request(model.SHEET_ROAD), "one load per sheet")
	assert.False(t, l.Request("nope"))
	assert.Empty(t, l.Poll(), "still decoding")

	close(release)
	got := waitLoaded(t, l)
	require.Len(t, got, 1)
	assert.Equal(t, model.SHEET_ROAD, got[0].Name)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, image.Rect(0, 0, 320, 128), got[0].Image.Bounds())
	assert.Equal(t, []string{"img/road.png"}, files)
}

func TestLoaderFailureUsesPlaceholder(t *testing.T) {
	missing := errors.New("missing")
	l := NewLoader("img", SHEETS, func(string) (image.Image, error) { return nil, missing })

	require.True(t, l.Request(model.SHEET_ITEMS))
	got := waitLoaded(t, l)
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, missing)
	require.NotNil(t, got[0].Image)
	assert.Equal(t, image.Rect(0, 0, 64, 64), got[0].Image.Bounds())
}
