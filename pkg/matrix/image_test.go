package matrix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage_PixelCountMismatch(t *testing.T) {
	_, err := NewImage(2, 2, []Color{{}, {}}, Origin)
	assert.Error(t, err)
}

func TestImageFlatten_SingleColorUsesPalette(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30}
	img, err := NewImage(2, 2, []Color{c, c, c, c}, Origin)
	require.NoError(t, err)

	data, err := json.Marshal(img.Flatten())
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"image","width":2,"height":2,"colors":["#0a141e"],"pixels":[0,0,0,0],"location":{"x":0,"y":0}}`,
		string(data))
}

func TestImageFlatten_PaletteSortedByCount(t *testing.T) {
	var (
		red   = Color{R: 255}
		green = Color{G: 255}
		blue  = Color{B: 255}
	)
	// 3x2 bitmap: green appears 3 times, red twice, blue once.
	img, err := NewImage(3, 2, []Color{
		red, green, blue,
		green, red, green,
	}, Location{X: 5, Y: 6})
	require.NoError(t, err)

	obj := img.Flatten().(*Object)

	colors, _ := obj.Get("colors")
	assert.Equal(t, []string{"#00ff00", "#ff0000", "#0000ff"}, colors)

	pixels, _ := obj.Get("pixels")
	assert.Equal(t, []int{1, 0, 2, 0, 1, 0}, pixels)

	location, _ := obj.Get("location")
	locJSON, err := json.Marshal(location)
	require.NoError(t, err)
	assert.Equal(t, `{"x":5,"y":6}`, string(locJSON))
}

func TestImageFlatten_PaletteTiesKeepFirstSeenOrder(t *testing.T) {
	var (
		a = Color{R: 1}
		b = Color{R: 2}
	)
	// Equal counts: first-seen color keeps the lower index.
	img, err := NewImage(2, 2, []Color{a, b, a, b}, Origin)
	require.NoError(t, err)

	obj := img.Flatten().(*Object)
	colors, _ := obj.Get("colors")
	assert.Equal(t, []string{"#010000", "#020000"}, colors)
}

func TestImageFlatten_HighDiversityUsesRaw(t *testing.T) {
	// 5x4 = 20 pixels, all distinct: 20 >= 10 and 2*20 >= 20.
	pix := make([]Color, 20)
	for i := range pix {
		pix[i] = Color{R: uint8(i), G: uint8(i * 7), B: uint8(i * 13)}
	}
	img, err := NewImage(5, 4, pix, Location{X: 1, Y: 1})
	require.NoError(t, err)

	obj := img.Flatten().(*Object)

	pixels, ok := obj.Get("pixels")
	require.True(t, ok)
	hexes, ok := pixels.([]string)
	require.True(t, ok)
	require.Len(t, hexes, 20)
	for i, c := range pix {
		assert.Equal(t, c.Hex(), hexes[i])
	}

	_, hasColors := obj.Get("colors")
	assert.False(t, hasColors)

	// The raw encoding carries no location field.
	_, hasLocation := obj.Get("location")
	assert.False(t, hasLocation)
}

func TestImageFlatten_DiversityBoundaries(t *testing.T) {
	testCases := []struct {
		name        string
		width       int
		height      int
		distinct    int
		wantPalette bool
	}{
		// 9 distinct colors always palette, regardless of pixel count.
		{"below color limit", 3, 3, 9, true},
		// 10 distinct in 20 pixels: 10 >= 10 and 2*10 >= 20, raw.
		{"at both limits", 5, 4, 10, false},
		// 10 distinct in 21 pixels: 2*10 < 21, palette.
		{"just under half", 7, 3, 10, true},
		// 12 distinct in 24 pixels: 2*12 >= 24, raw.
		{"exactly half", 6, 4, 12, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pix := make([]Color, tc.width*tc.height)
			for i := range pix {
				pix[i] = Color{R: uint8(i % tc.distinct)}
			}
			img, err := NewImage(tc.width, tc.height, pix, Origin)
			require.NoError(t, err)

			obj := img.Flatten().(*Object)
			_, hasColors := obj.Get("colors")
			assert.Equal(t, tc.wantPalette, hasColors)
		})
	}
}

func TestImageFlatten_Idempotent(t *testing.T) {
	// The palette path stable-sorts a shared slice; flattening twice must
	// still produce identical output.
	img, err := NewImage(2, 2, []Color{{R: 1}, {R: 2}, {R: 1}, {R: 1}}, Origin)
	require.NoError(t, err)

	first, err := json.Marshal(img.Flatten())
	require.NoError(t, err)
	second, err := json.Marshal(img.Flatten())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
