package matrix

import (
	"fmt"
	"sort"
)

// Image is a bitmap placed on the matrix. It carries no color of its own;
// colors come from the pixel grid.
//
// Flattening picks one of two encodings based on color diversity:
//
//   - Palette: used when the bitmap has fewer than 10 distinct colors, or
//     fewer than half as many distinct colors as pixels. Colors are listed
//     once, sorted by descending occurrence count, and each pixel becomes
//     an index into that list.
//   - Raw: otherwise every pixel is emitted as its own hex string.
//
// The raw encoding omits the "location" field that the palette encoding
// includes. That asymmetry is preserved for wire compatibility with
// existing consumers; see DESIGN.md.
type Image struct {
	Width    int
	Height   int
	Pix      []Color // row-major, row 0 first, left to right
	Location Location
}

// paletteLimit is the distinct-color count below which the palette
// encoding is always chosen.
const paletteLimit = 10

// NewImage returns an image piece for a width x height pixel grid.
// pix must hold exactly width*height colors in row-major order.
func NewImage(width, height int, pix []Color, at Location) (*Image, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d bitmap", len(pix), width, height)
	}
	return &Image{Width: width, Height: height, Pix: pix, Location: at}, nil
}

func (img *Image) isPiece() {}

// Flatten projects the image using the palette or raw encoding.
func (img *Image) Flatten() any {
	counts := make(map[Color]int, len(img.Pix))
	var seen []Color // first-seen order, the stable tiebreak
	for _, c := range img.Pix {
		if counts[c] == 0 {
			seen = append(seen, c)
		}
		counts[c]++
	}

	// Palette when the bitmap is low diversity: fewer than paletteLimit
	// distinct colors, or distinct colors < half the pixel count.
	if len(seen) < paletteLimit || 2*len(seen) < img.Width*img.Height {
		return img.flattenPalette(counts, seen)
	}
	return img.flattenRaw()
}

func (img *Image) flattenPalette(counts map[Color]int, palette []Color) *Object {
	sort.SliceStable(palette, func(i, j int) bool {
		return counts[palette[i]] > counts[palette[j]]
	})

	index := make(map[Color]int, len(palette))
	colors := make([]string, len(palette))
	for i, c := range palette {
		index[c] = i
		colors[i] = c.Hex()
	}

	pixels := make([]int, len(img.Pix))
	for i, c := range img.Pix {
		pixels[i] = index[c]
	}

	return NewObject().
		Set("type", TypeImage).
		Set("width", img.Width).
		Set("height", img.Height).
		Set("colors", colors).
		Set("pixels", pixels).
		Set("location", img.Location.Flatten())
}

func (img *Image) flattenRaw() *Object {
	pixels := make([]string, len(img.Pix))
	for i, c := range img.Pix {
		pixels[i] = c.Hex()
	}

	return NewObject().
		Set("type", TypeImage).
		Set("width", img.Width).
		Set("height", img.Height).
		Set("pixels", pixels)
}
