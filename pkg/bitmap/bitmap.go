// Package bitmap decodes image files into the plain RGB pixel grids the
// content model consumes. It understands PNG, GIF, JPEG and BMP, and can
// rescale a decoded bitmap to fit a physical matrix.
package bitmap

import (
	"fmt"
	"image"
	_ "image/gif" // register decoders with image.Decode
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/anjomro/remote-matrix/pkg/matrix"
)

// Bitmap is a decoded width x height RGB pixel grid, row-major, row 0
// first, left to right within a row. Alpha is discarded during decoding.
type Bitmap struct {
	Width  int
	Height int
	Pix    []matrix.Color
}

// Open decodes the image file at path.
func Open(path string) (*Bitmap, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer in.Close()

	b, err := Decode(in)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return b, nil
}

// Decode reads a PNG, GIF, JPEG or BMP image from r.
// Decode failures from the underlying format reader are returned unchanged.
func Decode(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into a Bitmap, reducing every color
// model to 8-bit RGB.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := &Bitmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]matrix.Color, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			b.Pix = append(b.Pix, matrix.Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
			})
		}
	}
	return b
}

// At returns the color at (x, y). The coordinates must be in range.
func (b *Bitmap) At(x, y int) matrix.Color {
	return b.Pix[y*b.Width+x]
}

// Validate checks that the pixel grid matches the declared dimensions.
func (b *Bitmap) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid bitmap dimensions %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("bitmap has %d pixels, want %d for %dx%d", len(b.Pix), b.Width*b.Height, b.Width, b.Height)
	}
	return nil
}

// Piece converts the bitmap into an image piece placed at the given
// location.
func (b *Bitmap) Piece(at matrix.Location) (*matrix.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return matrix.NewImage(b.Width, b.Height, b.Pix, at)
}

// Resize scales the bitmap to width x height using nearest-neighbour
// sampling, which keeps hard pixel edges - the right choice for low
// resolution matrix targets.
func Resize(b *Bitmap, width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", width, height)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if width == b.Width && height == b.Height {
		return b, nil
	}

	src := b.toRGBA()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst), nil
}

// Fit scales the bitmap down to fit within maxWidth x maxHeight while
// preserving aspect ratio. Bitmaps already within bounds are returned
// unchanged. A zero bound means unconstrained on that axis.
func Fit(b *Bitmap, maxWidth, maxHeight int) (*Bitmap, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	width, height := b.Width, b.Height
	if maxWidth > 0 && width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}
	if maxHeight > 0 && height > maxHeight {
		width = width * maxHeight / height
		height = maxHeight
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Resize(b, width, height)
}

func (b *Bitmap) toRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
