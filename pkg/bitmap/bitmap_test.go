package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjomro/remote-matrix/pkg/matrix"
)

// testImage builds a 2x2 RGBA image with one distinct color per corner.
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestFromImage_RowMajorRGB(t *testing.T) {
	b := FromImage(testImage())

	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 2, b.Height)
	require.NoError(t, b.Validate())
	assert.Equal(t, []matrix.Color{
		{R: 255}, {G: 255},
		{B: 255}, {R: 255, G: 255, B: 255},
	}, b.Pix)
}

func TestDecode_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	b, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, matrix.Color{R: 255}, b.At(0, 0))
	assert.Equal(t, matrix.Color{G: 255}, b.At(1, 0))
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("does-not-exist.png")
	assert.Error(t, err)
}

func TestResize_NearestNeighbour(t *testing.T) {
	b := FromImage(testImage())

	scaled, err := Resize(b, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, scaled.Width)
	assert.Equal(t, 4, scaled.Height)
	require.NoError(t, scaled.Validate())

	// Each source pixel becomes a 2x2 block with no blending.
	assert.Equal(t, matrix.Color{R: 255}, scaled.At(0, 0))
	assert.Equal(t, matrix.Color{R: 255}, scaled.At(1, 1))
	assert.Equal(t, matrix.Color{G: 255}, scaled.At(2, 0))
	assert.Equal(t, matrix.Color{B: 255}, scaled.At(0, 2))
	assert.Equal(t, matrix.Color{R: 255, G: 255, B: 255}, scaled.At(3, 3))
}

func TestResize_SameSizeReturnsInput(t *testing.T) {
	b := FromImage(testImage())
	scaled, err := Resize(b, 2, 2)
	require.NoError(t, err)
	assert.Same(t, b, scaled)
}

func TestResize_InvalidTarget(t *testing.T) {
	b := FromImage(testImage())
	_, err := Resize(b, 0, 4)
	assert.Error(t, err)
}

func TestFit_PreservesAspectRatio(t *testing.T) {
	wide := FromImage(image.NewRGBA(image.Rect(0, 0, 8, 4)))

	fitted, err := Fit(wide, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, fitted.Width)
	assert.Equal(t, 2, fitted.Height)
}

func TestFit_WithinBoundsUnchanged(t *testing.T) {
	b := FromImage(testImage())
	fitted, err := Fit(b, 10, 10)
	require.NoError(t, err)
	assert.Same(t, b, fitted)
}

func TestValidate_Mismatch(t *testing.T) {
	b := &Bitmap{Width: 2, Height: 2, Pix: make([]matrix.Color, 3)}
	assert.Error(t, b.Validate())
}

func TestPiece_FlattensThroughModel(t *testing.T) {
	b := FromImage(testImage())

	piece, err := b.Piece(matrix.Location{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, piece.Width)
	assert.Equal(t, 2, piece.Height)
	assert.Len(t, piece.Pix, 4)
}
