package matrix

import (
	"fmt"
	"strconv"
)

// Color is an immutable RGB triple. The zero value is black.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// White is the default color applied to pieces constructed without one.
var White = Color{R: 255, G: 255, B: 255}

// Hex returns the lowercase #rrggbb form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Flatten projects the color as {"color": "#rrggbb"}.
func (c Color) Flatten() any {
	return NewObject().Set("color", c.Hex())
}

// ParseHex parses a #rrggbb string back into a Color.
// The string must be exactly 7 characters: '#' followed by 6 hex digits.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 24)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Location is an immutable 2D integer coordinate. Coordinates are signed
// and unbounded; fitting within a physical matrix is the caller's concern.
type Location struct {
	X int
	Y int
}

// Origin is the default location applied to pieces constructed without one.
var Origin = Location{}

// Flatten projects the location as {"x": X, "y": Y}.
func (l Location) Flatten() any {
	return NewObject().
		Set("x", l.X).
		Set("y", l.Y)
}
