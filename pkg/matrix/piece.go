package matrix

// Piece is a single visual primitive placed on the matrix: a pixel, text,
// shape, or image. The set of variants is closed; each one flattens to an
// object carrying a "type" discriminator string.
type Piece interface {
	Flattenable

	// isPiece seals the variant set to this package.
	isPiece()
}

// Type discriminator strings, the stable tags consumers branch on.
const (
	TypePixel    = "pixel"
	TypeText     = "text"
	TypeCircle   = "circle"
	TypeRect     = "rect"
	TypeTriangle = "triangle"
	TypeLine     = "line"
	TypeImage    = "image"
	TypeFrame    = "frame"
	TypeMatrix   = "matrix"
)

// Style is the shared color and placement configuration passed to piece
// constructors. Nil fields fall back to the defaults: white at the origin.
type Style struct {
	Color *Color
	At    *Location
}

func (s Style) color() Color {
	if s.Color == nil {
		return White
	}
	return *s.Color
}

func (s Style) location() Location {
	if s.At == nil {
		return Origin
	}
	return *s.At
}

// base flattens the color and location shared by most variants, merged at
// the top level of the variant's object.
func base(c Color, l Location) *Object {
	return NewObject().
		Merge(c.Flatten().(*Object)).
		Merge(l.Flatten().(*Object))
}

// Pixel is a single colored pixel.
type Pixel struct {
	Color    Color
	Location Location
}

// NewPixel returns a pixel with the given style.
func NewPixel(s Style) *Pixel {
	return &Pixel{Color: s.color(), Location: s.location()}
}

func (p *Pixel) isPiece() {}

// Flatten projects the pixel as {"type", "color", "x", "y"}.
func (p *Pixel) Flatten() any {
	return NewObject().
		Set("type", TypePixel).
		Merge(base(p.Color, p.Location))
}

// Text is a string rendered by the remote display at a location.
// Font and size are the renderer's concern.
type Text struct {
	Text     string
	Color    Color
	Location Location
}

// NewText returns a text piece with the given style.
func NewText(text string, s Style) *Text {
	return &Text{Text: text, Color: s.color(), Location: s.location()}
}

func (t *Text) isPiece() {}

func (t *Text) Flatten() any {
	return NewObject().
		Set("type", TypeText).
		Set("text", t.Text).
		Merge(base(t.Color, t.Location))
}

// Circle is a circle centered at its location. Fill defaults to true;
// set it to false for outline-only rendering.
type Circle struct {
	Radius   int
	Fill     bool
	Color    Color
	Location Location
}

// NewCircle returns a filled circle with the given radius and style.
func NewCircle(radius int, s Style) *Circle {
	return &Circle{Radius: radius, Fill: true, Color: s.color(), Location: s.location()}
}

func (c *Circle) isPiece() {}

func (c *Circle) Flatten() any {
	return NewObject().
		Set("type", TypeCircle).
		Set("radius", c.Radius).
		Set("fill", c.Fill).
		Merge(base(c.Color, c.Location))
}

// Rect is an axis-aligned rectangle anchored at its location.
// Fill defaults to true.
type Rect struct {
	Width    int
	Height   int
	Fill     bool
	Color    Color
	Location Location
}

// NewRect returns a filled rectangle with the given dimensions and style.
func NewRect(width, height int, s Style) *Rect {
	return &Rect{Width: width, Height: height, Fill: true, Color: s.color(), Location: s.location()}
}

func (r *Rect) isPiece() {}

func (r *Rect) Flatten() any {
	return NewObject().
		Set("type", TypeRect).
		Set("width", r.Width).
		Set("height", r.Height).
		Set("fill", r.Fill).
		Merge(base(r.Color, r.Location))
}

// Triangle is defined by three vertices instead of a single location.
// Unlike the other shapes, its flattened form nests the color under a
// "color" key rather than merging it at the top level; consumers depend
// on that shape, so it is kept as-is. Fill defaults to true.
type Triangle struct {
	P1    Location
	P2    Location
	P3    Location
	Fill  bool
	Color Color
}

// NewTriangle returns a filled triangle with the given vertices.
// Only the color of the style is used; the vertices replace its location.
func NewTriangle(p1, p2, p3 Location, s Style) *Triangle {
	return &Triangle{P1: p1, P2: p2, P3: p3, Fill: true, Color: s.color()}
}

func (t *Triangle) isPiece() {}

func (t *Triangle) Flatten() any {
	return NewObject().
		Set("type", TypeTriangle).
		Set("p1", t.P1.Flatten()).
		Set("p2", t.P2.Flatten()).
		Set("p3", t.P3.Flatten()).
		Set("color", t.Color.Flatten())
}

// Line runs from its location to End.
type Line struct {
	End      Location
	Color    Color
	Location Location
}

// NewLine returns a line from the style's location to end.
func NewLine(end Location, s Style) *Line {
	return &Line{End: end, Color: s.color(), Location: s.location()}
}

func (l *Line) isPiece() {}

func (l *Line) Flatten() any {
	return NewObject().
		Set("type", TypeLine).
		Set("end_location", l.End.Flatten()).
		Merge(base(l.Color, l.Location))
}
