// Package scene loads declarative YAML scene descriptions and builds
// matrix content documents from them. A scene file is the on-disk,
// human-editable form of a Content: a list of frames, each with a list
// of elements mirroring the matrix piece variants.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/anjomro/remote-matrix/pkg/bitmap"
	"github.com/anjomro/remote-matrix/pkg/matrix"
)

// Scene represents a top-level scene file.
type Scene struct {
	Version string  `yaml:"version"`
	Frames  []Frame `yaml:"frames"`
}

// Frame represents one frame of the scene.
type Frame struct {
	Duration float64   `yaml:"duration,omitempty"` // seconds
	Elements []Element `yaml:"elements"`
}

// Element represents a single piece. Kind selects the variant; the other
// fields are variant-specific and ignored by kinds that do not use them.
type Element struct {
	Kind string `yaml:"kind"`

	// Shared by most kinds
	Color string `yaml:"color,omitempty"` // #rrggbb, default white
	At    *Point `yaml:"at,omitempty"`    // default origin
	Fill  *bool  `yaml:"fill,omitempty"`  // shapes only, default true

	// kind: text
	Text string `yaml:"text,omitempty"`

	// kind: circle
	Radius int `yaml:"radius,omitempty"`

	// kind: rect
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	// kind: triangle
	P1 *Point `yaml:"p1,omitempty"`
	P2 *Point `yaml:"p2,omitempty"`
	P3 *Point `yaml:"p3,omitempty"`

	// kind: line
	End *Point `yaml:"end,omitempty"`

	// kind: image
	File      string `yaml:"file,omitempty"`       // path relative to the scene file
	MaxWidth  int    `yaml:"max_width,omitempty"`  // 0 = unconstrained
	MaxHeight int    `yaml:"max_height,omitempty"` // 0 = unconstrained
}

// Point is a 2D coordinate in scene files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Load reads and validates a scene file from the specified path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	return &s, nil
}

// Validate performs strict validation on the scene.
func (s *Scene) Validate() error {
	if s.Version != "1" {
		return fmt.Errorf("unsupported version: %q (expected: \"1\")", s.Version)
	}

	if len(s.Frames) == 0 {
		return fmt.Errorf("no frames defined")
	}

	for i, frame := range s.Frames {
		if frame.Duration < 0 {
			return fmt.Errorf("frame %d: duration must be >= 0, got %v", i, frame.Duration)
		}
		for j, el := range frame.Elements {
			if err := el.Validate(); err != nil {
				return fmt.Errorf("frame %d element %d: %w", i, j, err)
			}
		}
	}

	return nil
}

// Validate performs validation on a single element.
func (e *Element) Validate() error {
	if e.Color != "" {
		if _, err := matrix.ParseHex(e.Color); err != nil {
			return err
		}
	}

	switch e.Kind {
	case "pixel":
		// no extra fields
	case "text":
		if e.Text == "" {
			return fmt.Errorf("text element requires text")
		}
	case "circle":
		if e.Radius <= 0 {
			return fmt.Errorf("circle element requires radius > 0, got %d", e.Radius)
		}
	case "rect":
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("rect element requires width and height > 0, got %dx%d", e.Width, e.Height)
		}
	case "triangle":
		if e.P1 == nil || e.P2 == nil || e.P3 == nil {
			return fmt.Errorf("triangle element requires p1, p2 and p3")
		}
	case "line":
		if e.End == nil {
			return fmt.Errorf("line element requires end")
		}
	case "image":
		if e.File == "" {
			return fmt.Errorf("image element requires file")
		}
		if e.MaxWidth < 0 || e.MaxHeight < 0 {
			return fmt.Errorf("image bounds must be >= 0, got %dx%d", e.MaxWidth, e.MaxHeight)
		}
	case "":
		return fmt.Errorf("element kind is required")
	default:
		return fmt.Errorf("unknown element kind: %q", e.Kind)
	}

	return nil
}

// Build constructs a matrix content document from the scene. Image file
// paths are resolved relative to baseDir, normally the directory holding
// the scene file.
func (s *Scene) Build(baseDir string) (*matrix.Content, error) {
	content := matrix.NewContent()

	for i, fs := range s.Frames {
		frame := content.Current()
		if i > 0 {
			frame = content.NewFrame()
		}
		frame.Duration = fs.Duration

		for j, el := range fs.Elements {
			piece, err := el.build(baseDir)
			if err != nil {
				return nil, fmt.Errorf("frame %d element %d: %w", i, j, err)
			}
			frame.Add(piece)
		}
	}

	return content, nil
}

func (e *Element) build(baseDir string) (matrix.Piece, error) {
	style, err := e.style()
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case "pixel":
		return matrix.NewPixel(style), nil

	case "text":
		return matrix.NewText(e.Text, style), nil

	case "circle":
		c := matrix.NewCircle(e.Radius, style)
		c.Fill = e.fill()
		return c, nil

	case "rect":
		r := matrix.NewRect(e.Width, e.Height, style)
		r.Fill = e.fill()
		return r, nil

	case "triangle":
		t := matrix.NewTriangle(e.P1.location(), e.P2.location(), e.P3.location(), style)
		t.Fill = e.fill()
		return t, nil

	case "line":
		return matrix.NewLine(e.End.location(), style), nil

	case "image":
		return e.buildImage(baseDir)

	default:
		return nil, fmt.Errorf("unknown element kind: %q", e.Kind)
	}
}

func (e *Element) buildImage(baseDir string) (matrix.Piece, error) {
	path := e.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	b, err := bitmap.Open(path)
	if err != nil {
		return nil, err
	}

	if e.MaxWidth > 0 || e.MaxHeight > 0 {
		if b, err = bitmap.Fit(b, e.MaxWidth, e.MaxHeight); err != nil {
			return nil, err
		}
	}

	at := matrix.Origin
	if e.At != nil {
		at = e.At.location()
	}
	return b.Piece(at)
}

func (e *Element) style() (matrix.Style, error) {
	var style matrix.Style
	if e.Color != "" {
		c, err := matrix.ParseHex(e.Color)
		if err != nil {
			return matrix.Style{}, err
		}
		style.Color = &c
	}
	if e.At != nil {
		at := e.At.location()
		style.At = &at
	}
	return style, nil
}

func (e *Element) fill() bool {
	if e.Fill == nil {
		return true
	}
	return *e.Fill
}

func (p *Point) location() matrix.Location {
	return matrix.Location{X: p.X, Y: p.Y}
}
