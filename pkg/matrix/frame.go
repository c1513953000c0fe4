package matrix

import (
	"errors"
	"fmt"
)

// Errors returned by the container operations.
var (
	// ErrNotFound is returned when removing an element that is not in the frame.
	ErrNotFound = errors.New("element not found in frame")

	// ErrFrameRange is returned when looking up a frame by an invalid index.
	ErrFrameRange = errors.New("frame index out of range")
)

// Frame is an ordered collection of pieces shown together for a duration,
// analogous to one frame of an animation. Append order is paint order.
// A frame owns its elements; pieces are not shared across frames.
type Frame struct {
	Elements []Piece
	Duration float64 // display time in seconds, 0 = renderer default
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Add appends a piece to the end of the frame.
func (f *Frame) Add(p Piece) {
	f.Elements = append(f.Elements, p)
}

// Remove deletes the first occurrence of p from the frame.
// Returns ErrNotFound if p is not present; the frame is left unchanged.
func (f *Frame) Remove(p Piece) error {
	for i, e := range f.Elements {
		if e == p {
			f.Elements = append(f.Elements[:i], f.Elements[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Flatten projects the frame as {"type", "duration", "elements"}.
func (f *Frame) Flatten() any {
	elements := make([]any, len(f.Elements))
	for i, e := range f.Elements {
		elements[i] = e.Flatten()
	}
	return NewObject().
		Set("type", TypeFrame).
		Set("duration", f.Duration).
		Set("elements", elements)
}

// Content is the top-level document: a non-empty ordered sequence of
// frames plus a cursor pointing at the frame currently being built.
// The cursor only moves forward, via NewFrame.
type Content struct {
	frames  []*Frame
	current int
}

// NewContent returns a document holding a single empty frame, which is
// also the current frame.
func NewContent() *Content {
	return &Content{frames: []*Frame{NewFrame()}}
}

// Current returns the frame the cursor points at: the most recently
// created frame.
func (c *Content) Current() *Frame {
	return c.frames[c.current]
}

// Frame returns the frame at index.
func (c *Content) Frame(index int) (*Frame, error) {
	if index < 0 || index >= len(c.frames) {
		return nil, fmt.Errorf("%w: %d (have %d frames)", ErrFrameRange, index, len(c.frames))
	}
	return c.frames[index], nil
}

// NewFrame appends a new empty frame, advances the cursor to it, and
// returns it. This is the only way the cursor moves.
func (c *Content) NewFrame() *Frame {
	f := NewFrame()
	c.frames = append(c.frames, f)
	c.current = len(c.frames) - 1
	return f
}

// Len returns the number of frames.
func (c *Content) Len() int {
	return len(c.frames)
}

// Flatten projects the document as {"type": "matrix", "frames": [...]}.
func (c *Content) Flatten() any {
	frames := make([]any, len(c.frames))
	for i, f := range c.frames {
		frames[i] = f.Flatten()
	}
	return NewObject().
		Set("type", TypeMatrix).
		Set("frames", frames)
}
