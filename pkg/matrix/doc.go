// Package matrix provides a declarative content model for low-resolution
// remote pixel-matrix displays (LED matrices and similar), together with a
// deterministic serialization scheme that flattens the model into a JSON
// document for transmission to the display controller.
//
// # Overview
//
// A document is a Content: an ordered sequence of Frames, each holding an
// ordered sequence of Pieces (pixels, text, shapes, images) shown together
// for a duration. The model is a strict tree - Content owns its Frames,
// Frames own their Pieces - and nothing here renders pixels or talks to
// hardware; the output is a structural description only.
//
// # Flattening
//
// Every entity implements Flattenable: a pure, side-effect-free projection
// into a JSON-representable value. ToJSON renders that value as canonical
// JSON text and Save writes it to a file. Flattening an unchanged entity
// twice yields identical output.
//
// # Usage Example
//
//	content := matrix.NewContent()
//	frame := content.Current()
//	frame.Duration = 0.5
//	frame.Add(matrix.NewRect(5, 3, matrix.Style{
//		Color: &matrix.Color{G: 255},
//		At:    &matrix.Location{X: 2, Y: 2},
//	}))
//
//	frame = content.NewFrame()
//	frame.Add(matrix.NewText("hello", matrix.Style{}))
//
//	if err := matrix.Save(content, "content.json"); err != nil {
//		log.Fatal(err)
//	}
//
// # Wire Format
//
// The top-level document is {"type": "matrix", "frames": [...]}. Every
// element carries a "type" discriminator string for consumers to branch on.
// Object keys are emitted in a fixed documented order so that serializing
// the same model always produces byte-identical text.
package matrix
