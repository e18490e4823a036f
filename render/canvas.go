// Package render owns the drawing surface the layout engine paints on: a
// PDF backend, a recording canvas whose accumulated operations can be
// discarded wholesale when a layout attempt overflows, and the font style
// sheet.
package render

import (
	"image"
)

// ImageRef names a drawable image: either a file on disk or an already
// decoded in-memory image (rasterized SVG art). Name must be unique per
// document, it keys the backend's image cache.
type ImageRef struct {
	Name  string
	Path  string
	Image image.Image
}

// Measurer is the metrics part of the surface. Measurement is answered
// live even when drawing is being recorded, the flow engine depends on it
// for its measure-before-place pass.
type Measurer interface {
	// SetFont makes family/variant/size current for both measurement and
	// subsequent text drawing. Variant is "", "B", "I" or "BI".
	SetFont(family, variant string, sizePt float64)
	// TextWidth returns the width of s in millimeters at the current font.
	TextWidth(s string) float64
}

// Canvas is the drawing surface contract the layout engine paints
// against. Coordinates are millimeters, origin top-left, y growing down.
type Canvas interface {
	Measurer

	SetFillColor(hex string)
	SetTextColor(hex string)

	// Text draws s with the current font and text color, x is the left
	// edge, y the baseline.
	Text(x, y float64, s string)

	FillRect(x, y, w, h float64)
	FillRoundedRect(x, y, w, h, r float64)

	// ClipRoundedRect starts clipping to the given rounded rectangle.
	// Calls must be balanced with ClipEnd.
	ClipRoundedRect(x, y, w, h, r float64)
	ClipEnd()

	Image(ref ImageRef, x, y, w, h float64)

	// RotateBegin starts a block rotated by angle degrees around (x, y).
	// Calls must be balanced with RotateEnd.
	RotateBegin(angle, x, y float64)
	RotateEnd()
}
