// Package layout implements the adaptive card layout engine: content
// block construction, region flow with overflow handling and size
// escalation over the fixed ladder of physical card footprints.
package layout

// Card stock geometry in millimeters. These match the printed card
// templates and are not configurable.
const (
	BaseWidth  = 63.0
	BaseHeight = 89.0

	CardCornerDiameter       = 3.0
	BackgroundCornerDiameter = 2.0
	LogoWidth                = 42.0
	StandardBorder           = 2.5
	StandardMargin           = 1.0
	TextMargin               = 2.0
	TitleBarHeight           = 4.8
)

// heightEpsilon absorbs floating point noise when deciding whether a
// measured block still fits a region.
const heightEpsilon = 1e-6

// Rect is a placement rectangle, origin top-left, y growing down.
type Rect struct {
	X, Y, W, H float64
}

// Insets are border widths around a card face in millimeters.
type Insets struct {
	Left, Right, Bottom, Top float64
}

// Grow returns insets uniformly increased by d on every side (print
// bleed).
func (i Insets) Grow(d float64) Insets {
	return Insets{
		Left:   i.Left + d,
		Right:  i.Right + d,
		Bottom: i.Bottom + d,
		Top:    i.Top + d,
	}
}
