package layout

import "cardgen/common"

// Variant is the physical geometry of one card size: outer dimensions,
// border insets for both faces and the text regions of the back face.
// Bleed is already folded into every measurement.
type Variant struct {
	Size   common.CardSize
	Width  float64
	Height float64
	Bleed  float64

	FrontBorder Insets
	BackBorder  Insets

	// rotatableFront allows turning the front 90 degrees to better fit a
	// landscape illustration. The square and oversize variants never
	// rotate.
	rotatableFront bool
	twoColumn      bool
}

// NewVariant builds the geometry for a card size with the given print
// bleed.
func NewVariant(size common.CardSize, bleed float64) Variant {
	v := Variant{Size: size, Bleed: bleed}
	switch size {
	case common.CardSizeSmall:
		v.Width, v.Height = BaseWidth, BaseHeight
		v.FrontBorder = Insets{Left: 2.5, Right: 2.5, Bottom: 7, Top: 7}
		v.BackBorder = Insets{Left: 2.5, Right: 2.5, Bottom: 9.2, Top: 2.5}
		v.rotatableFront = true
	case common.CardSizeLarge:
		v.Width, v.Height = BaseWidth*2, BaseHeight
		v.FrontBorder = Insets{Left: 3.5, Right: 3.5, Bottom: 7, Top: 7}
		v.BackBorder = Insets{Left: 4, Right: 4, Bottom: 8.5, Top: 3}
		v.rotatableFront = true
		v.twoColumn = true
	case common.CardSizeEpic:
		v.Width, v.Height = BaseWidth*2, BaseWidth*2
		v.FrontBorder = Insets{Left: 3.5, Right: 3.5, Bottom: 7, Top: 7}
		v.BackBorder = Insets{Left: 4, Right: 4, Bottom: 6.5, Top: 3}
		v.twoColumn = true
	case common.CardSizeSuperEpic:
		v.Width, v.Height = BaseWidth*2, BaseWidth*3
		v.FrontBorder = Insets{Left: 3.5, Right: 3.5, Bottom: 7, Top: 7}
		v.BackBorder = Insets{Left: 4, Right: 4, Bottom: 6.5, Top: 3}
		v.twoColumn = true
	}
	v.Width += 2 * bleed
	v.Height += 2 * bleed
	v.FrontBorder = v.FrontBorder.Grow(bleed)
	v.BackBorder = v.BackBorder.Grow(bleed)
	return v
}

// BackRegions builds the text regions of the back face, fresh for every
// layout attempt.
func (v Variant) BackRegions() []*Region {
	bb := v.BackBorder
	pad := Insets{Left: TextMargin, Right: TextMargin, Bottom: TextMargin}
	regionH := v.Height - bb.Top - bb.Bottom

	if !v.twoColumn {
		return []*Region{
			NewRegion(Rect{X: bb.Left, Y: bb.Top, W: v.Width - bb.Left - bb.Right, H: regionH}, pad),
		}
	}

	colW := v.Width/2 - bb.Left - StandardBorder/2
	rightPad := pad
	rightPad.Top = StandardMargin
	return []*Region{
		NewRegion(Rect{X: bb.Left, Y: bb.Top, W: colW, H: regionH}, pad),
		NewRegion(Rect{X: v.Width/2 + StandardBorder/2, Y: bb.Top, W: colW, H: regionH}, rightPad),
	}
}

// ColumnRule returns the border-colored rule separating the two back-face
// columns, if the variant has one.
func (v Variant) ColumnRule() (Rect, bool) {
	if !v.twoColumn {
		return Rect{}, false
	}
	return Rect{X: v.Width/2 - StandardBorder/2, Y: 0, W: StandardBorder, H: v.Height}, true
}

// FrontFrame is the illustration and title area of the front face. When
// the front is rotated the caller passes the swapped dimensions.
func (v Variant) FrontFrame(w, h float64) Rect {
	bf := v.FrontBorder
	return Rect{X: bf.Left, Y: bf.Top, W: w - bf.Left - bf.Right, H: h - bf.Top - bf.Bottom}
}

// Ladder returns the escalation order of sizes to try for an entity kind.
// Items only exist as small cards.
func Ladder(kind common.EntityKind) []common.CardSize {
	sizes := []common.CardSize{common.CardSizeSmall}
	if kind == common.EntityKindItem {
		return sizes
	}
	for {
		next, ok := sizes[len(sizes)-1].Next()
		if !ok {
			return sizes
		}
		sizes = append(sizes, next)
	}
}
