package layout

import "cardgen/render"

// Region is one text-flow target area on a card back. Blocks are committed
// top-down, the cursor never moves back up.
type Region struct {
	rect  Rect
	pad   Insets
	used  float64
	atTop bool
}

func NewRegion(rect Rect, pad Insets) *Region {
	return &Region{rect: rect, pad: pad, atTop: true}
}

// AtTop reports whether no block has been committed to this region yet.
func (r *Region) AtTop() bool { return r.atTop }

// ContentWidth is the wrap width blocks are measured against.
func (r *Region) ContentWidth() float64 {
	return r.rect.W - r.pad.Left - r.pad.Right
}

// Remaining is the vertical space still available for content.
func (r *Region) Remaining() float64 {
	return r.rect.H - r.pad.Top - r.pad.Bottom - r.used
}

// Width is the full region width, padding included.
func (r *Region) Width() float64 { return r.rect.W }

func (r *Region) commit(c render.Canvas, b Block, space, h float64) {
	b.DrawOn(c, r.rect.X+r.pad.Left, r.rect.Y+r.pad.Top+r.used+space)
	r.used += space + h
	r.atTop = false
}

// TryAdd measures the block against the region width and commits it at the
// cursor. It returns false without mutating the region when the block does
// not fit in the remaining height.
func (r *Region) TryAdd(c render.Canvas, b Block) bool {
	h := b.Wrap(c, r.ContentWidth())
	space := b.SpaceBefore()
	if r.atTop {
		space = 0
	}
	if space+h > r.Remaining()+heightEpsilon {
		return false
	}
	r.commit(c, b, space, h)
	return true
}

// TrySplit breaks a splittable block at the region boundary, commits the
// fitting fragment and returns the residual for the next region. ok is
// false when the block cannot split or no usable prefix fits.
func (r *Region) TrySplit(c render.Canvas, b Block) (Block, bool) {
	sp, ok := b.(Splittable)
	if !ok {
		return nil, false
	}
	space := b.SpaceBefore()
	if r.atTop {
		space = 0
	}
	fit, rest, ok := sp.Split(c, r.ContentWidth(), r.Remaining()-space)
	if !ok {
		return nil, false
	}
	r.commit(c, fit, space, fit.Wrap(c, r.ContentWidth()))
	return rest, true
}
