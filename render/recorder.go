package render

// Recorder implements Canvas by accumulating drawing operations instead of
// painting them. Measurement and font state are delegated to the live
// backend immediately (metrics must be real), drawing is deferred until
// Replay. Discarding a Recorder discards everything it accumulated, which
// is what the size selector does when a layout attempt overflows.
type Recorder struct {
	m   Measurer
	ops []func(dst Canvas, dx, dy float64)
}

// NewRecorder returns a recorder measuring against m.
func NewRecorder(m Measurer) *Recorder {
	return &Recorder{m: m}
}

// Replay paints every recorded operation onto dst translated by (dx, dy).
// A recorder records one card face at origin; export replays it wherever
// the face lands on a sheet.
func (r *Recorder) Replay(dst Canvas, dx, dy float64) {
	for _, op := range r.ops {
		op(dst, dx, dy)
	}
}

// Empty reports whether nothing has been recorded.
func (r *Recorder) Empty() bool { return len(r.ops) == 0 }

func (r *Recorder) SetFont(family, variant string, sizePt float64) {
	r.m.SetFont(family, variant, sizePt)
	r.ops = append(r.ops, func(dst Canvas, _, _ float64) {
		dst.SetFont(family, variant, sizePt)
	})
}

func (r *Recorder) TextWidth(s string) float64 {
	return r.m.TextWidth(s)
}

func (r *Recorder) SetFillColor(hex string) {
	r.ops = append(r.ops, func(dst Canvas, _, _ float64) {
		dst.SetFillColor(hex)
	})
}

func (r *Recorder) SetTextColor(hex string) {
	r.ops = append(r.ops, func(dst Canvas, _, _ float64) {
		dst.SetTextColor(hex)
	})
}

func (r *Recorder) Text(x, y float64, s string) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.Text(x+dx, y+dy, s)
	})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.FillRect(x+dx, y+dy, w, h)
	})
}

func (r *Recorder) FillRoundedRect(x, y, w, h, rad float64) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.FillRoundedRect(x+dx, y+dy, w, h, rad)
	})
}

func (r *Recorder) ClipRoundedRect(x, y, w, h, rad float64) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.ClipRoundedRect(x+dx, y+dy, w, h, rad)
	})
}

func (r *Recorder) ClipEnd() {
	r.ops = append(r.ops, func(dst Canvas, _, _ float64) {
		dst.ClipEnd()
	})
}

func (r *Recorder) Image(ref ImageRef, x, y, w, h float64) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.Image(ref, x+dx, y+dy, w, h)
	})
}

func (r *Recorder) RotateBegin(angle, x, y float64) {
	r.ops = append(r.ops, func(dst Canvas, dx, dy float64) {
		dst.RotateBegin(angle, x+dx, y+dy)
	})
}

func (r *Recorder) RotateEnd() {
	r.ops = append(r.ops, func(dst Canvas, _, _ float64) {
		dst.RotateEnd()
	})
}
