package layout

import (
	"strings"
	"unicode"

	"cardgen/render"
)

// Block is one unit of renderable card content. Blocks are measured
// before they are placed: Wrap computes the height required at the given
// width and caches the line layout DrawOn paints from.
type Block interface {
	// Wrap measures the block for the given width and returns its height
	// in millimeters.
	Wrap(m render.Measurer, width float64) float64
	// SpaceBefore is vertical space inserted before the block unless it
	// lands at the top of a region.
	SpaceBefore() float64
	// DrawOn paints the block with its top-left corner at (x, y). Wrap
	// must have been called for the same width first.
	DrawOn(c render.Canvas, x, y float64)
}

// Splittable blocks can be broken at a region boundary when the flow
// engine runs in split mode.
type Splittable interface {
	Block
	// Split breaks the block so that fit occupies at most height. ok is
	// false when no usable prefix fits.
	Split(m render.Measurer, width, height float64) (fit, rest Block, ok bool)
}

// frag is a run of one word sharing a single style.
type frag struct {
	text  string
	style render.Style
	width float64
}

// word is an unbreakable token, possibly styled in parts.
type word struct {
	frags []frag
	brk   bool // explicit line break token
	width float64
}

type line struct {
	words []word
	width float64
	brk   bool // ended at an explicit break token
}

// Paragraph is styled rich text flowed into lines at the wrap width.
type Paragraph struct {
	style render.Style

	tokens   []word
	measured bool

	lines      []line
	wrappedFor float64
	spaceW     float64
	height     float64
}

// NewParagraph parses the minimal inline markup into a paragraph with the
// given base style.
func NewParagraph(markup string, style render.Style) *Paragraph {
	p := &Paragraph{style: style}
	p.tokenize(ParseMarkup(markup))
	return p
}

func (p *Paragraph) SpaceBefore() float64 { return p.style.SpaceBeforeMM }

// Leading returns the baseline-to-baseline advance of the paragraph.
func (p *Paragraph) Leading() float64 { return p.style.LeadingMM }

func (p *Paragraph) spanStyle(sp Span) render.Style {
	st := p.style
	if sp.Bold {
		st = st.Bold()
	}
	if sp.Italic {
		st = st.Italic()
	}
	return st
}

// tokenize splits spans into unbreakable words. Adjacent spans with no
// whitespace between them merge into one word ("<i><b>Bite.</b></i>"
// parses as two nested spans forming a single token).
func (p *Paragraph) tokenize(spans []Span) {
	wordOpen := false
	for _, sp := range spans {
		if sp.Break {
			p.tokens = append(p.tokens, word{brk: true})
			wordOpen = false
			continue
		}
		text := sp.Text
		if p.style.Uppercase {
			text = strings.ToUpper(text)
		}
		startsWS := len(text) > 0 && unicode.IsSpace(rune(text[0]))
		endsWS := len(text) > 0 && unicode.IsSpace(rune(text[len(text)-1]))
		parts := strings.Fields(text)
		if len(parts) == 0 {
			wordOpen = false
			continue
		}
		st := p.spanStyle(sp)
		for i, part := range parts {
			f := frag{text: part, style: st}
			if i == 0 && wordOpen && !startsWS {
				last := &p.tokens[len(p.tokens)-1]
				last.frags = append(last.frags, f)
				continue
			}
			p.tokens = append(p.tokens, word{frags: []frag{f}})
		}
		wordOpen = !endsWS
	}
}

func (p *Paragraph) measure(m render.Measurer) {
	if p.measured {
		return
	}
	for ti := range p.tokens {
		t := &p.tokens[ti]
		t.width = 0
		for fi := range t.frags {
			f := &t.frags[fi]
			m.SetFont(f.style.Family, f.style.Variant, f.style.SizePt())
			f.width = m.TextWidth(f.text)
			t.width += f.width
		}
	}
	m.SetFont(p.style.Family, p.style.Variant, p.style.SizePt())
	p.spaceW = m.TextWidth(" ")
	p.measured = true
}

func (p *Paragraph) Wrap(m render.Measurer, width float64) float64 {
	if p.lines != nil && p.wrappedFor == width {
		return p.height
	}
	p.measure(m)

	p.lines = []line{}
	cur := line{}
	flush := func() {
		p.lines = append(p.lines, cur)
		cur = line{}
	}
	for _, t := range p.tokens {
		if t.brk {
			cur.brk = true
			flush()
			continue
		}
		need := t.width
		if len(cur.words) > 0 {
			need += p.spaceW
		}
		if len(cur.words) > 0 && cur.width+need > width+heightEpsilon {
			flush()
			need = t.width
		}
		cur.words = append(cur.words, t)
		cur.width += need
	}
	if len(cur.words) > 0 {
		flush()
	}

	p.wrappedFor = width
	p.height = float64(len(p.lines)) * p.style.LeadingMM
	return p.height
}

func (p *Paragraph) DrawOn(c render.Canvas, x, y float64) {
	if len(p.style.BackColor) > 0 {
		c.SetFillColor(p.style.BackColor)
		c.FillRect(x, y, p.wrappedFor, p.height)
	}
	for li, ln := range p.lines {
		baseline := y + float64(li)*p.style.LeadingMM + p.style.SizeMM
		cx := x
		if p.style.Center {
			cx = x + (p.wrappedFor-ln.width)/2
		}
		for _, w := range ln.words {
			for _, f := range w.frags {
				f.style.Apply(c)
				c.Text(cx, baseline, f.text)
				cx += f.width
			}
			cx += p.spaceW
		}
	}
}

// Split breaks the paragraph at line granularity. At least one line must
// fit for the split to be usable.
func (p *Paragraph) Split(m render.Measurer, width, height float64) (Block, Block, bool) {
	p.Wrap(m, width)
	n := int((height + heightEpsilon) / p.style.LeadingMM)
	if n < 1 || n >= len(p.lines) {
		return nil, nil, false
	}

	fit := &Paragraph{
		style:      p.style,
		measured:   true,
		spaceW:     p.spaceW,
		lines:      p.lines[:n],
		wrappedFor: width,
		height:     float64(n) * p.style.LeadingMM,
	}
	restStyle := p.style
	restStyle.SpaceBeforeMM = 0
	rest := &Paragraph{
		style:    restStyle,
		measured: true,
		spaceW:   p.spaceW,
	}
	for _, ln := range p.lines[n:] {
		rest.tokens = append(rest.tokens, ln.words...)
		if ln.brk {
			// lines cut by an explicit break stay hard-broken when the
			// residual re-wraps
			rest.tokens = append(rest.tokens, word{brk: true})
		}
	}
	return fit, rest, true
}

// Table lays cells out in equal-width columns, rows sized to the tallest
// cell. Used for the AC/HP row and the six-ability row, never split.
type Table struct {
	rows        [][]*Paragraph
	spaceBefore float64

	colW       float64
	rowHeights []float64
	height     float64
}

func NewTable(rows [][]*Paragraph, spaceBefore float64) *Table {
	return &Table{rows: rows, spaceBefore: spaceBefore}
}

func (t *Table) SpaceBefore() float64 { return t.spaceBefore }

func (t *Table) Wrap(m render.Measurer, width float64) float64 {
	cols := 0
	for _, row := range t.rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return 0
	}
	t.colW = width / float64(cols)
	t.rowHeights = t.rowHeights[:0]
	t.height = 0
	for _, row := range t.rows {
		rh := 0.0
		for _, cell := range row {
			rh = max(rh, cell.Wrap(m, t.colW))
		}
		t.rowHeights = append(t.rowHeights, rh)
		t.height += rh
	}
	return t.height
}

func (t *Table) DrawOn(c render.Canvas, x, y float64) {
	cy := y
	for ri, row := range t.rows {
		for ci, cell := range row {
			cell.DrawOn(c, x+float64(ci)*t.colW, cy)
		}
		cy += t.rowHeights[ri]
	}
}

// Divider is a thin rule between card sections. The flow engine may
// suppress it entirely, see suppressDivider.
type Divider struct {
	Width   float64
	XOffset float64
	Color   string

	lineHeight float64
	spacing    float64
}

func NewDivider(width, xoffset float64, color string) *Divider {
	return &Divider{
		Width:      width,
		XOffset:    xoffset,
		Color:      color,
		lineHeight: 0.25,
		spacing:    1.0,
	}
}

func (d *Divider) SpaceBefore() float64 { return 0 }

func (d *Divider) Wrap(render.Measurer, float64) float64 {
	return d.lineHeight + d.spacing
}

func (d *Divider) DrawOn(c render.Canvas, x, y float64) {
	c.SetFillColor(d.Color)
	c.FillRect(x+d.XOffset, y+d.spacing, d.Width, d.lineHeight)
}

// Spacer is fixed blank vertical space.
type Spacer struct {
	W, H float64
}

func NewSpacer(w, h float64) *Spacer { return &Spacer{W: w, H: h} }

func (s *Spacer) SpaceBefore() float64                  { return 0 }
func (s *Spacer) Wrap(render.Measurer, float64) float64 { return s.H }
func (s *Spacer) DrawOn(render.Canvas, float64, float64) {}

// KeepTogether clusters a section header with its first body block so a
// region never ends with an orphaned header. Normal flow treats it as one
// unit, split mode may still break it at a region boundary.
type KeepTogether struct {
	children []Block
	childH   []float64
	height   float64
}

func NewKeepTogether(children ...Block) *KeepTogether {
	return &KeepTogether{children: children}
}

func (k *KeepTogether) SpaceBefore() float64 { return 0 }

func (k *KeepTogether) Wrap(m render.Measurer, width float64) float64 {
	k.childH = k.childH[:0]
	k.height = 0
	for _, ch := range k.children {
		h := ch.Wrap(m, width)
		k.childH = append(k.childH, h)
		k.height += ch.SpaceBefore() + h
	}
	return k.height
}

func (k *KeepTogether) DrawOn(c render.Canvas, x, y float64) {
	cy := y
	for i, ch := range k.children {
		cy += ch.SpaceBefore()
		ch.DrawOn(c, x, cy)
		cy += k.childH[i]
	}
}

func (k *KeepTogether) Split(m render.Measurer, width, height float64) (Block, Block, bool) {
	k.Wrap(m, width)

	used := 0.0
	var fitted []Block
	var rest []Block
	for i, ch := range k.children {
		need := ch.SpaceBefore() + k.childH[i]
		if used+need <= height+heightEpsilon {
			fitted = append(fitted, ch)
			used += need
			continue
		}
		if sp, ok := ch.(Splittable); ok {
			if f, r, ok := sp.Split(m, width, height-used-ch.SpaceBefore()); ok {
				fitted = append(fitted, f)
				rest = append(rest, r)
			} else {
				rest = append(rest, ch)
			}
		} else {
			rest = append(rest, ch)
		}
		rest = append(rest, k.children[i+1:]...)
		break
	}
	// The leading child is the section header. Committing it without at
	// least part of its body defeats the whole cluster.
	if len(fitted) < 2 || len(rest) == 0 {
		return nil, nil, false
	}
	var restBlock Block
	if len(rest) == 1 {
		restBlock = rest[0]
	} else {
		restBlock = NewKeepTogether(rest...)
	}
	return NewKeepTogether(fitted...), restBlock, true
}
