package layout

import (
	"errors"

	"go.uber.org/zap"

	"cardgen/common"
	"cardgen/deck"
	"cardgen/render"
	"cardgen/utils/debug"
)

// Engine renders entities into card face recordings, escalating the card
// size until the content fits.
type Engine struct {
	Log      *zap.Logger
	Sheet    *render.Sheet
	Measurer render.Measurer
	Bleed    float64
	Assets   Assets

	// Trace, when set, receives a line per layout attempt for the debug
	// report.
	Trace *debug.TreeWriter
}

// Card is one successfully laid out entity: both faces recorded at origin
// plus the geometry they were laid out for.
type Card struct {
	Entity *deck.Entity
	Size   common.CardSize
	Width  float64
	Height float64
	Front  *render.Recorder
	Back   *render.Recorder
}

// Recording returns the requested face. The face is always named
// explicitly, there is no draw-order boolean anywhere.
func (c *Card) Recording(face common.Face) *render.Recorder {
	if face == common.FaceBack {
		return c.Back
	}
	return c.Front
}

// Render lays the entity out on the smallest card size that fits. Every
// attempt starts from scratch on a fresh recording, a failed attempt
// leaves no trace in the output. Each size is tried without splitting
// first, then with block splitting across regions. Returns ErrOverflow
// when even the largest variant cannot hold the content.
func (g *Engine) Render(e *deck.Entity) (*Card, error) {
	if g.Trace != nil {
		g.Trace.TextBlock(0, "entity", e.Title)
	}
	for _, size := range Ladder(e.Kind()) {
		for _, split := range []bool{false, true} {
			v := NewVariant(size, g.Bleed)

			back := render.NewRecorder(g.Measurer)
			err := g.renderBack(back, v, e, split)
			if errors.Is(err, ErrOverflow) {
				if g.Trace != nil {
					g.Trace.Line(1, "%s split=%v: overflow", size, split)
				}
				g.Log.Debug("layout attempt overflowed",
					zap.String("title", e.Title),
					zap.Stringer("size", size),
					zap.Bool("split", split))
				continue
			}
			if err != nil {
				return nil, err
			}

			front := render.NewRecorder(g.Measurer)
			if err := drawFront(front, v, e, g.Sheet, g.Assets); err != nil {
				return nil, err
			}

			if g.Trace != nil {
				g.Trace.Line(1, "%s split=%v: ok", size, split)
			}
			g.Log.Debug("card laid out",
				zap.String("title", e.Title),
				zap.Stringer("size", size),
				zap.Bool("split", split))

			return &Card{
				Entity: e,
				Size:   size,
				Width:  v.Width,
				Height: v.Height,
				Front:  front,
				Back:   back,
			}, nil
		}
	}
	return nil, ErrOverflow
}

// renderBack paints the back chrome (border, parchment window, column
// rule, footer) and flows the content blocks through the variant's
// regions.
func (g *Engine) renderBack(c render.Canvas, v Variant, e *deck.Entity, split bool) error {
	bb := v.BackBorder

	c.SetFillColor(g.Assets.BorderColor)
	c.FillRoundedRect(0, 0, v.Width, v.Height, max(CardCornerDiameter-v.Bleed, 0))

	window := Rect{X: bb.Left, Y: bb.Top, W: v.Width - bb.Left - bb.Right, H: v.Height - bb.Top - bb.Bottom}
	c.SetFillColor("#ffffff")
	c.FillRoundedRect(window.X, window.Y, window.W, window.H, BackgroundCornerDiameter)
	bg := g.Assets.Background
	if bg.Image != nil || len(bg.Path) > 0 {
		c.ClipRoundedRect(window.X, window.Y, window.W, window.H, BackgroundCornerDiameter)
		c.Image(bg, 0, 0, v.Width, v.Height)
		c.ClipEnd()
	}
	if rule, ok := v.ColumnRule(); ok {
		c.SetFillColor(g.Assets.BorderColor)
		c.FillRect(rule.X, rule.Y, rule.W, rule.H)
	}

	var blocks []Block
	switch e.Kind() {
	case common.EntityKindItem:
		drawItemFooter(c, v, e, g.Sheet)
		blocks = ItemBlocks(e, g.Sheet, v)
	default:
		drawMonsterFooter(c, v, e, g.Sheet)
		blocks = MonsterBlocks(e, g.Sheet, v, g.Assets.BorderColor)
	}

	return Flow(c, blocks, v.BackRegions(), split)
}
