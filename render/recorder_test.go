package render

import (
	"math"
	"testing"
)

// captureCanvas records primitive calls for assertions.
type captureCanvas struct {
	fonts []float64
	texts []struct {
		x, y float64
		s    string
	}
	rects [][4]float64
}

func (c *captureCanvas) SetFont(_, _ string, sizePt float64) { c.fonts = append(c.fonts, sizePt) }
func (c *captureCanvas) TextWidth(s string) float64          { return float64(len(s)) }
func (c *captureCanvas) SetFillColor(string)                 {}
func (c *captureCanvas) SetTextColor(string)                 {}
func (c *captureCanvas) Text(x, y float64, s string) {
	c.texts = append(c.texts, struct {
		x, y float64
		s    string
	}{x, y, s})
}
func (c *captureCanvas) FillRect(x, y, w, h float64) { c.rects = append(c.rects, [4]float64{x, y, w, h}) }
func (c *captureCanvas) FillRoundedRect(x, y, w, h, _ float64) {
	c.rects = append(c.rects, [4]float64{x, y, w, h})
}
func (c *captureCanvas) ClipRoundedRect(float64, float64, float64, float64, float64) {}
func (c *captureCanvas) ClipEnd()                                                    {}
func (c *captureCanvas) Image(ImageRef, float64, float64, float64, float64)          {}
func (c *captureCanvas) RotateBegin(float64, float64, float64)                       {}
func (c *captureCanvas) RotateEnd()                                                  {}

func TestRecorderReplayTranslates(t *testing.T) {
	rec := NewRecorder(&captureCanvas{})
	rec.Text(10, 20, "hello")
	rec.FillRect(1, 2, 3, 4)

	dst := &captureCanvas{}
	rec.Replay(dst, 100, 200)

	if len(dst.texts) != 1 || dst.texts[0].x != 110 || dst.texts[0].y != 220 {
		t.Errorf("text not translated: %+v", dst.texts)
	}
	if len(dst.rects) != 1 || dst.rects[0] != [4]float64{101, 202, 3, 4} {
		t.Errorf("rect not translated: %+v", dst.rects)
	}
}

func TestRecorderReplayIsRepeatable(t *testing.T) {
	rec := NewRecorder(&captureCanvas{})
	rec.FillRect(0, 0, 1, 1)

	dst := &captureCanvas{}
	rec.Replay(dst, 0, 0)
	rec.Replay(dst, 63, 0)

	if len(dst.rects) != 2 {
		t.Fatalf("expected two replays, got %d", len(dst.rects))
	}
	if dst.rects[1][0] != 63 {
		t.Errorf("second replay not offset: %+v", dst.rects[1])
	}
}

func TestRecorderMeasuresLive(t *testing.T) {
	live := &captureCanvas{}
	rec := NewRecorder(live)

	rec.SetFont("Times", "", 12)
	if len(live.fonts) != 1 || live.fonts[0] != 12 {
		t.Error("font selection must reach the live measurer immediately")
	}
	if w := rec.TextWidth("abcd"); w != 4 {
		t.Errorf("measurement must delegate to the live backend, got %v", w)
	}
	if rec.Empty() {
		t.Error("the font op should have been recorded for replay")
	}
}

func TestStyleVariants(t *testing.T) {
	s := Style{Family: "Times", SizeMM: 2}

	if v := s.Bold().Variant; v != "B" {
		t.Errorf("bold variant = %q", v)
	}
	if v := s.Italic().Variant; v != "I" {
		t.Errorf("italic variant = %q", v)
	}
	if v := s.Bold().Italic().Variant; v != "BI" {
		t.Errorf("bold italic variant = %q", v)
	}
	if v := s.Italic().Bold().Variant; v != "BI" {
		t.Errorf("italic bold variant = %q", v)
	}

	if got, want := s.SizePt(), 2*PtPerMM; math.Abs(got-want) > 1e-12 {
		t.Errorf("SizePt() = %v, want %v", got, want)
	}
}
