package layout

import (
	"math"
	"strings"
	"testing"
)

func TestParagraphWrap(t *testing.T) {
	c := testCanvas()
	p := NewParagraph(strings.Repeat("word ", 20), testStyle())

	width := 30.0
	h := p.Wrap(c, width)

	if len(p.lines) < 2 {
		t.Fatalf("expected text to wrap into multiple lines, got %d", len(p.lines))
	}
	if want := float64(len(p.lines)) * 2.5; math.Abs(h-want) > 1e-9 {
		t.Errorf("height = %v, want %v", h, want)
	}
	for i, ln := range p.lines {
		if ln.width > width+heightEpsilon {
			t.Errorf("line %d width %v exceeds wrap width %v", i, ln.width, width)
		}
	}
	// caching: same width returns same result without rewrapping
	if h2 := p.Wrap(c, width); h2 != h {
		t.Errorf("rewrap changed height: %v != %v", h2, h)
	}
}

func TestParagraphExplicitBreak(t *testing.T) {
	c := testCanvas()
	p := NewParagraph("one<br/>two", testStyle())
	p.Wrap(c, 100)
	if len(p.lines) != 2 {
		t.Fatalf("expected 2 lines around <br/>, got %d", len(p.lines))
	}
}

func TestParagraphStyledSpans(t *testing.T) {
	c := testCanvas()
	p := NewParagraph("<i><b>Bite.</b></i> Melee attack", testStyle())
	p.Wrap(c, 100)

	if len(p.tokens) != 3 {
		t.Fatalf("expected 3 word tokens, got %d", len(p.tokens))
	}
	first := p.tokens[0]
	if len(first.frags) != 1 || first.frags[0].style.Variant != "BI" {
		t.Errorf("heading token should carry bold italic style, got %+v", first.frags)
	}
	if p.tokens[1].frags[0].style.Variant != "" {
		t.Errorf("body token should be unstyled")
	}
}

func TestParagraphUppercase(t *testing.T) {
	style := testStyle()
	style.Uppercase = true
	p := NewParagraph("Ancient Dragon", style)
	if got := p.tokens[0].frags[0].text; got != "ANCIENT" {
		t.Errorf("uppercase transform not applied: %q", got)
	}
}

func TestParagraphSplit(t *testing.T) {
	c := testCanvas()
	style := testStyle()
	style.SpaceBeforeMM = 1
	p := NewParagraph(strings.Repeat("word ", 40), style)
	p.Wrap(c, 30)

	total := len(p.lines)
	if total < 4 {
		t.Fatalf("need at least 4 lines for a split test, got %d", total)
	}

	fit, rest, ok := p.Split(c, 30, 2*2.5+0.1)
	if !ok {
		t.Fatal("split should succeed")
	}
	if h := fit.Wrap(c, 30); math.Abs(h-5) > 1e-9 {
		t.Errorf("fitting fragment height = %v, want 5", h)
	}
	if rest.SpaceBefore() != 0 {
		t.Errorf("residual fragment must not re-apply space before")
	}
	rp := rest.(*Paragraph)
	if rh := rp.Wrap(c, 30); math.Abs(rh-float64(total-2)*2.5) > 1e-9 {
		t.Errorf("residual height = %v, want %v", rh, float64(total-2)*2.5)
	}
}

func TestParagraphSplitNothingFits(t *testing.T) {
	c := testCanvas()
	p := NewParagraph(strings.Repeat("word ", 40), testStyle())
	p.Wrap(c, 30)
	if _, _, ok := p.Split(c, 30, 1.0); ok {
		t.Error("split should fail when not even one line fits")
	}
}

func TestParagraphSplitKeepsExplicitBreaks(t *testing.T) {
	c := testCanvas()
	p := NewParagraph("aa<br/>bb<br/>cc<br/>dd", testStyle())
	if h := p.Wrap(c, 100); math.Abs(h-10) > 1e-9 {
		t.Fatalf("expected 4 hard-broken lines, height %v", h)
	}

	fit, rest, ok := p.Split(c, 100, 5.0)
	if !ok {
		t.Fatal("split should succeed")
	}
	if h := fit.Wrap(c, 100); math.Abs(h-5) > 1e-9 {
		t.Errorf("fitting fragment height = %v, want 5", h)
	}
	// "cc" and "dd" must stay on separate lines even though both would
	// fit the wrap width
	if rh := rest.Wrap(c, 100); math.Abs(rh-5) > 1e-9 {
		t.Errorf("residual merged its hard-broken lines: height = %v, want 5", rh)
	}
}

func TestTableRowHeights(t *testing.T) {
	c := testCanvas()
	long := NewParagraph(strings.Repeat("stat ", 12), testStyle())
	short := NewParagraph("HP: 7", testStyle())
	tbl := NewTable([][]*Paragraph{{long, short}}, 1)

	h := tbl.Wrap(c, 60)
	if tbl.colW != 30 {
		t.Errorf("column width = %v, want 30", tbl.colW)
	}
	if h != long.height {
		t.Errorf("row height %v should follow the tallest cell %v", h, long.height)
	}
	if tbl.SpaceBefore() != 1 {
		t.Errorf("space before = %v", tbl.SpaceBefore())
	}
}

func TestDividerHeight(t *testing.T) {
	d := NewDivider(50, -TextMargin, "#ec1923")
	if h := d.Wrap(testCanvas(), 50); math.Abs(h-1.25) > 1e-9 {
		t.Errorf("divider height = %v, want 1.25", h)
	}
	if d.SpaceBefore() != 0 {
		t.Error("divider has no space before")
	}
}

func TestKeepTogetherWrap(t *testing.T) {
	c := testCanvas()
	header := NewParagraph("ACTIONS", testStyle())
	style := testStyle()
	style.SpaceBeforeMM = 1
	body := NewParagraph("Bite attack", style)

	kt := NewKeepTogether(header, body)
	h := kt.Wrap(c, 100)
	want := 2.5 + 1 + 2.5 // header + body space before + body
	if math.Abs(h-want) > 1e-9 {
		t.Errorf("keep-together height = %v, want %v", h, want)
	}
}

func TestKeepTogetherSplit(t *testing.T) {
	c := testCanvas()
	header := NewParagraph("ACTIONS", testStyle())
	body := NewParagraph(strings.Repeat("word ", 40), testStyle())
	kt := NewKeepTogether(header, body)
	kt.Wrap(c, 30)

	// room for the header and two body lines
	fit, rest, ok := kt.Split(c, 30, 2.5+2*2.5+0.1)
	if !ok {
		t.Fatal("split should succeed")
	}
	if h := fit.Wrap(c, 30); math.Abs(h-7.5) > 1e-9 {
		t.Errorf("fitting fragment height = %v, want 7.5", h)
	}
	if _, isKT := rest.(*Paragraph); !isKT {
		t.Errorf("residual of a two-child group should collapse to the split child, got %T", rest)
	}
}

func TestKeepTogetherSplitNeverOrphansHeader(t *testing.T) {
	c := testCanvas()
	header := NewParagraph("ACTIONS", testStyle())
	body := NewParagraph(strings.Repeat("word ", 40), testStyle())
	kt := NewKeepTogether(header, body)
	kt.Wrap(c, 30)

	// room for the header line only, no body line may follow it
	if _, _, ok := kt.Split(c, 30, 2.5); ok {
		t.Error("split must refuse to commit a header without any body line")
	}
}
