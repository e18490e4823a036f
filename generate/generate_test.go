package generate

import (
	"context"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"cardgen/common"
	"cardgen/config"
	"cardgen/deck"
	"cardgen/layout"
	"cardgen/render"
	"cardgen/state"
)

type stubMeasurer struct {
	sizePt float64
}

func (m *stubMeasurer) SetFont(_, _ string, sizePt float64) { m.sizePt = sizePt }
func (m *stubMeasurer) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * 0.55 * m.sizePt / render.PtPerMM
}

func testEngine(t *testing.T) *layout.Engine {
	t.Helper()
	sheet, err := render.NewSheet(nil, common.FontSetFree, config.FontsConfig{}, "#ec1923")
	if err != nil {
		t.Fatal(err)
	}
	ph := render.ImageRef{Name: "ph", Image: image.NewRGBA(image.Rect(0, 0, 100, 140))}
	return &layout.Engine{
		Log:      zaptest.NewLogger(t),
		Sheet:    sheet,
		Measurer: &stubMeasurer{},
		Assets: layout.Assets{
			BorderColor: "#ec1923",
			Placeholder: map[string]render.ImageRef{
				common.EntityKindMonster.String(): ph,
				common.EntityKindItem.String():    ph,
			},
		},
	}
}

func TestPadForGrid(t *testing.T) {
	engine := testEngine(t)

	card, err := engine.Render(deck.EmptyItem())
	if err != nil {
		t.Fatalf("unable to render filler: %v", err)
	}

	cards, err := padForGrid(engine, []*layout.Card{card}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 4 {
		t.Errorf("expected padding to a full sheet of 4, got %d", len(cards))
	}

	same, err := padForGrid(engine, cards, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(same) != 4 {
		t.Errorf("full sheets must not be padded further, got %d", len(same))
	}

	if got, _ := padForGrid(engine, cards, 0); len(got) != len(cards) {
		t.Error("degenerate grid must leave the cards alone")
	}
}

func TestPrepareAssetsBackground(t *testing.T) {
	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))

	assets, err := prepareAssets(env, "#ec1923", "")
	if err != nil {
		t.Fatal(err)
	}
	if assets.Background.Image == nil {
		t.Error("builtin parchment texture must be used when nothing is configured")
	}

	env.NoBackground = true
	assets, err = prepareAssets(env, "#ec1923", "")
	if err != nil {
		t.Fatal(err)
	}
	if assets.Background.Image != nil || len(assets.Background.Path) > 0 {
		t.Error("no-bg must leave the card backs plain")
	}

	env.NoBackground = false
	if _, err := prepareAssets(env, "#ec1923", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("a configured but unusable background file must fail the run")
	}
}

func TestRenderDeckSkipsOverflow(t *testing.T) {
	engine := testEngine(t)

	huge := deck.EmptyItem()
	huge.Title = "Endless Scroll"
	huge.Description = deck.TextDescription(strings.Repeat("words and more words ", 400))

	cards, skipped, err := renderDeck(engine, []*deck.Entity{deck.EmptyItem(), huge})
	if err != nil {
		t.Fatalf("overflow must not abort the run: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(cards) != 1 {
		t.Errorf("cards = %d, want 1", len(cards))
	}
}
