// Package generate implements the deck processing subcommands.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cardgen/common"
	"cardgen/deck"
	"cardgen/export"
	"cardgen/layout"
	"cardgen/misc"
	"cardgen/render"
	"cardgen/state"
	"cardgen/utils/debug"
	"cardgen/utils/images"
)

// Rasterization targets for the embedded SVG art, large enough for print
// resolution at card scale.
const (
	logoRasterWidth        = 840
	placeholderRasterWidth = 600
	backgroundRasterWidth  = 630
)

// Run is the generate subcommand: load a deck, lay every entity out on the
// smallest card that fits and write the resulting document.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("no deck file specified")
	}
	src := cmd.Args().Get(0)
	dstDir := cmd.Args().Get(1)
	if len(dstDir) == 0 {
		dstDir = "."
	}

	mode, err := common.ParseExportMode(cmd.String("export"))
	if err != nil {
		return fmt.Errorf("bad export mode: %w", err)
	}
	env.Export = mode

	fontsCfg := env.Cfg.Document.Fonts
	if cmd.IsSet("fonts") {
		fontsCfg.Set = cmd.String("fonts")
	}
	fonts, err := common.ParseFontSet(fontsCfg.Set)
	if err != nil {
		return fmt.Errorf("bad font set: %w", err)
	}
	env.Fonts = fonts

	cardCfg := env.Cfg.Document.Card
	if cmd.IsSet("bleed") {
		cardCfg.Bleed = cmd.Float("bleed")
	}
	env.Overwrite = cmd.Bool("overwrite")
	env.NoBackground = cmd.Bool("no-bg")
	if cmd.IsSet("bg") {
		if env.NoBackground {
			return errors.New("--bg and --no-bg are mutually exclusive")
		}
		cardCfg.BackgroundPath = cmd.String("bg")
	}

	d, err := deck.Load(src)
	if err != nil {
		return err
	}
	env.Log.Info("Deck loaded", zap.String("deck", d.Name), zap.Int("entities", len(d.Entities)))

	outName, err := export.OutputName(env.Cfg.Document.OutputNameTemplate, d.Name, env.Export)
	if err != nil {
		return err
	}
	outPath := filepath.Join(dstDir, outName)
	if _, err := os.Stat(outPath); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", outPath)
	}

	pdf := render.NewPDF(d.Name, misc.GetAppName()+" "+misc.GetVersion())
	sheet, err := render.NewSheet(pdf, env.Fonts, fontsCfg, cardCfg.BorderColor)
	if err != nil {
		return err
	}

	assets, err := prepareAssets(env, cardCfg.BorderColor, cardCfg.BackgroundPath)
	if err != nil {
		return err
	}

	engine := &layout.Engine{
		Log:      env.Log,
		Sheet:    sheet,
		Measurer: pdf,
		Bleed:    cardCfg.Bleed,
		Assets:   assets,
	}
	if env.Rpt != nil {
		engine.Trace = debug.NewTreeWriter()
	}

	cards, skipped, err := renderDeck(engine, d.Entities)
	if err != nil {
		return err
	}
	if engine.Trace != nil {
		env.Rpt.StoreData(fmt.Sprintf("layout/%s.txt", d.Name), []byte(engine.Trace.String()))
	}
	if len(cards) == 0 {
		return fmt.Errorf("no cards could be laid out from deck '%s'", d.Name)
	}

	xp := &export.Exporter{Log: env.Log, PDF: pdf}
	switch env.Export {
	case common.ExportModeGrid:
		grid := env.Cfg.Document.Grid
		if cards, err = padForGrid(engine, cards, grid.Rows*grid.Columns); err != nil {
			return err
		}
		xp.Grid(cards, grid.Rows, grid.Columns)
	default:
		xp.Singles(cards)
	}

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := pdf.WriteFile(outPath); err != nil {
		return err
	}
	env.Log.Info("Document written",
		zap.String("destination", outPath),
		zap.Int("cards", len(cards)),
		zap.Int("skipped", skipped))
	return nil
}

// renderDeck lays out every entity in deck order. An entity that overflows
// the largest card is skipped with a warning, any other failure aborts.
func renderDeck(engine *layout.Engine, entities []*deck.Entity) ([]*layout.Card, int, error) {
	cards := make([]*layout.Card, 0, len(entities))
	skipped := 0
	for _, e := range entities {
		card, err := engine.Render(e)
		if errors.Is(err, layout.ErrOverflow) {
			engine.Log.Warn("Could not fit card on any size, skipping", zap.String("title", e.Title))
			skipped++
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("unable to lay out '%s': %w", e.Title, err)
		}
		cards = append(cards, card)
	}
	return cards, skipped, nil
}

// padForGrid fills the last sheet up with blank cards so every cell gets
// cut guides.
func padForGrid(engine *layout.Engine, cards []*layout.Card, perPage int) ([]*layout.Card, error) {
	if perPage <= 0 {
		return cards, nil
	}
	for len(cards)%perPage != 0 {
		blank, err := engine.Render(deck.EmptyItem())
		if err != nil {
			return nil, fmt.Errorf("unable to lay out filler card: %w", err)
		}
		cards = append(cards, blank)
	}
	return cards, nil
}

// prepareAssets rasterizes the embedded SVG art and picks the parchment
// background: a configured image file when given, the embedded texture
// otherwise, nothing with --no-bg.
func prepareAssets(env *state.LocalEnv, borderColor, backgroundPath string) (layout.Assets, error) {
	assets := layout.Assets{
		BorderColor: borderColor,
		Placeholder: make(map[string]render.ImageRef),
	}

	logo, err := images.RasterizeSVGToImage(env.DefaultLogo, logoRasterWidth, logoRasterWidth*80/420)
	if err != nil {
		return assets, fmt.Errorf("unable to rasterize logo: %w", err)
	}
	assets.Logo = render.ImageRef{Name: "asset:logo", Image: logo}

	for kind, data := range env.DefaultPlaceholder {
		img, err := images.RasterizeSVGToImage(data, placeholderRasterWidth, placeholderRasterWidth)
		if err != nil {
			return assets, fmt.Errorf("unable to rasterize %s placeholder: %w", kind, err)
		}
		assets.Placeholder[kind.String()] = render.ImageRef{Name: "asset:placeholder-" + kind.String(), Image: img}
	}

	switch {
	case env.NoBackground:
		// plain white card backs
	case len(backgroundPath) > 0:
		if _, err := images.ProbeFile(backgroundPath); err != nil {
			return assets, fmt.Errorf("unable to use card background: %w", err)
		}
		assets.Background = render.ImageRef{Name: backgroundPath, Path: backgroundPath}
	default:
		bg, err := images.RasterizeSVGToImage(env.DefaultBackground, backgroundRasterWidth, 0)
		if err != nil {
			return assets, fmt.Errorf("unable to rasterize background: %w", err)
		}
		assets.Background = render.ImageRef{Name: "asset:background", Image: bg}
	}
	return assets, nil
}
