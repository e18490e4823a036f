package render

import (
	"fmt"
	"path/filepath"

	"cardgen/common"
	"cardgen/config"
)

// FontScale converts the nominal glyph heights the card design is
// specified in into actual font sizes.
const FontScale = 1.41

// PtPerMM converts millimeters to points.
const PtPerMM = 72.0 / 25.4

// Style is one named entry of the card style sheet.
type Style struct {
	Family  string
	Variant string // "", "B", "I" or "BI"
	// SizeMM is the font size expressed in millimeters (already scaled by
	// FontScale). LeadingMM is the baseline-to-baseline advance.
	SizeMM        float64
	LeadingMM     float64
	SpaceBeforeMM float64
	Center        bool
	Color         string
	BackColor     string // non-empty draws a filled band behind the text
	Uppercase     bool
}

// SizePt returns the font size in points for Canvas.SetFont.
func (s Style) SizePt() float64 {
	return s.SizeMM * PtPerMM
}

// Apply makes the style current on the canvas.
func (s Style) Apply(c Canvas) {
	c.SetFont(s.Family, s.Variant, s.SizePt())
	color := s.Color
	if len(color) == 0 {
		color = "#000000"
	}
	c.SetTextColor(color)
}

// Bold and Italic derive inline variants of the style.
func (s Style) Bold() Style {
	switch s.Variant {
	case "", "B":
		s.Variant = "B"
	default:
		s.Variant = "BI"
	}
	return s
}

func (s Style) Italic() Style {
	switch s.Variant {
	case "", "I":
		s.Variant = "I"
	default:
		s.Variant = "BI"
	}
	return s
}

// Sheet is the card style sheet: a fixed set of named styles over two
// registered font families (a display serif and a body face).
type Sheet struct {
	styles map[string]Style
}

// NewSheet registers the requested font set on the backend and builds the
// style sheet. The accurate set expects TTF files from configuration and
// failing to load them aborts the run before any rendering.
func NewSheet(pdf *PDF, set common.FontSet, cfg config.FontsConfig, borderColor string) (*Sheet, error) {
	serif, text := "Times", "Helvetica"

	if set == common.FontSetAccurate {
		serif, text = "CardSerif", "CardText"
		for _, face := range []struct {
			family string
			files  config.FontFaceConfig
		}{
			{serif, cfg.Serif},
			{text, cfg.Text},
		} {
			for variant, file := range map[string]string{
				"":   face.files.Regular,
				"B":  face.files.Bold,
				"I":  face.files.Italic,
				"BI": face.files.BoldItalic,
			} {
				if len(file) == 0 {
					return nil, fmt.Errorf("accurate font set requested but %s/%q file is not configured", face.family, variant)
				}
				if len(cfg.Dir) > 0 && !filepath.IsAbs(file) {
					file = filepath.Join(cfg.Dir, file)
				}
				pdf.AddUTF8Font(face.family, variant, file)
			}
		}
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("failed to load accurate fonts: %w", err)
		}
	}

	mk := func(family, variant string, rawMM, spaceBefore float64) Style {
		size := rawMM * FontScale
		return Style{
			Family:        family,
			Variant:       variant,
			SizeMM:        size,
			LeadingMM:     size + 0.5,
			SpaceBeforeMM: spaceBefore,
		}
	}

	title := mk(serif, "", 2.5, 0)
	title.Center = true
	title.Uppercase = true

	subtitle := mk(text, "", 1.5, 0.5)
	subtitle.Center = true
	subtitle.Color = "#ffffff"
	subtitle.BackColor = borderColor

	body := mk(text, "", 1.5, 1)

	legendary := body
	legendary.SpaceBeforeMM = 0

	modifier := mk(text, "", 1.5, 0)
	modifier.Center = true

	modifierTitle := mk(serif, "", 1.5, 0)
	modifierTitle.Center = true

	actionTitle := mk(serif, "", 1.5, 1)

	artist := mk(text, "", 1.5, 0)
	artist.Color = "#ffffff"

	challenge := mk(serif, "", 2.25, 0)
	challenge.Color = "#ffffff"

	category := mk(serif, "", 2.25, 0)
	category.Color = "#ffffff"

	subcategory := mk(serif, "", 1.5, 0)
	subcategory.Color = "#ffffff"

	return &Sheet{styles: map[string]Style{
		"title":             title,
		"subtitle":          subtitle,
		"text":              body,
		"legendary_action":  legendary,
		"modifier":          modifier,
		"modifier_title":    modifierTitle,
		"action_title":      actionTitle,
		"artist":            artist,
		"challenge":         challenge,
		"category":          category,
		"subcategory":       subcategory,
	}}, nil
}

// Style returns the named style. Unknown names are programmer errors.
func (s *Sheet) Style(name string) Style {
	st, ok := s.styles[name]
	if !ok {
		panic(fmt.Sprintf("unknown style %q", name))
	}
	return st
}
