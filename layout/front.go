package layout

import (
	"fmt"

	"cardgen/deck"
	"cardgen/render"
	"cardgen/utils/images"
)

// Assets are the shared drawing resources every card face uses.
type Assets struct {
	BorderColor string
	// Background is the parchment texture, zero value disables it.
	Background render.ImageRef
	Logo       render.ImageRef
	// Placeholder illustrations by entity kind, used when a record carries
	// no image reference.
	Placeholder map[string]render.ImageRef
}

func imageSize(ref render.ImageRef) images.Size {
	if ref.Image == nil {
		return images.Size{}
	}
	b := ref.Image.Bounds()
	return images.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// illustration resolves the front image for an entity: the referenced file
// or the embedded placeholder for its kind.
func (a Assets) illustration(e *deck.Entity) (render.ImageRef, images.Size, error) {
	if path := e.ResolvedImage(); len(path) > 0 {
		size, err := images.ProbeFile(path)
		if err != nil {
			return render.ImageRef{}, images.Size{}, err
		}
		return render.ImageRef{Name: path, Path: path}, size, nil
	}
	ref, ok := a.Placeholder[e.Kind().String()]
	if !ok || ref.Image == nil {
		return render.ImageRef{}, images.Size{}, fmt.Errorf("no placeholder illustration for %s cards", e.Kind())
	}
	return ref, imageSize(ref), nil
}

// drawFront paints the complete front face at origin: colored border,
// background window, logo, the aspect-fitted illustration with the title
// beneath it and the artist credit. A portrait card with a landscape
// illustration is turned 90 degrees (and vice versa) on variants that
// allow it.
func drawFront(c render.Canvas, v Variant, e *deck.Entity, sheet *render.Sheet, assets Assets) error {
	ill, illSize, err := assets.illustration(e)
	if err != nil {
		return err
	}

	bf := v.FrontBorder
	rotated := v.rotatableFront && illSize.Landscape() != (v.Width > v.Height)

	c.SetFillColor(assets.BorderColor)
	c.FillRoundedRect(0, 0, v.Width, v.Height, max(CardCornerDiameter-v.Bleed, 0))

	window := Rect{X: bf.Left, Y: bf.Top, W: v.Width - bf.Left - bf.Right, H: v.Height - bf.Top - bf.Bottom}
	if rotated {
		window = Rect{X: bf.Bottom, Y: bf.Right, W: v.Width - bf.Top - bf.Bottom, H: v.Height - bf.Right - bf.Left}
	}
	c.SetFillColor("#ffffff")
	c.FillRoundedRect(window.X, window.Y, window.W, window.H, BackgroundCornerDiameter)
	if assets.Background.Image != nil || len(assets.Background.Path) > 0 {
		c.ClipRoundedRect(window.X, window.Y, window.W, window.H, BackgroundCornerDiameter)
		c.Image(assets.Background, 0, 0, v.Width, v.Height)
		c.ClipEnd()
	}

	w, h := v.Width, v.Height
	if rotated {
		c.RotateBegin(90, v.Height/2, v.Height/2)
		w, h = h, w
	}

	if logoSize := imageSize(assets.Logo); logoSize.Width > 0 {
		logoH := LogoWidth * logoSize.Height / logoSize.Width
		logoTop := v.Bleed + (bf.Top-v.Bleed-logoH)/2
		c.Image(assets.Logo, (w-LogoWidth)/2, logoTop, LogoWidth, logoH)
	}

	frame := v.FrontFrame(w, h)
	contentW := frame.W - 2*TextMargin

	title := frontTitle(e.Title, sheet, v.Size)
	titleH := title.Wrap(c, contentW) + TextMargin
	avail := frame.H - titleH - 2*TextMargin
	fitted := images.FitWithin(illSize, images.Size{Width: frame.W, Height: avail})

	space := frame.H - (fitted.Height + titleH)
	y := frame.Y + TextMargin
	if space > 0 {
		y += space / 2
	}
	c.Image(ill, frame.X+(frame.W-fitted.Width)/2, y, fitted.Width, fitted.Height)
	y += fitted.Height
	if space > 0 {
		y += space / 2
	}
	title.DrawOn(c, frame.X+TextMargin, y)

	if len(e.Artist) > 0 {
		artist := sheet.Style("artist")
		artist.Apply(c)
		credit := fmt.Sprintf("Artist: %s", e.Artist)
		baseline := h - bf.Bottom + artist.SizeMM/render.FontScale + 1
		c.Text((w-c.TextWidth(credit))/2, baseline, credit)
	}

	if rotated {
		c.RotateEnd()
	}
	return nil
}
