package layout

import (
	"fmt"

	"cardgen/deck"
	"cardgen/render"
)

// ItemBlocks builds the back-face block sequence for an item entity:
// title, subtitle, then the description as one paragraph or an ordered
// list of optionally headed entries.
func ItemBlocks(e *deck.Entity, sheet *render.Sheet, v Variant) []Block {
	text := sheet.Style("text")

	blocks := []Block{
		NewParagraph(e.Title, sheet.Style("title")),
		NewParagraph(e.Subtitle, sheet.Style("subtitle")),
		NewSpacer(1, 1),
	}

	if !e.Description.IsList() {
		return append(blocks, NewParagraph(e.Description.Text, text))
	}

	for _, entry := range e.Description.Entries {
		if entry.Pair == nil {
			blocks = append(blocks, NewParagraph(entry.Text, text))
			continue
		}
		markup := fmt.Sprintf("<i><b>%s.</b></i>", entry.Pair.Heading)
		if len(entry.Pair.Body) > 0 {
			markup += " " + entry.Pair.Body
		}
		blocks = append(blocks, NewParagraph(markup, text))
	}
	return blocks
}

// drawItemFooter paints the category (and optional subcategory) into the
// bottom border of the back face.
func drawItemFooter(c render.Canvas, v Variant, e *deck.Entity, sheet *render.Sheet) {
	category := sheet.Style("category")
	category.Apply(c)

	x := v.BackBorder.Left
	c.Text(x, v.Height-v.BackBorder.Top, e.Category)

	if len(e.Subcategory) > 0 {
		catW := c.TextWidth(e.Category)
		sub := sheet.Style("subcategory")
		sub.Apply(c)
		c.Text(x+catW+1, v.Height-(3.5+v.Bleed), fmt.Sprintf("(%s)", e.Subcategory))
	}
}
