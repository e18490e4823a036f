package layout

import (
	"fmt"

	"cardgen/common"
	"cardgen/deck"
	"cardgen/render"
)

// titleScale shrinks long titles on small cards so they stay on one line.
// Titles up to 20 characters render at full size.
func titleScale(title string, size common.CardSize) float64 {
	if size != common.CardSizeSmall {
		return 1.0
	}
	n := len([]rune(title))
	if n == 0 {
		return 1.0
	}
	return min(1.0, 20.0/float64(n))
}

// backTitle produces the title block pair for the back face: a compensating
// spacer plus the (possibly shrunk) title paragraph. The spacer keeps the
// total height identical whether or not the title was scaled, so the
// subtitle band lands on the same baseline across cards.
func backTitle(title string, sheet *render.Sheet, size common.CardSize) []Block {
	style := sheet.Style("title")
	scaled := style.SizeMM * titleScale(title, size)
	spacerH := (style.SizeMM - scaled + 0.5) / 2
	style.SizeMM = scaled
	style.LeadingMM = scaled + spacerH
	return []Block{
		NewSpacer(1, spacerH),
		NewParagraph(title, style),
	}
}

// frontTitle is the title paragraph drawn under the illustration, scaled
// the same way but without the compensating spacer.
func frontTitle(title string, sheet *render.Sheet, size common.CardSize) *Paragraph {
	style := sheet.Style("title")
	style.SizeMM *= titleScale(title, size)
	style.LeadingMM = style.SizeMM
	return NewParagraph(title, style)
}

func headedText(h, b string) string {
	return fmt.Sprintf("<i><b>%s.</b></i> %s", h, b)
}

// MonsterBlocks builds the back-face block sequence for a monster entity
// in stat-block order: title, subtitle, AC/Speed/HP row, ability modifier
// row, then the divided attribute, ability, action, reaction and legendary
// action sections. Each section header is kept together with its first
// entry.
func MonsterBlocks(e *deck.Entity, sheet *render.Sheet, v Variant, borderColor string) []Block {
	text := sheet.Style("text")
	lineW := v.BackRegions()[0].Width()
	divider := func() Block {
		return NewDivider(lineW, -TextMargin, borderColor)
	}

	blocks := backTitle(e.Title, sheet, v.Size)
	blocks = append(blocks, NewParagraph(e.Subtitle, sheet.Style("subtitle")))

	blocks = append(blocks, NewTable([][]*Paragraph{{
		NewParagraph(fmt.Sprintf("<b>AC:</b> %s<br/><b>Speed:</b> %s", e.ArmorClass.Plain(), e.Speed), text),
		NewParagraph(fmt.Sprintf("<b>HP:</b> %s", e.HitPoints.Plain()), text),
	}}, 1))

	names := []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}
	header := make([]*Paragraph, len(names))
	values := make([]*Paragraph, len(names))
	for i, score := range e.AbilityScores() {
		header[i] = NewParagraph(names[i], sheet.Style("modifier_title"))
		values[i] = NewParagraph(score.Display(), sheet.Style("modifier"))
	}
	blocks = append(blocks, NewTable([][]*Paragraph{header, values}, 1))

	blocks = append(blocks, divider())

	attrs := ""
	for _, a := range e.Attributes {
		attrs += fmt.Sprintf("<b>%s:</b> %s<br/>", a.Heading, a.Body)
	}
	blocks = append(blocks, NewParagraph(attrs, text))

	for _, a := range e.Abilities {
		blocks = append(blocks, NewParagraph(headedText(a.Heading, a.Body), text))
	}

	blocks = append(blocks, divider())

	section := NewParagraph("ACTIONS", sheet.Style("action_title"))
	for i, a := range e.Actions {
		p := NewParagraph(headedText(a.Heading, a.Body), text)
		if i == 0 {
			blocks = append(blocks, NewKeepTogether(section, p))
		} else {
			blocks = append(blocks, p)
		}
	}

	if len(e.Reactions) > 0 {
		blocks = append(blocks, divider())
		section = NewParagraph("REACTIONS", sheet.Style("action_title"))
		for i, a := range e.Reactions {
			p := NewParagraph(headedText(a.Heading, a.Body), text)
			if i == 0 {
				blocks = append(blocks, NewKeepTogether(section, p))
			} else {
				blocks = append(blocks, p)
			}
		}
	}

	if len(e.Legendary) > 0 {
		blocks = append(blocks, divider())
		section = NewParagraph("LEGENDARY ACTIONS", sheet.Style("action_title"))
		for i, entry := range e.Legendary {
			var p *Paragraph
			if entry.Pair != nil {
				p = NewParagraph(headedText(entry.Pair.Heading, entry.Pair.Body), sheet.Style("legendary_action"))
			} else {
				p = NewParagraph(entry.Text, text)
			}
			if i == 0 {
				blocks = append(blocks, NewKeepTogether(section, p))
			} else {
				blocks = append(blocks, p)
			}
		}
	}

	return blocks
}

// drawMonsterFooter paints the challenge rating and source book into the
// bottom border of the back face.
func drawMonsterFooter(c render.Canvas, v Variant, e *deck.Entity, sheet *render.Sheet) {
	challenge := sheet.Style("challenge")
	challenge.Color = "#ffffff"
	challenge.Apply(c)

	var challengeBase, sourceX, sourceBase float64
	if v.Size == common.CardSizeSmall {
		challengeBase = v.Height - (5.5 + v.Bleed)
		sourceX = v.BackBorder.Left
		sourceBase = v.Height - (3 + v.Bleed)
	} else {
		// centered within the bottom border, source in the right column
		raw := challenge.SizeMM / render.FontScale
		bottom := (v.BackBorder.Bottom-v.Bleed-raw)/2 + v.Bleed
		challengeBase = v.Height - bottom
		sourceX = v.Width/2 + StandardBorder/2
		sourceBase = challengeBase
	}

	c.Text(v.FrontBorder.Left, challengeBase,
		fmt.Sprintf("Challenge %s (%s XP)", e.ChallengeRating, e.ExperiencePoints))

	text := sheet.Style("text")
	text.Color = "#ffffff"
	text.Apply(c)
	c.Text(sourceX, sourceBase, e.Source)
}
