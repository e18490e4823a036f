package export

import (
	"math"

	"go.uber.org/zap"

	"cardgen/common"
	"cardgen/layout"
	"cardgen/render"
)

// A4 sheet used by grid export, portrait millimeters.
const (
	SheetWidth  = 210.0
	SheetHeight = 297.0
)

// Exporter replays recorded card faces onto document pages.
type Exporter struct {
	Log *zap.Logger
	PDF *render.PDF
}

// Singles writes one page pair per card: a front page followed by a back
// page, each sized exactly to the card's physical footprint.
func (x *Exporter) Singles(cards []*layout.Card) {
	for _, card := range cards {
		for _, face := range []common.Face{common.FaceFront, common.FaceBack} {
			x.PDF.AddPage(card.Width, card.Height)
			card.Recording(face).Replay(x.PDF, 0, 0)
		}
	}
}

// Grid lays cards out on fixed sheets in rows x cols cells of the base
// card footprint. For every sheet of fronts a matching sheet of backs
// follows: backs are right-aligned and their order reversed within each
// physical row, so after printing double-sided and flipping on the long
// edge every back lands behind its front. Cards that escalated beyond the
// base footprint still occupy a single cell and spill over their
// neighbors, which is worth a warning but not a failure.
func (x *Exporter) Grid(cards []*layout.Card, rows, cols int) {
	cellW, cellH := layout.BaseWidth, layout.BaseHeight
	perPage := rows * cols
	if perPage <= 0 {
		return
	}

	for _, card := range cards {
		if card.Width > cellW || card.Height > cellH {
			x.Log.Warn("card is larger than its grid cell",
				zap.String("title", card.Entity.Title),
				zap.Stringer("size", card.Size))
		}
	}

	pages := int(math.Ceil(float64(len(cards)) / float64(perPage)))
	for p := 0; p < pages; p++ {
		chunk := cards[p*perPage : min((p+1)*perPage, len(cards))]

		x.PDF.AddPage(SheetWidth, SheetHeight)
		for i, card := range chunk {
			cx := float64(i%cols) * cellW
			cy := float64(i/cols) * cellH
			card.Recording(common.FaceFront).Replay(x.PDF, cx, cy)
		}

		x.PDF.AddPage(SheetWidth, SheetHeight)
		right := SheetWidth - float64(cols)*cellW
		for i, card := range mixArray(chunk, cols) {
			cx := right + float64(i%cols)*cellW
			cy := float64(i/cols) * cellH
			card.Recording(common.FaceBack).Replay(x.PDF, cx, cy)
		}
	}
}

// mixArray reverses the order within each segment of the given size. With
// a segment per grid row this mirrors the back faces horizontally.
func mixArray[T any](arr []T, segment int) []T {
	if segment <= 0 {
		return arr
	}
	out := make([]T, 0, len(arr))
	for start := 0; start < len(arr); start += segment {
		end := min(start+segment, len(arr))
		for i := end - 1; i >= start; i-- {
			out = append(out, arr[i])
		}
	}
	return out
}
