package layout

import (
	"cardgen/render"
)

// fakeMeasurer provides deterministic text metrics so layout results do
// not depend on real font files.
type fakeMeasurer struct {
	sizePt float64
}

func (m *fakeMeasurer) SetFont(_, _ string, sizePt float64) { m.sizePt = sizePt }

func (m *fakeMeasurer) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * 0.55 * m.sizePt / render.PtPerMM
}

func testStyle() render.Style {
	return render.Style{Family: "Times", SizeMM: 2, LeadingMM: 2.5}
}

func testCanvas() *render.Recorder {
	return render.NewRecorder(&fakeMeasurer{})
}
