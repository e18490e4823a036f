package render

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// PDF is the gofpdf-backed surface. All units are millimeters, fonts are
// set in points. Pages are added explicitly by the exporter, auto page
// breaks are disabled since cards are placed at absolute positions.
type PDF struct {
	f          *gofpdf.Fpdf
	registered map[string]bool
}

func NewPDF(title, creator string) *PDF {
	f := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 210, Ht: 297},
	})
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetTitle(title, true)
	f.SetCreator(creator, true)
	return &PDF{f: f, registered: make(map[string]bool)}
}

// AddPage starts a new page of exactly the given physical size.
func (p *PDF) AddPage(w, h float64) {
	orient := "P"
	if w > h {
		orient = "L"
	}
	p.f.AddPageFormat(orient, gofpdf.SizeType{Wd: w, Ht: h})
}

// AddUTF8Font registers a TTF file under family/variant.
func (p *PDF) AddUTF8Font(family, variant, path string) {
	p.f.AddUTF8Font(family, variant, path)
}

// Error surfaces the backend's sticky error.
func (p *PDF) Error() error {
	return p.f.Error()
}

// WriteFile finalizes the document into path.
func (p *PDF) WriteFile(path string) error {
	if err := p.f.Error(); err != nil {
		return fmt.Errorf("pdf generation failed: %w", err)
	}
	return p.f.OutputFileAndClose(path)
}

func (p *PDF) SetFont(family, variant string, sizePt float64) {
	p.f.SetFont(family, variant, sizePt)
}

func (p *PDF) TextWidth(s string) float64 {
	return p.f.GetStringWidth(s)
}

func (p *PDF) SetFillColor(hex string) {
	r, g, b := splitHex(hex)
	p.f.SetFillColor(r, g, b)
}

func (p *PDF) SetTextColor(hex string) {
	r, g, b := splitHex(hex)
	p.f.SetTextColor(r, g, b)
}

func (p *PDF) Text(x, y float64, s string) {
	p.f.Text(x, y, s)
}

func (p *PDF) FillRect(x, y, w, h float64) {
	p.f.Rect(x, y, w, h, "F")
}

func (p *PDF) FillRoundedRect(x, y, w, h, r float64) {
	p.f.RoundedRect(x, y, w, h, r, "1234", "F")
}

func (p *PDF) ClipRoundedRect(x, y, w, h, r float64) {
	p.f.ClipRoundedRect(x, y, w, h, r, false)
}

func (p *PDF) ClipEnd() {
	p.f.ClipEnd()
}

func (p *PDF) Image(ref ImageRef, x, y, w, h float64) {
	name := ref.Name
	opt := gofpdf.ImageOptions{ReadDpi: true}
	switch {
	case ref.Image != nil:
		opt.ImageType = "PNG"
		if !p.registered[name] {
			buf := new(bytes.Buffer)
			if err := png.Encode(buf, ref.Image); err != nil {
				p.f.SetError(err)
				return
			}
			p.f.RegisterImageOptionsReader(name, opt, buf)
			p.registered[name] = true
		}
	case len(ref.Path) > 0:
		name = ref.Path
	default:
		return
	}
	p.f.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}

func (p *PDF) RotateBegin(angle, x, y float64) {
	p.f.TransformBegin()
	p.f.TransformRotate(angle, x, y)
}

func (p *PDF) RotateEnd() {
	p.f.TransformEnd()
}

// splitHex parses "#rrggbb" (leading '#' optional). Colors come from
// validated configuration, a malformed value falls back to black.
func splitHex(hex string) (r, g, b int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
		return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
	}
	return 0, 0, 0
}
