package layout

import (
	"strings"

	"github.com/beevik/etree"
)

// Span is a run of text with one inline style, or an explicit line break.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Break  bool
}

// ParseMarkup parses the minimal inline markup the card texts use:
// <b>/<strong>, <i>/<em> and <br/>. Unknown elements contribute their
// text content without styling. Text that does not parse as markup at all
// is returned as a single plain span, card data is not required to be
// XML-clean.
func ParseMarkup(s string) []Span {
	if !strings.ContainsRune(s, '<') {
		if len(s) == 0 {
			return nil
		}
		return []Span{{Text: s}}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<sp>" + s + "</sp>"); err != nil {
		return []Span{{Text: s}}
	}

	var spans []Span
	collectSpans(doc.Root(), false, false, &spans)
	return spans
}

func collectSpans(el *etree.Element, bold, italic bool, out *[]Span) {
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.CharData:
			if len(t.Data) > 0 {
				*out = append(*out, Span{Text: t.Data, Bold: bold, Italic: italic})
			}
		case *etree.Element:
			b, i := bold, italic
			switch strings.ToLower(t.Tag) {
			case "b", "strong":
				b = true
			case "i", "em":
				i = true
			case "br":
				*out = append(*out, Span{Break: true})
				continue
			}
			collectSpans(t, b, i, out)
		}
	}
}
