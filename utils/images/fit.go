// Package images holds image helpers shared by the card layout and
// rendering code.
package images

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
)

// Size is an image measurement in arbitrary units (pixels when read from a
// file, millimeters once fitted onto a card).
type Size struct {
	Width  float64
	Height float64
}

// FitWithin returns the largest size preserving the source aspect ratio
// that fits into the available box.
func FitWithin(src, avail Size) Size {
	if src.Width <= 0 || src.Height <= 0 {
		return Size{}
	}
	ratio := min(avail.Width/src.Width, avail.Height/src.Height)
	return Size{Width: src.Width * ratio, Height: src.Height * ratio}
}

// Landscape reports whether the size is wider than tall.
func (s Size) Landscape() bool {
	return s.Width > s.Height
}

// ProbeFile verifies that path points at a decodable raster image and
// returns its pixel dimensions. Type is sniffed from content, not from the
// file extension.
func ProbeFile(path string) (Size, error) {
	head := make([]byte, 261)
	f, err := os.Open(path)
	if err != nil {
		return Size{}, err
	}
	n, _ := f.Read(head)
	f.Close()

	if !filetype.IsImage(head[:n]) {
		return Size{}, fmt.Errorf("'%s' is not an image file", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("unable to decode image '%s': %w", path, err)
	}
	b := img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}
