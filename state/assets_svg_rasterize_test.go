package state

import (
	"fmt"
	"testing"

	imgutil "cardgen/utils/images"
)

func TestDefaultArtRasterizes(t *testing.T) {
	env := newLocalEnv()

	art := map[string][]byte{"logo": env.DefaultLogo, "background": env.DefaultBackground}
	for kind, svg := range env.DefaultPlaceholder {
		art[fmt.Sprintf("placeholder-%v", kind)] = svg
	}

	for name, svg := range art {
		t.Run(name, func(t *testing.T) {
			img, err := imgutil.RasterizeSVGToImage(svg, 0, 0)
			if err != nil {
				t.Fatalf("rasterize %s: %v", name, err)
			}
			if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
				t.Fatalf("unexpected bounds: %v", img.Bounds())
			}
		})
	}
}
