package images

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name  string
		src   Size
		avail Size
		want  Size
	}{
		{"width bound", Size{200, 100}, Size{100, 100}, Size{100, 50}},
		{"height bound", Size{100, 200}, Size{100, 100}, Size{50, 100}},
		{"exact", Size{50, 50}, Size{100, 100}, Size{100, 100}},
		{"degenerate source", Size{0, 100}, Size{100, 100}, Size{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitWithin(tt.src, tt.avail)
			if got != tt.want {
				t.Errorf("FitWithin(%v, %v) = %v, want %v", tt.src, tt.avail, got, tt.want)
			}
		})
	}
}

func TestProbeFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "img.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	sz, err := ProbeFile(good)
	if err != nil {
		t.Fatalf("ProbeFile: %v", err)
	}
	if sz.Width != 40 || sz.Height != 30 {
		t.Errorf("unexpected size: %v", sz)
	}
	if !sz.Landscape() {
		t.Error("40x30 should be landscape")
	}

	bad := filepath.Join(dir, "notimage.png")
	if err := os.WriteFile(bad, []byte("just text pretending"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ProbeFile(bad); err == nil {
		t.Error("expected error for non-image content")
	}
}
