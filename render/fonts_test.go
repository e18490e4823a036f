package render

import (
	"math"
	"testing"

	"cardgen/common"
	"cardgen/config"
)

func TestNewSheetFree(t *testing.T) {
	sheet, err := NewSheet(nil, common.FontSetFree, config.FontsConfig{}, "#ec1923")
	if err != nil {
		t.Fatalf("free set must not require font files: %v", err)
	}

	for _, name := range []string{
		"title", "subtitle", "text", "legendary_action", "modifier",
		"modifier_title", "action_title", "artist", "challenge",
		"category", "subcategory",
	} {
		_ = sheet.Style(name)
	}

	title := sheet.Style("title")
	if !title.Center || !title.Uppercase {
		t.Error("title renders centered in capitals")
	}
	if want := 2.5 * FontScale; math.Abs(title.SizeMM-want) > 1e-9 {
		t.Errorf("title size = %v, want %v", title.SizeMM, want)
	}
	if math.Abs(title.LeadingMM-(title.SizeMM+0.5)) > 1e-9 {
		t.Errorf("leading = %v", title.LeadingMM)
	}

	subtitle := sheet.Style("subtitle")
	if subtitle.BackColor != "#ec1923" {
		t.Error("subtitle band uses the border color")
	}
	if sheet.Style("legendary_action").SpaceBeforeMM != 0 {
		t.Error("legendary entries stack without extra space")
	}
	if sheet.Style("text").SpaceBeforeMM != 1 {
		t.Error("body paragraphs are separated by 1mm")
	}
}

func TestNewSheetAccurateRequiresFiles(t *testing.T) {
	pdf := NewPDF("t", "t")
	if _, err := NewSheet(pdf, common.FontSetAccurate, config.FontsConfig{}, "#ec1923"); err == nil {
		t.Error("accurate set without configured files must fail before rendering")
	}
}

func TestSplitHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ec1923", 0xec, 0x19, 0x23},
		{"ffffff", 255, 255, 255},
		{"#bad", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tc := range tests {
		r, g, b := splitHex(tc.in)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("splitHex(%q) = %d,%d,%d", tc.in, r, g, b)
		}
	}
}
