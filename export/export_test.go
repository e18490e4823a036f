package export

import (
	"strings"
	"testing"

	"cardgen/common"
)

func TestMixArray(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		segment int
		want    []string
	}{
		{"two full rows", []string{"A", "B", "C", "D", "E", "F"}, 3, []string{"C", "B", "A", "F", "E", "D"}},
		{"partial last row", []string{"A", "B", "C", "D", "E"}, 3, []string{"C", "B", "A", "E", "D"}},
		{"single column", []string{"A", "B", "C"}, 1, []string{"A", "B", "C"}},
		{"empty", nil, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mixArray(tc.in, tc.segment)
			if len(got) != len(tc.want) {
				t.Fatalf("mixArray() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("mixArray() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"source file", "{{ .SourceFile }}", "bestiary.pdf"},
		{"with mode", "{{ .SourceFile }}-{{ .Mode }}", "bestiary-grid.pdf"},
		{"slugified", `{{ slugify "My Deck!" }}`, "my-deck.pdf"},
		{"empty falls back", "", "bestiary.pdf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OutputName(tc.tmpl, "bestiary", common.ExportModeGrid)
			if err != nil {
				t.Fatalf("OutputName() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("OutputName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOutputNameBadTemplate(t *testing.T) {
	if _, err := OutputName("{{ .SourceFile", "bestiary", common.ExportModeSingle); err == nil {
		t.Error("unterminated template must be rejected")
	}
	if _, err := OutputName("{{ .NoSuchField }}", "bestiary", common.ExportModeSingle); err == nil {
		t.Error("unknown field must be rejected")
	}
}

func TestOutputNameDate(t *testing.T) {
	got, err := OutputName("{{ .SourceFile }}-{{ .Date }}", "deck", common.ExportModeSingle)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "deck-20") || !strings.HasSuffix(got, ".pdf") {
		t.Errorf("unexpected dated name %q", got)
	}
}
