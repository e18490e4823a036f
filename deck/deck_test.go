package deck

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cardgen/common"
)

const sampleDeck = `
- title: Ancient Red Dragon
  subtitle: Gargantuan dragon, chaotic evil
  armor_class: 22
  max_hit_points: 546
  speed: 40 ft., climb 40 ft., fly 80 ft.
  strength: 30
  dexterity: 10
  constitution: 29
  intelligence: 18
  wisdom: 15
  charisma: 23
  challenge_rating: "24"
  experience_points: "62000"
  source: Monster Manual
  attributes:
    Saving Throws: Dex +6, Con +16
    Senses: blindsight 60 ft.
  abilities:
    Legendary Resistance: If the dragon fails a saving throw, it can choose to succeed instead.
  actions:
    Bite: "Melee Weapon Attack: +17 to hit."
  legendary:
    - The dragon can take 3 legendary actions.
    - Detect: The dragon makes a Wisdom check.
- title: Bag of Holding
  type: item
  subtitle: Wondrous item, uncommon
  category: Wondrous Item
  description: This bag has an interior space considerably larger than its outside dimensions.
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	d, err := Load(writeDeck(t, sampleDeck))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(d.Entities))
	}
	if d.Name != "deck" {
		t.Errorf("unexpected deck name: %s", d.Name)
	}

	m := d.Entities[0]
	if m.Kind() != common.EntityKindMonster {
		t.Errorf("expected monster by default, got %s", m.Kind())
	}
	if len(m.Attributes) != 2 || m.Attributes[0].Heading != "Saving Throws" {
		t.Errorf("attributes order lost: %+v", m.Attributes)
	}
	if len(m.Legendary) != 2 {
		t.Fatalf("expected 2 legendary entries, got %d", len(m.Legendary))
	}
	if m.Legendary[0].Pair != nil {
		t.Error("first legendary entry should be plain text")
	}
	if m.Legendary[1].Pair == nil || m.Legendary[1].Pair.Heading != "Detect" {
		t.Errorf("second legendary entry mismatch: %+v", m.Legendary[1])
	}

	i := d.Entities[1]
	if i.Kind() != common.EntityKindItem {
		t.Errorf("expected item, got %s", i.Kind())
	}
	if i.Description.IsList() {
		t.Error("single string description should not be a list")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		deck string
	}{
		{"missing title", "- subtitle: no title here\n  type: item\n  description: x\n"},
		{"unknown kind", "- title: X\n  type: spell\n"},
		{"monster missing stats", "- title: X\n  speed: 30 ft.\n"},
		{"item without description", "- title: X\n  type: item\n"},
		{"description wrong shape", "- title: X\n  type: item\n  description:\n    nested: map\n"},
		{"legendary bad entry", "- title: X\n  type: item\n  description: x\n  legendary:\n    - a: b\n      c: d\n"},
		{"unknown field", "- title: X\n  type: item\n  description: x\n  hit_dice: 4d8\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeDeck(t, tt.deck)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadImageResolution(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "art.png")
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	deckPath := filepath.Join(dir, "deck.yaml")
	content := "- title: X\n  type: item\n  description: x\n  image_path: art.png\n"
	if err := os.WriteFile(deckPath, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := Load(deckPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Entities[0].ResolvedImage() != imgPath {
		t.Errorf("image not resolved: %s", d.Entities[0].ResolvedImage())
	}

	// missing referenced image aborts the load
	content = "- title: X\n  type: item\n  description: x\n  image_path: nope.png\n"
	if err := os.WriteFile(deckPath, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(deckPath); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestScoreDisplay(t *testing.T) {
	tests := []struct {
		in   Score
		want string
	}{
		{IntScore(13), "13 (+1)"},
		{IntScore(10), "10 (+0)"},
		{IntScore(8), "8 (-1)"},
		{IntScore(30), "30 (+10)"},
		{IntScore(1), "1 (-5)"},
		{TextScore("—"), "—"},
	}
	for _, tt := range tests {
		if got := tt.in.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}

func TestSortedTitles(t *testing.T) {
	d := &Deck{Entities: []*Entity{
		{Title: "Goblin 10"},
		{Title: "Goblin 2"},
		{Title: "Bandit"},
	}}
	got := d.SortedTitles()
	want := []string{"Bandit", "Goblin 2", "Goblin 10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: %v", got)
		}
	}
}
