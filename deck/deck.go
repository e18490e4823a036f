// Package deck loads and validates the YAML deck of entity records.
package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cardgen/common"
	imgutil "cardgen/utils/images"
)

// Deck is an ordered sequence of entity records read from a single YAML
// file.
type Deck struct {
	Name     string // deck file name without extension
	Dir      string // absolute directory of the deck file
	Entities []*Entity
}

// Load reads a deck file and validates every record. All validation
// problems are aggregated so the user sees them at once; any problem
// aborts the run per the error taxonomy (malformed input is never a
// best-effort condition).
func Load(path string) (*Deck, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read deck: %w", err)
	}

	var entities []*Entity
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entities); err != nil {
		return nil, fmt.Errorf("unable to decode deck '%s': %w", path, err)
	}

	d := &Deck{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Dir:      filepath.Dir(path),
		Entities: entities,
	}

	var errs error
	for i, e := range d.Entities {
		if err := d.finishEntity(e); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%s): %w", i+1, entryName(e), err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return d, nil
}

func entryName(e *Entity) string {
	if len(e.Title) > 0 {
		return e.Title
	}
	return "untitled"
}

// finishEntity resolves the record kind and illustration reference and
// checks the fields the selected builder depends on.
func (d *Deck) finishEntity(e *Entity) error {
	var err error

	e.kind = common.EntityKindMonster
	if len(e.Type) > 0 {
		if e.kind, err = common.ParseEntityKind(e.Type); err != nil {
			return err
		}
	}

	if len(e.Title) == 0 {
		err = multierr.Append(err, fmt.Errorf("missing title"))
	}

	switch e.kind {
	case common.EntityKindMonster:
		err = multierr.Append(err, checkMonster(e))
	case common.EntityKindItem:
		err = multierr.Append(err, checkItem(e))
	}

	if len(e.ImagePath) > 0 {
		p := e.ImagePath
		if !filepath.IsAbs(p) {
			p = filepath.Join(d.Dir, p)
		}
		if _, er := imgutil.ProbeFile(p); er != nil {
			err = multierr.Append(err, fmt.Errorf("invalid image_path: %w", er))
		} else {
			e.resolvedImage = p
		}
	}
	return err
}

func checkMonster(e *Entity) (err error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"armor_class", e.ArmorClass.IsSet()},
		{"max_hit_points", e.HitPoints.IsSet()},
		{"speed", len(e.Speed) > 0},
		{"strength", e.Strength.IsSet()},
		{"dexterity", e.Dexterity.IsSet()},
		{"constitution", e.Constitution.IsSet()},
		{"intelligence", e.Intelligence.IsSet()},
		{"wisdom", e.Wisdom.IsSet()},
		{"charisma", e.Charisma.IsSet()},
		{"challenge_rating", len(e.ChallengeRating) > 0},
	}
	for _, r := range required {
		if !r.ok {
			err = multierr.Append(err, fmt.Errorf("missing %s", r.name))
		}
	}
	if e.Description.IsSet() {
		err = multierr.Append(err, fmt.Errorf("description is an item field"))
	}
	return
}

func checkItem(e *Entity) (err error) {
	if !e.Description.IsSet() {
		err = multierr.Append(err, fmt.Errorf("missing description"))
	}
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"armor_class", e.ArmorClass.IsSet()},
		{"max_hit_points", e.HitPoints.IsSet()},
		{"legendary", e.Legendary != nil},
	} {
		if f.set {
			err = multierr.Append(err, fmt.Errorf("%s is a monster field", f.name))
		}
	}
	return
}

// SortedTitles returns entity titles in natural order ("Goblin 2" before
// "Goblin 10").
func (d *Deck) SortedTitles() []string {
	titles := make([]string, 0, len(d.Entities))
	for _, e := range d.Entities {
		titles = append(titles, entryName(e))
	}
	sort.Sort(natural.StringSlice(titles))
	return titles
}
