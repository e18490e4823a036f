package deck

import (
	"fmt"
	"math"

	yaml "gopkg.in/yaml.v3"

	"cardgen/common"
)

// Score is a stat value that is either an integer or a preformatted string
// (for special cases like "—" or "12 (16 with mage armor)").
type Score struct {
	number  int
	text    string
	numeric bool
	set     bool
}

func IntScore(n int) Score     { return Score{number: n, numeric: true, set: true} }
func TextScore(s string) Score { return Score{text: s, set: true} }

func (s *Score) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: scalar expected", node.Line)
	}
	var n int
	if err := node.Decode(&n); err == nil {
		*s = IntScore(n)
		return nil
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	*s = TextScore(str)
	return nil
}

func (s Score) IsSet() bool { return s.set }

// Display returns the value as printed on the card. Integer ability scores
// are formatted with their modifier, e.g. 13 becomes "13 (+1)".
func (s Score) Display() string {
	if !s.numeric {
		return s.text
	}
	mod := int(math.Floor(float64(s.number-10) / 2.0))
	return fmt.Sprintf("%d (%+d)", s.number, mod)
}

// Plain returns the raw value without modifier formatting.
func (s Score) Plain() string {
	if !s.numeric {
		return s.text
	}
	return fmt.Sprintf("%d", s.number)
}

// Pair is one heading/body entry of an ordered section.
type Pair struct {
	Heading string
	Body    string
}

// Pairs preserves the document order of a YAML mapping, which generic maps
// would lose.
type Pairs []Pair

func (p *Pairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: mapping expected", node.Line)
	}
	out := make(Pairs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var pair Pair
		if err := node.Content[i].Decode(&pair.Heading); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&pair.Body); err != nil {
			return err
		}
		out = append(out, pair)
	}
	*p = out
	return nil
}

// LegendaryEntry is either plain text or a single heading/body pair.
type LegendaryEntry struct {
	Text string
	Pair *Pair
}

func (e *LegendaryEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Text)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: legendary action entry must have a single heading", node.Line)
		}
		var pair Pair
		if err := node.Content[0].Decode(&pair.Heading); err != nil {
			return err
		}
		if err := node.Content[1].Decode(&pair.Body); err != nil {
			return err
		}
		e.Pair = &pair
		return nil
	default:
		return fmt.Errorf("line %d: unsupported legendary action entry", node.Line)
	}
}

// DescriptionEntry is one element of an item description list.
type DescriptionEntry struct {
	Text string
	Pair *Pair
}

// Description is an item description: a single text block or an ordered
// list of entries.
type Description struct {
	Text    string
	Entries []DescriptionEntry
	list    bool
	set     bool
}

func TextDescription(s string) Description { return Description{Text: s, set: true} }

func (d Description) IsSet() bool  { return d.set }
func (d Description) IsList() bool { return d.list }

func (d *Description) UnmarshalYAML(node *yaml.Node) error {
	d.set = true
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Text)
	case yaml.SequenceNode:
		d.list = true
		for _, c := range node.Content {
			var entry DescriptionEntry
			switch c.Kind {
			case yaml.ScalarNode:
				if err := c.Decode(&entry.Text); err != nil {
					return err
				}
			case yaml.MappingNode:
				if len(c.Content) != 2 {
					return fmt.Errorf("line %d: description entry must have a single heading", c.Line)
				}
				var pair Pair
				if err := c.Content[0].Decode(&pair.Heading); err != nil {
					return err
				}
				// heading with no body is legal and renders heading only
				if err := c.Content[1].Decode(&pair.Body); err != nil {
					var null any
					if e := c.Content[1].Decode(&null); e != nil || null != nil {
						return err
					}
				}
				entry.Pair = &pair
			default:
				return fmt.Errorf("line %d: unsupported description entry", c.Line)
			}
			d.Entries = append(d.Entries, entry)
		}
		return nil
	default:
		return fmt.Errorf("line %d: description should be text or a list", node.Line)
	}
}

// Entity is one deck record. Immutable once constructed by Load.
type Entity struct {
	Type     string `yaml:"type,omitempty"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Artist   string `yaml:"artist,omitempty"`

	// Illustration reference, resolved against the deck directory.
	ImagePath string `yaml:"image_path,omitempty"`

	// monster card fields
	ArmorClass       Score  `yaml:"armor_class,omitempty"`
	HitPoints        Score  `yaml:"max_hit_points,omitempty"`
	Speed            string `yaml:"speed,omitempty"`
	Strength         Score  `yaml:"strength,omitempty"`
	Dexterity        Score  `yaml:"dexterity,omitempty"`
	Constitution     Score  `yaml:"constitution,omitempty"`
	Intelligence     Score  `yaml:"intelligence,omitempty"`
	Wisdom           Score  `yaml:"wisdom,omitempty"`
	Charisma         Score  `yaml:"charisma,omitempty"`
	ChallengeRating  string `yaml:"challenge_rating,omitempty"`
	ExperiencePoints string `yaml:"experience_points,omitempty"`
	Source           string `yaml:"source,omitempty"`

	Attributes Pairs            `yaml:"attributes,omitempty"`
	Abilities  Pairs            `yaml:"abilities,omitempty"`
	Actions    Pairs            `yaml:"actions,omitempty"`
	Reactions  Pairs            `yaml:"reactions,omitempty"`
	Legendary  []LegendaryEntry `yaml:"legendary,omitempty"`

	// item card fields
	Category    string      `yaml:"category,omitempty"`
	Subcategory string      `yaml:"subcategory,omitempty"`
	Description Description `yaml:"description,omitempty"`

	kind          common.EntityKind
	resolvedImage string
}

// Kind reports which builder applies to this record.
func (e *Entity) Kind() common.EntityKind { return e.kind }

// ResolvedImage returns the absolute illustration path or empty string when
// the embedded placeholder art should be used.
func (e *Entity) ResolvedImage() string { return e.resolvedImage }

// AbilityScores returns the six modifier-row values in table order.
func (e *Entity) AbilityScores() []Score {
	return []Score{e.Strength, e.Dexterity, e.Constitution, e.Intelligence, e.Wisdom, e.Charisma}
}

// EmptyItem is the filler card used to pad incomplete grid sheets.
func EmptyItem() *Entity {
	return &Entity{
		Type:        common.EntityKindItem.String(),
		Description: TextDescription(""),
		kind:        common.EntityKindItem,
	}
}
