// Enums are shared between configuration, command line parsing and the
// layout engine, so they live in their own package to keep import cycles
// out of config.
package common

// Physical card footprint, ordered from smallest to largest. Size
// escalation relies on this ordering.
// ENUM(small, large, epic, super-epic)
type CardSize int

// Next returns the next larger footprint and false when there is none.
func (s CardSize) Next() (CardSize, bool) {
	if s >= CardSizeSuperEpic {
		return s, false
	}
	return s + 1, true
}

// Kind of entity a deck record describes.
// ENUM(monster, item)
type EntityKind int

// Card face selector. Always passed explicitly, never as a boolean.
// ENUM(front, back)
type Face int

// Specification of requested export mode.
// ENUM(single, grid)
type ExportMode int

// Specification of requested font set.
// ENUM(free, accurate)
type FontSet int
