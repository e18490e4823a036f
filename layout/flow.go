package layout

import (
	"errors"
	"slices"

	"cardgen/render"
)

// ErrOverflow reports that the block sequence does not fit the regions of
// the current size variant. Recoverable, the selector escalates to the
// next size.
var ErrOverflow = errors.New("content does not fit card size")

// Flow places the block sequence into the regions in order. Committed
// blocks are drawn immediately, the caller is expected to record onto a
// discardable surface. In split mode a block that does not fit may be
// broken at the region boundary.
func Flow(c render.Canvas, blocks []Block, regions []*Region, split bool) error {
	queue := slices.Clone(blocks)

	for _, reg := range regions {
		for len(queue) > 0 {
			head := queue[0]

			if d, ok := head.(*Divider); ok && suppressDivider(c, reg, d, queue) {
				queue = queue[1:]
				continue
			}

			if reg.TryAdd(c, head) {
				queue = queue[1:]
				continue
			}

			if split {
				if rest, ok := reg.TrySplit(c, head); ok {
					queue = slices.Clone(queue)
					queue[0] = rest
				}
			}
			break // region exhausted, head retries in the next one
		}
		if len(queue) == 0 {
			return nil
		}
	}
	return ErrOverflow
}

// suppressDivider drops a divider that would be the first thing in its
// region, the last queued block, or that would leave a dangling rule with
// its follower pushed to the next region.
func suppressDivider(c render.Canvas, reg *Region, d *Divider, queue []Block) bool {
	if reg.AtTop() {
		return true
	}
	if len(queue) < 2 {
		return true
	}
	next := queue[1]
	width := reg.ContentWidth()
	need := d.Wrap(c, width) + next.SpaceBefore() + next.Wrap(c, width)
	return need > reg.Remaining()+heightEpsilon
}
