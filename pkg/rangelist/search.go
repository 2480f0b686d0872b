package rangelist

import (
	"sort"

	"github.com/henderiw/rangetable/pkg/textrange"
)

// NotFound is returned by searches that have no insertion point to report.
const NotFound = -1

// firstStartingAtOrAfter returns the index of the first item with
// start >= position, or Count when there is none.
func (c *Collection[T]) firstStartingAtOrAfter(position int) int {
	return sort.Search(len(c.items), func(i int) bool {
		return c.items[i].Start() >= position
	})
}

// touching returns the index span [lo, hi) of the items with
// start <= position <= end. The binary search lands on the last item
// starting at or before position; the walk left collects the run of
// neighbours sharing the boundary.
func (c *Collection[T]) touching(position int) (int, int) {
	hi := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].Start() > position
	})
	lo := hi
	for lo > 0 && c.items[lo-1].End() >= position {
		lo--
	}
	return lo, hi
}

// GetItemAtPosition returns the index of the first item starting exactly at
// position, or NotFound.
func (c *Collection[T]) GetItemAtPosition(position int) int {
	i := c.firstStartingAtOrAfter(position)
	if i < len(c.items) && c.items[i].Start() == position {
		return i
	}
	return NotFound
}

// GetItemContaining returns the index of the first item whose half-open range
// contains position, or NotFound when position is in a gap or outside the
// collection.
func (c *Collection[T]) GetItemContaining(position int) int {
	lo, hi := c.touching(position)
	for i := lo; i < hi; i++ {
		if textrange.BoundsOf(c.items[i]).Contains(position) {
			return i
		}
	}
	return NotFound
}

// GetItemContainingUsingInclusion is like GetItemContaining but lets
// expandable items claim their inclusive boundaries. When several items
// qualify, first selects the leftmost and !first the rightmost. When none
// does, the result is the bitwise complement of the index an item starting at
// position would be inserted at.
func (c *Collection[T]) GetItemContainingUsingInclusion(position int, first bool) int {
	lo, hi := c.touching(position)
	if first {
		for i := lo; i < hi; i++ {
			if textrange.ContainsUsingInclusion(c.items[i], position) {
				return i
			}
		}
	} else {
		for i := hi - 1; i >= lo; i-- {
			if textrange.ContainsUsingInclusion(c.items[i], position) {
				return i
			}
		}
	}
	return ^c.firstStartingAtOrAfter(position)
}

// GetFirstItemAfterOrAtPosition returns the first item that contains position
// or starts at or after it, or NotFound.
func (c *Collection[T]) GetFirstItemAfterOrAtPosition(position int) int {
	i := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].End() > position || c.items[i].Start() >= position
	})
	if i == len(c.items) {
		return NotFound
	}
	return i
}

// GetLastItemBeforeOrAtPosition returns the last item starting at or before
// position, or NotFound.
func (c *Collection[T]) GetLastItemBeforeOrAtPosition(position int) int {
	_, hi := c.touching(position)
	return hi - 1
}

// GetFirstItemBeforePosition returns the closest item ending at or before
// position, or NotFound.
func (c *Collection[T]) GetFirstItemBeforePosition(position int) int {
	i := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].End() > position
	})
	return i - 1
}

// GetItemsContainingInclusiveEnd returns every item with
// start <= position <= end. Touching and zero-length items can share a
// boundary, so more than one index may come back.
func (c *Collection[T]) GetItemsContainingInclusiveEnd(position int) []int {
	lo, hi := c.touching(position)
	var out []int
	for i := lo; i < hi; i++ {
		if c.items[i].End() >= position {
			out = append(out, i)
		}
	}
	return out
}
