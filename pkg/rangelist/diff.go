package rangelist

import (
	"log/slog"

	"github.com/henderiw/rangetable/pkg/textrange"
)

func sameBounds(a, b textrange.Item) bool {
	return a.Start() == b.Start() && a.Length() == b.Length()
}

// IsEqual compares both collections position by position on start and length.
func (c *Collection[T]) IsEqual(other *Collection[T]) bool {
	if other == nil || len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if !sameBounds(c.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// RangeDifference returns the smallest range covering the items that differ
// between c and other, after skipping the items both share at the front and
// at the back. Identical collections yield the empty range. When either side
// is empty or nothing matches at either end the result spans
// [lowerBound, upperBound). Items appended after a shared prefix extend the
// result to upperBound, items prepended before a shared suffix extend it to
// lowerBound.
func (c *Collection[T]) RangeDifference(other *Collection[T], lowerBound, upperBound int) textrange.Range {
	var b []T
	if other != nil {
		b = other.items
	}
	a := c.items
	n, m := len(a), len(b)

	switch {
	case n == 0 && m == 0:
		return textrange.EmptyRange()
	case n == 0 || m == 0:
		return boundedRange(lowerBound, upperBound, lowerBound, upperBound)
	}

	front := 0
	for front < n && front < m && sameBounds(a[front], b[front]) {
		front++
	}
	if front == n && n == m {
		return textrange.EmptyRange()
	}
	back := 0
	for back < min(n, m)-front && sameBounds(a[n-1-back], b[m-1-back]) {
		back++
	}
	if front == 0 && back == 0 {
		return boundedRange(lowerBound, upperBound, lowerBound, upperBound)
	}

	// unmatched middles are a[front:n-back] and b[front:m-back], one may be empty
	start, end := upperBound, lowerBound
	for _, mid := range [][]T{a[front : n-back], b[front : m-back]} {
		if len(mid) == 0 {
			continue
		}
		start = min(start, mid[0].Start())
		end = max(end, mid[len(mid)-1].End())
	}
	shorter := min(n, m)
	switch {
	case front == shorter:
		// the shorter side is a prefix of the longer one
		return boundedRange(lowerBound, upperBound, start, upperBound)
	case back == shorter:
		// the shorter side is a suffix of the longer one
		return boundedRange(lowerBound, upperBound, lowerBound, end)
	}

	r := boundedRange(lowerBound, upperBound, start, end)
	if r.Length() == 0 {
		return boundedRange(lowerBound, upperBound, lowerBound, upperBound)
	}
	return r
}

// boundedRange clamps [start, end) into [lower, upper].
func boundedRange(lower, upper, start, end int) textrange.Range {
	start = max(lower, min(start, upper))
	end = max(start, min(end, upper))
	r, err := textrange.FromBounds(start, end)
	if err != nil {
		return textrange.EmptyRange()
	}
	return r
}

// Merge adds the items of other whose start is not already present in c.
// Both collections are expected to be sorted; either side found out of order
// is sorted first, and c is sorted again afterwards.
func (c *Collection[T]) Merge(other *Collection[T]) {
	if other == nil || len(other.items) == 0 {
		return
	}
	if !sortedByStart(c.items) {
		c.Sort()
	}
	a, b := c.items, other.items
	if !sortedByStart(b) {
		b = append(make([]T, 0, len(b)), b...)
		sortByStart(b)
	}
	merged := make([]T, 0, len(a)+len(b))
	i, j, added := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Start() < b[j].Start():
			merged = append(merged, a[i])
			i++
		case a[i].Start() > b[j].Start():
			merged = append(merged, b[j])
			j++
			added++
		default:
			// same start: keep the whole run of ours, drop theirs
			s := a[i].Start()
			for i < len(a) && a[i].Start() == s {
				merged = append(merged, a[i])
				i++
			}
			for j < len(b) && b[j].Start() == s {
				j++
			}
		}
	}
	merged = append(merged, a[i:]...)
	added += len(b) - j
	merged = append(merged, b[j:]...)

	c.items = merged
	c.Sort()

	c.logger.Debug("merged collections",
		slog.Int("added", added),
		slog.Int("count", len(c.items)),
	)
}
