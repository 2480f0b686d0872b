package rangelist

import (
	"log/slog"
	"sort"

	"github.com/henderiw/rangetable/pkg/textrange"
	"k8s.io/apimachinery/pkg/labels"
)

// Collection keeps items sorted by start offset.
//
// It is not safe for concurrent use: one owner mutates it, readers either run
// on the owner's goroutine or work on a Snapshot.
type Collection[T textrange.Item] struct {
	items     []T
	logger    *slog.Logger
	onRemoved func([]T)
}

// New returns an empty collection.
func New[T textrange.Item](opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{logger: discardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromItems returns a collection holding items, sorted once.
func NewFromItems[T textrange.Item](items []T, opts ...Option[T]) *Collection[T] {
	c := New(opts...)
	c.items = append(make([]T, 0, len(items)), items...)
	c.Sort()
	return c
}

func (c *Collection[T]) Count() int { return len(c.items) }

// At returns the item at index.
func (c *Collection[T]) At(index int) T { return c.items[index] }

// Start is the start of the first item, 0 when empty.
func (c *Collection[T]) Start() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.items[0].Start()
}

// End is the end of the last item, 0 when empty.
func (c *Collection[T]) End() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.items[len(c.items)-1].End()
}

func (c *Collection[T]) Length() int { return c.End() - c.Start() }

// Contains returns whether position falls inside [Start, End).
func (c *Collection[T]) Contains(position int) bool {
	return len(c.items) > 0 && c.Start() <= position && position < c.End()
}

// Add appends items without sorting; call Sort once a bulk load is done.
func (c *Collection[T]) Add(items ...T) {
	c.items = append(c.items, items...)
}

// Sort orders items by start, keeping the relative order of equal starts.
func (c *Collection[T]) Sort() {
	sortByStart(c.items)
}

func sortByStart[T textrange.Item](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start() < items[j].Start()
	})
}

func sortedByStart[T textrange.Item](items []T) bool {
	return sort.SliceIsSorted(items, func(i, j int) bool {
		return items[i].Start() < items[j].Start()
	})
}

// Items returns a copy of the item list.
func (c *Collection[T]) Items() []T {
	return append(make([]T, 0, len(c.items)), c.items...)
}

// Snapshot returns the current bounds of every item.
func (c *Collection[T]) Snapshot() []textrange.Range {
	out := make([]textrange.Range, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, textrange.BoundsOf(item))
	}
	return out
}

// Clear removes every item.
func (c *Collection[T]) Clear() {
	c.items = nil
}

// RemoveAt removes and returns the item at index.
func (c *Collection[T]) RemoveAt(index int) T {
	item := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	return item
}

// Shift moves every item by offset.
func (c *Collection[T]) Shift(offset int) {
	for _, item := range c.items {
		item.Shift(offset)
	}
}

// ShiftStartingFrom moves every item at or after position by offset. An item
// strictly containing position is recursed into when Composite, grown when
// Expandable and otherwise moved along with the items after it.
func (c *Collection[T]) ShiftStartingFrom(position, offset int) {
	i := c.GetFirstItemAfterOrAtPosition(position)
	if i < 0 {
		return
	}
	item := c.items[i]
	if item.Start() < position && position < item.End() {
		switch it := any(item).(type) {
		case textrange.Composite:
			it.ShiftStartingFrom(position, offset)
			i++
		case textrange.Expandable:
			it.Expand(0, offset)
			i++
		}
	}
	for ; i < len(c.items); i++ {
		c.items[i].Shift(offset)
	}
}

// ReplaceRange replaces count items starting at index with the items of
// other. index is clamped to the collection and count to what remains.
func (c *Collection[T]) ReplaceRange(index, count int, other *Collection[T]) {
	index = max(0, min(index, len(c.items)))
	count = max(0, min(count, len(c.items)-index))

	var incoming []T
	if other != nil {
		incoming = other.items
	}
	out := make([]T, 0, len(c.items)-count+len(incoming))
	out = append(out, c.items[:index]...)
	out = append(out, incoming...)
	out = append(out, c.items[index+count:]...)
	c.items = out
}

// RemoveInRange removes and returns the items lying inside r. Zero-length
// items sitting exactly on a bound of r are only removed when inclusiveEnds
// is set.
func (c *Collection[T]) RemoveInRange(r textrange.Range, inclusiveEnds bool) []T {
	if len(c.items) == 0 {
		return nil
	}
	first := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].Start() >= r.Start()
	})

	var removed []T
	kept := c.items[:first]
	for i := first; i < len(c.items); i++ {
		item := c.items[i]
		if item.Start() > r.End() {
			kept = append(kept, c.items[i:]...)
			break
		}
		if withinRange(item, r, inclusiveEnds) {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

func withinRange(item textrange.Item, r textrange.Range, inclusiveEnds bool) bool {
	if item.Start() < r.Start() || item.End() > r.End() {
		return false
	}
	if item.Length() == 0 && (item.Start() == r.Start() || item.Start() == r.End()) {
		return inclusiveEnds
	}
	return true
}

// ItemsInRange returns the items intersecting r. A zero-length r intersects nothing.
func (c *Collection[T]) ItemsInRange(r textrange.Range) []T {
	if r.Length() == 0 || len(c.items) == 0 {
		return nil
	}
	i := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].Start() >= r.Start()
	})
	for i > 0 && c.items[i-1].End() >= r.Start() {
		i--
	}

	var out []T
	for ; i < len(c.items) && c.items[i].Start() <= r.End(); i++ {
		if textrange.Intersect(textrange.BoundsOf(c.items[i]), r) {
			out = append(out, c.items[i])
		}
	}
	return out
}

// Select returns the Labeled items whose labels match selector.
func (c *Collection[T]) Select(selector labels.Selector) []T {
	var out []T
	for _, item := range c.items {
		l, ok := any(item).(textrange.Labeled)
		if !ok {
			continue
		}
		if selector.Matches(l.Labels()) {
			out = append(out, item)
		}
	}
	return out
}
