package rangelist

import (
	"log/slog"

	"github.com/henderiw/rangetable/pkg/textrange"
)

// ReflectTextChange updates the collection after the oldLength characters at
// start were replaced by newLength characters. Items that cannot survive the
// edit are removed and returned.
//
// Calls must not overlap: the collection has a single writer.
func (c *Collection[T]) ReflectTextChange(start, oldLength, newLength int) []T {
	if oldLength == 0 && newLength == 0 {
		return nil
	}
	oldEnd := start + oldLength

	startIndex := c.GetItemContainingUsingInclusion(start, true)
	endIndex := startIndex
	if oldLength > 0 {
		endIndex = c.GetItemContainingUsingInclusion(oldEnd, false)
	}

	var removed []T
	if startIndex == endIndex {
		removed = c.reflectSingle(startIndex, start, oldLength, newLength)
	} else {
		removed = c.reflectMulti(startIndex, endIndex, start, oldLength, newLength)
	}

	c.logger.Debug("reflected text change",
		slog.Int("start", start),
		slog.Int("oldLength", oldLength),
		slog.Int("newLength", newLength),
		slog.Bool("singleBlock", startIndex == endIndex),
		slog.Int("removed", len(removed)),
		slog.Int("count", len(c.items)),
	)
	return removed
}

// TextChanged reflects change and hands removed items to the removed handler.
func (c *Collection[T]) TextChanged(change textrange.Change) {
	removed := c.ReflectTextChange(change.Start, change.OldLength, change.NewLength)
	if len(removed) > 0 && c.onRemoved != nil {
		c.onRemoved(removed)
	}
}

// changeReflector is a composite that repairs its own children from the full
// edit rather than from a plain shift.
type changeReflector interface {
	reflectChange(change textrange.Change)
}

// reflectSingle handles an edit owned by at most one item: index is that item
// or the complemented insertion point when no item owns the edit.
func (c *Collection[T]) reflectSingle(index, start, oldLength, newLength int) []T {
	offset := newLength - oldLength
	oldEnd := start + oldLength

	next := ^index
	var drop []int
	if index >= 0 {
		next = index + 1
		item := c.items[index]
		switch it := any(item).(type) {
		case textrange.Composite:
			if r, ok := it.(changeReflector); ok {
				r.reflectChange(textrange.Change{Start: start, OldLength: oldLength, NewLength: newLength})
			} else {
				it.ShiftStartingFrom(start, offset)
			}
		case textrange.Expandable:
			if !reshape(it, start, oldEnd, newLength, true) {
				drop = append(drop, index)
			}
		default:
			if oldLength == 0 && start == item.Start() {
				item.Shift(offset)
			} else {
				drop = append(drop, index)
			}
		}
	}
	c.shiftFrom(next, offset)
	return c.dropIndices(drop)
}

// reflectMulti handles an edit whose start and end are owned by different
// items, or fall into different gaps.
func (c *Collection[T]) reflectMulti(startIndex, endIndex, start, oldLength, newLength int) []T {
	offset := newLength - oldLength
	oldEnd := start + oldLength

	// the inserted text belongs to one item at most
	newTextConsumed := false
	var drop []int
	visit := func(i int) {
		keep, absorbed := reflectItem(c.items[i], start, oldEnd, newLength, !newTextConsumed)
		if !keep {
			drop = append(drop, i)
			return
		}
		if absorbed {
			newTextConsumed = true
		}
	}

	lo := ^startIndex
	if startIndex >= 0 {
		lo = startIndex + 1
		visit(startIndex)
	}
	hi, next := ^endIndex, ^endIndex
	if endIndex >= 0 {
		hi, next = endIndex, endIndex+1
	}
	for i := lo; i < hi; i++ {
		visit(i)
	}
	if endIndex >= 0 {
		visit(endIndex)
	}
	c.shiftFrom(next, offset)
	return c.dropIndices(drop)
}

// reflectItem fits one item touched by a multi-item edit. It reports whether
// the item survives and whether it took the inserted text.
func reflectItem(item textrange.Item, start, oldEnd, newLength int, canAbsorb bool) (bool, bool) {
	e, ok := item.(textrange.Expandable)
	if !ok {
		// plain and composite items only survive when the deletion misses them
		if item.Start() >= oldEnd {
			item.Shift(start + newLength - oldEnd)
			return true, false
		}
		return false, false
	}

	var absorbs bool
	switch {
	case e.Start() >= oldEnd:
		absorbs = canAbsorb && e.IsStartInclusive()
	case start <= e.Start() && e.End() <= oldEnd:
		// swallowed by the deletion: only an exact match may live on
		if e.Start() != start || e.End() != oldEnd {
			return false, false
		}
		absorbs = canAbsorb
	default:
		absorbs = canAbsorb && (e.Start() < start || e.IsStartInclusive())
	}
	if !reshape(e, start, oldEnd, newLength, absorbs) {
		return false, false
	}
	return true, absorbs && newLength > 0
}

// reshape maps e through the edit [start, oldEnd) -> newLength. The parts of e
// outside the deleted text are kept; the inserted text is added when absorbs.
// It returns false when e would become empty without being allowed to.
func reshape(e textrange.Expandable, start, oldEnd, newLength int, absorbs bool) bool {
	head := max(0, min(start, e.End())-e.Start())
	tail := max(0, e.End()-max(oldEnd, e.Start()))
	added := 0
	if absorbs {
		added = newLength
	}

	var newStart int
	switch {
	case e.Start() < start:
		newStart = e.Start()
	case absorbs:
		newStart = start
	default:
		newStart = start + newLength
	}
	newLen := head + added + tail
	if newLen == 0 && !e.AllowZeroLength() {
		return false
	}
	e.Expand(newStart-e.Start(), newStart+newLen-e.End())
	return true
}

func (c *Collection[T]) shiftFrom(index, offset int) {
	if offset == 0 {
		return
	}
	for i := index; i < len(c.items); i++ {
		c.items[i].Shift(offset)
	}
}

// dropIndices removes the items at the given ascending indices.
func (c *Collection[T]) dropIndices(drop []int) []T {
	if len(drop) == 0 {
		return nil
	}
	removed := make([]T, 0, len(drop))
	old := c.items
	kept := c.items[:0]
	k := 0
	for i, item := range old {
		if k < len(drop) && drop[k] == i {
			removed = append(removed, item)
			k++
			continue
		}
		kept = append(kept, item)
	}
	clear(old[len(kept):])
	c.items = kept
	return removed
}
