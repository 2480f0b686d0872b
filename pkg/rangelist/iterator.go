package rangelist

import "github.com/henderiw/rangetable/pkg/textrange"

// Iterator walks a collection front to back. It must not outlive a mutation
// of the collection.
type Iterator[T textrange.Item] struct {
	current int
	items   []T
}

// Iterate returns an iterator positioned before the first item.
func (c *Collection[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{current: -1, items: c.items}
}

func (r *Iterator[T]) Value() T {
	return r.items[r.current]
}

func (r *Iterator[T]) Index() int {
	return r.current
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.items)
}

// IsAdjacent returns whether the current item starts where the previous one ends.
func (r *Iterator[T]) IsAdjacent() bool {
	if r.current < 1 {
		return false
	}
	return r.items[r.current-1].End() == r.items[r.current].Start()
}
