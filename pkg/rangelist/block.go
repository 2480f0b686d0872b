package rangelist

import "github.com/henderiw/rangetable/pkg/textrange"

// Block is a range owning a nested collection, e.g. a parsed scope and the
// tokens inside it.
type Block[T textrange.Item] struct {
	textrange.Range
	children *Collection[T]
}

// NewBlock returns a block over r owning children.
func NewBlock[T textrange.Item](r textrange.Range, children ...T) *Block[T] {
	return &Block[T]{
		Range:    r,
		children: NewFromItems(children),
	}
}

func (b *Block[T]) Children() *Collection[T] { return b.children }

// Shift moves the block together with its children.
func (b *Block[T]) Shift(offset int) {
	b.Range.Shift(offset)
	b.children.Shift(offset)
}

// ShiftStartingFrom moves the whole block when position is before its start,
// or at its start with text being inserted. Otherwise the block end moves and
// so do the children at or after position.
func (b *Block[T]) ShiftStartingFrom(position, offset int) {
	if position < b.Start() || (position == b.Start() && offset >= 0) {
		b.Shift(offset)
		return
	}
	if position <= b.End() {
		b.Range.Expand(0, offset)
	}
	b.children.ShiftStartingFrom(position, offset)
}

// reflectChange fits the block to an edit that lies inside it. The children
// see the edit as well and drop the ones it damages.
func (b *Block[T]) reflectChange(change textrange.Change) {
	if change.Start < b.Start() || (change.Start == b.Start() && change.OldLength == 0) {
		b.Shift(change.Offset())
		return
	}
	b.Range.Expand(0, change.Offset())
	b.children.TextChanged(change)
}
