package textrange

import (
	"fmt"
	"math"
)

// Range is a half-open interval [start, end) over buffer offsets.
// The zero value is the empty sentinel, which is not valid.
type Range struct {
	start int
	end   int
}

// New returns the range [start, start+length).
func New(start, length int) (Range, error) {
	if length < 0 {
		return Range{}, fmt.Errorf("%w: negative length %d", ErrInvalidRange, length)
	}
	if start > math.MaxInt-length {
		return Range{}, fmt.Errorf("%w: start %d length %d overflows", ErrInvalidRange, start, length)
	}
	return FromBounds(start, start+length)
}

// FromBounds returns the range [start, end).
func FromBounds(start, end int) (Range, error) {
	switch {
	case start < 0:
		return Range{}, fmt.Errorf("%w: negative start %d", ErrInvalidRange, start)
	case end < start:
		return Range{}, fmt.Errorf("%w: end %d before start %d", ErrInvalidRange, end, start)
	case start == math.MaxInt || end == math.MaxInt:
		return Range{}, fmt.Errorf("%w: bound %d-%d out of range", ErrInvalidRange, start, end)
	}
	return Range{start: start, end: end}, nil
}

// MustFromBounds is like FromBounds but panics on invalid bounds.
func MustFromBounds(start, end int) Range {
	r, err := FromBounds(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// EmptyRange returns the invalid sentinel range.
func EmptyRange() Range { return Range{} }

func (r Range) Start() int  { return r.start }
func (r Range) End() int    { return r.end }
func (r Range) Length() int { return r.end - r.start }

// Bounds returns a copy of r; it lets a Range be used where a value view is needed.
func (r Range) Bounds() Range { return r }

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.start, r.end)
}

// IsZero reports whether r is the empty sentinel.
func (r Range) IsZero() bool {
	return r == Range{}
}

// Contains returns whether start <= position < end.
func (r Range) Contains(position int) bool {
	return r.start <= position && position < r.end
}

// ContainsRange returns whether other lies inside r without being equal to it.
// An empty container never contains anything.
func (r Range) ContainsRange(other Range) bool {
	if r.Length() == 0 || r == other {
		return false
	}
	return r.start <= other.start && other.end <= r.end
}

// Less orders ranges by start, then by end.
func (r Range) Less(other Range) bool {
	if r.start != other.start {
		return r.start < other.start
	}
	return r.end < other.end
}

// EntirelyBefore returns whether r ends at or before the start of other.
func (r Range) EntirelyBefore(other Range) bool {
	return r.end <= other.start
}

// CoveredBy returns whether r is entirely within other, edges included.
func (r Range) CoveredBy(other Range) bool {
	return other.start <= r.start && r.end <= other.end
}

// OverlapsStartOf returns whether r overlaps the start of other, but not all of other.
func (r Range) OverlapsStartOf(other Range) bool {
	return r.start <= other.start && other.start < r.end && r.end < other.end
}

// OverlapsEndOf returns whether r overlaps the end of other, but not all of other.
func (r Range) OverlapsEndOf(other Range) bool {
	return other.start < r.start && r.start < other.end && other.end <= r.end
}

// Shift moves r by offset, keeping its length.
func (r *Range) Shift(offset int) {
	r.start += offset
	r.end += offset
}

// Expand moves the start of r by startDelta and the end by endDelta.
func (r *Range) Expand(startDelta, endDelta int) {
	r.start += startDelta
	r.end += endDelta
}

// Empty resets r to the invalid sentinel.
func (r *Range) Empty() {
	r.start, r.end = 0, 0
}

// IsValid returns whether r has a positive length.
func IsValid(r Range) bool {
	return r.Length() > 0
}

// AreEqual compares two ranges structurally. A nil operand only equals itself.
func AreEqual(a, b *Range) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Intersect returns whether a and b share at least one position.
//
// Abutting ranges do not intersect. A zero-length range intersects any range
// touching its point, boundaries included, so a zero-length range sitting on a
// seam intersects both neighbours.
func Intersect(a, b Range) bool {
	switch {
	case a.Length() == 0 && b.Length() == 0:
		return a.start == b.start
	case a.Length() == 0:
		return b.start <= a.start && a.start <= b.end
	case b.Length() == 0:
		return a.start <= b.start && b.start <= a.end
	}
	return a.start < b.end && b.start < a.end
}
