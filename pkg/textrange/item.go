package textrange

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
)

// Item is anything positioned over the buffer that a collection can hold.
// Items are mutated in place and must be owned by a single collection.
type Item interface {
	Start() int
	End() int
	Length() int
	Shift(offset int)
}

// Expandable items grow and shrink in place and declare whether edits landing
// exactly on their boundaries belong to them.
type Expandable interface {
	Item
	AllowZeroLength() bool
	IsStartInclusive() bool
	IsEndInclusive() bool
	Expand(startDelta, endDelta int)
}

// Composite items own nested items and shift them recursively.
type Composite interface {
	Item
	ShiftStartingFrom(position, offset int)
}

// Labeled items carry a label set used for selection.
type Labeled interface {
	Labels() labels.Set
}

// BoundsOf returns the range currently covered by item.
func BoundsOf(item Item) Range {
	return Range{start: item.Start(), end: item.End()}
}

// ContainsUsingInclusion returns whether position belongs to item once the
// item's inclusion flags are taken into account.
//
// Expandable items own their interior, their start when start inclusive (or
// when they are empty and allowed to be), and their end when end inclusive.
// Every other item uses half-open containment.
func ContainsUsingInclusion(item Item, position int) bool {
	e, ok := item.(Expandable)
	if !ok {
		return item.Start() <= position && position < item.End()
	}
	start, end := e.Start(), e.End()
	switch {
	case start < position && position < end:
		return true
	case position == start && (e.IsStartInclusive() || (start == end && e.AllowZeroLength())):
		return true
	case position == end && e.IsEndInclusive():
		return true
	}
	return false
}

// Span is a plain item: it moves with the text but never grows.
type Span struct {
	Range
	labels labels.Set
}

// NewSpan returns a span over [start, start+length).
func NewSpan(start, length int, l labels.Set) (*Span, error) {
	r, err := New(start, length)
	if err != nil {
		return nil, err
	}
	return &Span{Range: r, labels: l}, nil
}

// Labels returns the span labels; never nil.
func (s *Span) Labels() labels.Set {
	if s.labels == nil {
		return labels.Set{}
	}
	return s.labels
}

func (s *Span) String() string {
	if len(s.labels) == 0 {
		return s.Range.String()
	}
	return fmt.Sprintf("%s %s", s.Range.String(), s.labels.String())
}

// Inclusion describes how an ExpandableRange treats its boundaries.
type Inclusion struct {
	AllowZeroLength bool
	StartInclusive  bool
	EndInclusive    bool
}

// ExpandableRange is a span that grows when text is typed inside it, or on an
// inclusive boundary.
type ExpandableRange struct {
	Span
	inclusion Inclusion
}

// NewExpandableRange returns an expandable range over [start, start+length).
func NewExpandableRange(start, length int, inc Inclusion, l labels.Set) (*ExpandableRange, error) {
	s, err := NewSpan(start, length, l)
	if err != nil {
		return nil, err
	}
	return &ExpandableRange{Span: *s, inclusion: inc}, nil
}

func (r *ExpandableRange) AllowZeroLength() bool  { return r.inclusion.AllowZeroLength }
func (r *ExpandableRange) IsStartInclusive() bool { return r.inclusion.StartInclusive }
func (r *ExpandableRange) IsEndInclusive() bool   { return r.inclusion.EndInclusive }
