package textrange

import (
	"errors"
	"math"
	"testing"

	"github.com/tj/assert"
)

func TestFromBounds(t *testing.T) {
	cases := map[string]struct {
		start, end  int
		expectedErr bool
	}{
		"Normal":      {start: 1, end: 4},
		"ZeroLength":  {start: 3, end: 3},
		"Inverted":    {start: 4, end: 1, expectedErr: true},
		"NegStart":    {start: -1, end: 2, expectedErr: true},
		"MaxSentinel": {start: 0, end: math.MaxInt, expectedErr: true},
		"MinSentinel": {start: math.MinInt, end: 0, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := FromBounds(tc.start, tc.end)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.start, r.Start())
			assert.Equal(t, tc.end, r.End())
			assert.Equal(t, tc.end-tc.start, r.Length())
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(1, -1)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = New(math.MaxInt-1, 5)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	r, err := New(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, "[2:5)", r.String())
}

func TestContains(t *testing.T) {
	for _, r := range []Range{MustFromBounds(0, 1), MustFromBounds(3, 9), MustFromBounds(10, 11)} {
		assert.True(t, r.Contains(r.Start()), r.String())
		assert.False(t, r.Contains(r.End()), r.String())
		assert.False(t, r.Contains(r.Start()-1), r.String())
	}
	assert.False(t, MustFromBounds(3, 3).Contains(3))
}

func TestContainsRange(t *testing.T) {
	cases := map[string]struct {
		container Range
		other     Range
		expected  bool
	}{
		"Inside":          {container: MustFromBounds(1, 10), other: MustFromBounds(2, 5), expected: true},
		"SharedStart":     {container: MustFromBounds(1, 10), other: MustFromBounds(1, 5), expected: true},
		"SharedEnd":       {container: MustFromBounds(1, 10), other: MustFromBounds(5, 10), expected: true},
		"Equal":           {container: MustFromBounds(1, 10), other: MustFromBounds(1, 10), expected: false},
		"Overhang":        {container: MustFromBounds(1, 10), other: MustFromBounds(5, 11), expected: false},
		"ZeroProbe":       {container: MustFromBounds(1, 10), other: MustFromBounds(4, 4), expected: true},
		"EmptyContainer":  {container: MustFromBounds(4, 4), other: MustFromBounds(4, 4), expected: false},
		"EmptyContainer2": {container: MustFromBounds(4, 4), other: EmptyRange(), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.container.ContainsRange(tc.other))
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := map[string]struct {
		a, b     Range
		expected bool
	}{
		"Overlap":         {a: MustFromBounds(1, 5), b: MustFromBounds(4, 8), expected: true},
		"Abutting":        {a: MustFromBounds(1, 5), b: MustFromBounds(5, 8), expected: false},
		"Disjoint":        {a: MustFromBounds(1, 2), b: MustFromBounds(5, 8), expected: false},
		"Nested":          {a: MustFromBounds(1, 9), b: MustFromBounds(4, 5), expected: true},
		"ZeroOnLeftSeam":  {a: MustFromBounds(1, 5), b: MustFromBounds(5, 5), expected: true},
		"ZeroOnRightSeam": {a: MustFromBounds(5, 5), b: MustFromBounds(5, 8), expected: true},
		"ZeroOutside":     {a: MustFromBounds(9, 9), b: MustFromBounds(5, 8), expected: false},
		"BothZeroSame":    {a: MustFromBounds(3, 3), b: MustFromBounds(3, 3), expected: true},
		"BothZeroApart":   {a: MustFromBounds(3, 3), b: MustFromBounds(4, 4), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Intersect(tc.a, tc.b))
			assert.Equal(t, tc.expected, Intersect(tc.b, tc.a))
		})
	}
}

func TestShiftExpandEmpty(t *testing.T) {
	r := MustFromBounds(2, 5)
	r.Shift(3)
	assert.Equal(t, MustFromBounds(5, 8), r)

	r.Expand(-1, 2)
	assert.Equal(t, MustFromBounds(4, 10), r)

	assert.True(t, IsValid(r))
	r.Empty()
	assert.True(t, r.IsZero())
	assert.False(t, IsValid(r))
	assert.False(t, IsValid(MustFromBounds(7, 7)))
}

func TestAreEqual(t *testing.T) {
	a := MustFromBounds(1, 3)
	b := MustFromBounds(1, 3)
	c := MustFromBounds(1, 4)

	assert.True(t, AreEqual(&a, &b))
	assert.True(t, AreEqual(&a, &a))
	assert.False(t, AreEqual(&a, &c))
	assert.False(t, AreEqual(&a, nil))
	assert.False(t, AreEqual(nil, &b))
	assert.True(t, AreEqual(nil, nil))
}

func TestPredicates(t *testing.T) {
	r := MustFromBounds(5, 10)

	assert.True(t, MustFromBounds(1, 5).EntirelyBefore(r))
	assert.False(t, MustFromBounds(1, 6).EntirelyBefore(r))
	assert.True(t, MustFromBounds(5, 10).CoveredBy(r))
	assert.True(t, MustFromBounds(3, 7).OverlapsStartOf(r))
	assert.False(t, MustFromBounds(3, 10).OverlapsStartOf(r))
	assert.True(t, MustFromBounds(7, 12).OverlapsEndOf(r))
	assert.False(t, MustFromBounds(5, 12).OverlapsEndOf(r))
	assert.True(t, MustFromBounds(5, 7).Less(r))
	assert.True(t, MustFromBounds(4, 12).Less(r))
}
