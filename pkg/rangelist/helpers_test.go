package rangelist

import (
	"testing"

	"github.com/henderiw/rangetable/pkg/textrange"
	"github.com/stretchr/testify/require"
)

type bounds [2]int

func spanCollection(t *testing.T, bb ...bounds) *Collection[*textrange.Span] {
	t.Helper()
	items := make([]*textrange.Span, 0, len(bb))
	for _, b := range bb {
		s, err := textrange.NewSpan(b[0], b[1]-b[0], nil)
		require.NoError(t, err)
		items = append(items, s)
	}
	return NewFromItems(items)
}

func expandable(t *testing.T, start, end int, inc textrange.Inclusion) *textrange.ExpandableRange {
	t.Helper()
	r, err := textrange.NewExpandableRange(start, end-start, inc, nil)
	require.NoError(t, err)
	return r
}

func boundsOf[T textrange.Item](items []T) []bounds {
	out := make([]bounds, 0, len(items))
	for _, item := range items {
		out = append(out, bounds{item.Start(), item.End()})
	}
	return out
}

func collectionBounds[T textrange.Item](c *Collection[T]) []bounds {
	return boundsOf(c.Items())
}
