package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/henderiw/rangetable/pkg/document"
	"github.com/henderiw/rangetable/pkg/rangelist"
	"github.com/henderiw/rangetable/pkg/textrange"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var tokens = []struct {
	start  int
	end    int
	labels map[string]string
}{
	{start: 0, end: 3, labels: map[string]string{"kind": "keyword"}},
	{start: 4, end: 7, labels: map[string]string{"kind": "ident"}},
	{start: 8, end: 9, labels: map[string]string{"kind": "op"}},
	{start: 10, end: 12, labels: map[string]string{"kind": "number"}},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc, err := document.New("var abc = 42", document.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	spans := rangelist.New(
		rangelist.WithLogger[*textrange.Span](logger),
		rangelist.WithRemovedHandler(func(removed []*textrange.Span) {
			for _, s := range removed {
				fmt.Println("removed", s)
			}
		}),
	)
	for _, tok := range tokens {
		s, err := textrange.NewSpan(tok.start, tok.end-tok.start, tok.labels)
		if err != nil {
			panic(err)
		}
		spans.Add(s)
	}
	spans.Sort()

	// the statement grows with whatever is typed at its end
	stmt, err := textrange.NewExpandableRange(0, doc.Len(), textrange.Inclusion{EndInclusive: true}, map[string]string{"kind": "statement"})
	if err != nil {
		panic(err)
	}
	statements := rangelist.NewFromItems([]*textrange.ExpandableRange{stmt}, rangelist.WithLogger[*textrange.ExpandableRange](logger))

	if err := doc.Attach("spans", spans); err != nil {
		panic(err)
	}
	if err := doc.Attach("statements", statements); err != nil {
		panic(err)
	}

	dump(doc, spans)

	if err := doc.Insert(0, "  "); err != nil {
		panic(err)
	}
	if err := doc.Replace(7, 1, "x"); err != nil {
		panic(err)
	}
	if err := doc.Insert(doc.Len(), ";"); err != nil {
		panic(err)
	}
	dump(doc, spans)

	doc.SetText("  var abx = 4200;")
	dump(doc, spans)
	fmt.Println("statement", statements.At(0))

	ls, err := GetLabelSelector(map[string]string{"kind": "keyword"})
	if err != nil {
		panic(err)
	}
	for _, s := range spans.Select(ls) {
		fmt.Println("by label", s)
	}

	idx := spans.GetItemContaining(3)
	fmt.Println("containing 3", idx)
	if idx = spans.GetFirstItemAfterOrAtPosition(8); idx != rangelist.NotFound {
		fmt.Println("first after or at 8", spans.At(idx))
	}
}

func dump(doc *document.Document, spans *rangelist.Collection[*textrange.Span]) {
	fmt.Printf("text %q\n", doc.Text())
	it := spans.Iterate()
	for it.Next() {
		text, err := doc.Slice(textrange.BoundsOf(it.Value()))
		if err != nil {
			panic(err)
		}
		fmt.Println("span", it.Value(), fmt.Sprintf("%q", text), "adjacent", it.IsAdjacent())
	}
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
