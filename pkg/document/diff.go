package document

import (
	"unicode/utf8"

	"github.com/henderiw/rangetable/pkg/textrange"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// SetText replaces the whole text with text. The difference with the current
// text is delivered to listeners as a sequence of incremental changes, so
// attached collections keep the items that the edit did not touch.
func (d *Document) SetText(text string) []textrange.Change {
	edits := Diff(d.Text(), text)
	changes := make([]textrange.Change, 0, len(edits))
	for _, e := range edits {
		d.apply(e)
		changes = append(changes, e.change())
	}
	return changes
}

// Diff returns the edits turning oldText into newText. Each edit is expressed
// against the text produced by the edits before it.
func Diff(oldText, newText string) []Edit {
	if oldText == newText {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldText, newText, false))

	var (
		edits   []Edit
		pending *Edit
		pos     int
	)
	flush := func() {
		if pending == nil {
			return
		}
		edits = append(edits, *pending)
		pos += utf8.RuneCountInString(pending.Text)
		pending = nil
	}
	for _, df := range diffs {
		n := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			pos += n
		case diffmatchpatch.DiffDelete:
			if pending == nil {
				pending = &Edit{Start: pos}
			}
			pending.OldLength += n
		case diffmatchpatch.DiffInsert:
			if pending == nil {
				pending = &Edit{Start: pos}
			}
			pending.Text += df.Text
		}
	}
	flush()
	return edits
}
