// Package document holds the text that range collections describe and
// forwards every edit to them as a textrange.Change.
//
// Offsets are rune indices. A Document has a single writer; it does no
// locking of its own.
package document

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/henderiw/rangetable/pkg/textrange"
	"github.com/prometheus/client_golang/prometheus"
)

// Listener is notified of each change after it has been applied to the text.
type Listener interface {
	TextChanged(change textrange.Change)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(change textrange.Change)

func (f ListenerFunc) TextChanged(change textrange.Change) { f(change) }

// Edit replaces OldLength runes at Start with Text.
type Edit struct {
	Start     int
	OldLength int
	Text      string
}

func (e Edit) change() textrange.Change {
	return textrange.Change{
		Start:     e.Start,
		OldLength: e.OldLength,
		NewLength: utf8.RuneCountInString(e.Text),
	}
}

type attachedListener struct {
	name     string
	listener Listener
}

type Document struct {
	text       []rune
	listeners  []attachedListener
	logger     *slog.Logger
	registerer prometheus.Registerer
	namespace  string
	metrics    *metrics
}

// New returns a document holding text.
func New(text string, opts ...Option) (*Document, error) {
	d := &Document{
		text:      []rune(text),
		logger:    discardLogger(),
		namespace: DefaultMetricsNamespace,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.metrics = newMetrics(d.namespace)
	if d.registerer != nil {
		if err := d.metrics.register(d.registerer); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Document) Text() string { return string(d.text) }

// Len returns the length of the text in runes.
func (d *Document) Len() int { return len(d.text) }

// Slice returns the text covered by r.
func (d *Document) Slice(r textrange.Range) (string, error) {
	if r.Start() < 0 || r.End() > len(d.text) {
		return "", fmt.Errorf("%w: %s beyond length %d", ErrOffsetOutOfRange, r, len(d.text))
	}
	return string(d.text[r.Start():r.End()]), nil
}

// Attach registers l under name. Listeners are notified in attach order.
func (d *Document) Attach(name string, l Listener) error {
	for _, a := range d.listeners {
		if a.name == name {
			return fmt.Errorf("%w: %s", ErrListenerExists, name)
		}
	}
	d.listeners = append(d.listeners, attachedListener{name: name, listener: l})
	return nil
}

// Detach removes the listener registered under name, if any.
func (d *Document) Detach(name string) {
	for i, a := range d.listeners {
		if a.name == name {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Insert adds text at position.
func (d *Document) Insert(position int, text string) error {
	return d.Replace(position, 0, text)
}

// Delete removes length runes at start.
func (d *Document) Delete(start, length int) error {
	return d.Replace(start, length, "")
}

// Replace replaces oldLength runes at start with text and notifies listeners.
func (d *Document) Replace(start, oldLength int, text string) error {
	e := Edit{Start: start, OldLength: oldLength, Text: text}
	if err := validate(e, len(d.text)); err != nil {
		d.metrics.rejected.Inc()
		return err
	}
	d.apply(e)
	return nil
}

// ApplyEdits applies edits in order. Every edit is checked against the text
// as it will be when its turn comes; if any is invalid nothing is applied.
func (d *Document) ApplyEdits(edits ...Edit) error {
	var errm error
	length := len(d.text)
	for i, e := range edits {
		if err := validate(e, length); err != nil {
			errm = errors.Join(errm, fmt.Errorf("edit %d: %w", i, err))
			continue
		}
		length += e.change().Offset()
	}
	if errm != nil {
		d.metrics.rejected.Add(float64(len(edits)))
		return errm
	}
	for _, e := range edits {
		d.apply(e)
	}
	return nil
}

func validate(e Edit, length int) error {
	c := e.change()
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OldEnd() > length {
		return fmt.Errorf("%w: %s beyond length %d", ErrOffsetOutOfRange, c, length)
	}
	return nil
}

func (d *Document) apply(e Edit) {
	c := e.change()
	if c.IsNoop() {
		return
	}
	inserted := []rune(e.Text)
	text := make([]rune, 0, len(d.text)+c.Offset())
	text = append(text, d.text[:c.Start]...)
	text = append(text, inserted...)
	text = append(text, d.text[c.OldEnd():]...)
	d.text = text

	d.metrics.observe(c.OldLength, c.NewLength)
	d.logger.Debug("text changed",
		slog.Int("start", c.Start),
		slog.Int("oldLength", c.OldLength),
		slog.Int("newLength", c.NewLength),
		slog.Int("listeners", len(d.listeners)),
	)
	for _, a := range d.listeners {
		a.listener.TextChanged(c)
	}
}
