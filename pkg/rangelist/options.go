package rangelist

import (
	"io"
	"log/slog"

	"github.com/henderiw/rangetable/pkg/textrange"
)

// Option configures a Collection during creation.
type Option[T textrange.Item] func(*Collection[T])

// WithLogger sets the logger used for debug records.
func WithLogger[T textrange.Item](l *slog.Logger) Option[T] {
	return func(c *Collection[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRemovedHandler registers a callback receiving the items dropped by every
// change delivered through TextChanged.
func WithRemovedHandler[T textrange.Item](fn func(removed []T)) Option[T] {
	return func(c *Collection[T]) {
		c.onRemoved = fn
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
