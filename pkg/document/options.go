package document

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Document during creation.
type Option func(*Document)

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRegisterer registers the document metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(d *Document) {
		d.registerer = reg
	}
}

// WithMetricsNamespace sets the namespace of the document metrics.
func WithMetricsNamespace(ns string) Option {
	return func(d *Document) {
		if ns != "" {
			d.namespace = ns
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
