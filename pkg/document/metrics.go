package document

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMetricsNamespace is used when WithMetricsNamespace is not given.
const DefaultMetricsNamespace = "rangetable"

type metrics struct {
	changes  *prometheus.CounterVec
	inserted prometheus.Counter
	deleted  prometheus.Counter
	rejected prometheus.Counter
}

func newMetrics(ns string) *metrics {
	return &metrics{
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "document",
				Name:      "changes_total",
				Help:      "Text changes applied, by kind.",
			},
			[]string{"kind"},
		),
		inserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "document",
			Name:      "inserted_runes_total",
			Help:      "Runes inserted into the document.",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "document",
			Name:      "deleted_runes_total",
			Help:      "Runes deleted from the document.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "document",
			Name:      "rejected_changes_total",
			Help:      "Changes refused because they fell outside the text.",
		}),
	}
}

// register adds every collector to reg. On failure the collectors that did
// register are removed again, leaving reg as it was.
func (m *metrics) register(reg prometheus.Registerer) error {
	var (
		errm       error
		registered []prometheus.Collector
	)
	for _, c := range []prometheus.Collector{m.changes, m.inserted, m.deleted, m.rejected} {
		if err := reg.Register(c); err != nil {
			errm = errors.Join(errm, fmt.Errorf("register document metric: %w", err))
			continue
		}
		registered = append(registered, c)
	}
	if errm != nil {
		for _, c := range registered {
			reg.Unregister(c)
		}
	}
	return errm
}

func changeKind(oldLength, newLength int) string {
	switch {
	case oldLength == 0:
		return "insert"
	case newLength == 0:
		return "delete"
	default:
		return "replace"
	}
}

func (m *metrics) observe(oldLength, newLength int) {
	m.changes.WithLabelValues(changeKind(oldLength, newLength)).Inc()
	m.inserted.Add(float64(newLength))
	m.deleted.Add(float64(oldLength))
}
