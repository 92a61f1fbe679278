package classify

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	classifications *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sqlfault",
		Name:      "classifications_total",
		Help:      "Database failures classified, by kind.",
	}, []string{"kind"})

	if reg != nil {
		if err := reg.Register(counter); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
					counter = existing
				}
			}
		}
	}
	return &metrics{classifications: counter}
}

func (m *metrics) observe(kind Kind) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(kind.String()).Inc()
}
