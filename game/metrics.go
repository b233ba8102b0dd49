package game

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "oaktools"

// Metrics counts tool usage. A nil *Metrics records nothing.
type Metrics struct {
	edits      *prometheus.CounterVec
	placements *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edits_total",
			Help:      "Block states changed by the file, by category.",
		}, []string{"category"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "placements_total",
			Help:      "Trowel uses by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.edits, m.placements)
	}
	return m
}

func (m *Metrics) edit(category string) {
	if m == nil {
		return
	}
	m.edits.WithLabelValues(category).Inc()
}

func (m *Metrics) placement(outcome string) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(outcome).Inc()
}
