// Package metrics defines the Prometheus collectors of the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Toggle results.
const (
	ToggleSaved      = "saved"
	ToggleRolledBack = "rolled_back"
	ToggleRejected   = "rejected"
)

// Metrics groups the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	Toggles       *prometheus.CounterVec
	GroupsCreated *prometheus.CounterVec
	BoardLoads    prometheus.Counter
	FullDays      prometheus.Histogram
}

// New creates the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quando",
			Name:      "selection_toggles_total",
			Help:      "Availability toggles by result.",
		}, []string{"result"}),
		GroupsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quando",
			Name:      "groups_created_total",
			Help:      "Group registrations by backend and whether the backend accepted them.",
		}, []string{"backend", "stored"}),
		BoardLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quando",
			Name:      "board_loads_total",
			Help:      "Boards loaded from storage.",
		}),
		FullDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quando",
			Name:      "board_full_days",
			Help:      "Fully selected days per loaded board.",
			Buckets:   prometheus.LinearBuckets(0, 1, 15),
		}),
	}
	reg.MustRegister(
		m.Toggles,
		m.GroupsCreated,
		m.BoardLoads,
		m.FullDays,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
