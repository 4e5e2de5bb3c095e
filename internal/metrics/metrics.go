// Package metrics holds the Prometheus instruments for record loads and
// draft commits.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Store metrics
	LoadsTotal    *prometheus.CounterVec
	RecordsLoaded prometheus.Gauge

	// Edit metrics
	CommitsTotal   *prometheus.CounterVec
	CommitDuration prometheus.Histogram
	PendingDrafts  prometheus.Gauge
	EditsTotal     prometheus.Counter
}

// New creates the metrics and registers them with reg. A nil reg creates a
// private registry so that several instances can coexist, as in tests.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		LoadsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contactdesk_loads_total",
				Help: "Total number of record store loads",
			},
			[]string{"result"},
		),
		RecordsLoaded: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "contactdesk_records_loaded",
				Help: "Number of records in the canonical collection",
			},
		),
		CommitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contactdesk_commits_total",
				Help: "Total number of draft batch commits",
			},
			[]string{"result"},
		),
		CommitDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "contactdesk_commit_duration_seconds",
				Help:    "Duration of the save call for a draft batch",
				Buckets: prometheus.DefBuckets,
			},
		),
		PendingDrafts: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "contactdesk_pending_drafts",
				Help: "Number of records with uncommitted drafts",
			},
		),
		EditsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "contactdesk_field_edits_total",
				Help: "Total number of field edits recorded",
			},
		),
	}
}

// ObserveLoad counts one load and, on success, records the collection size.
func (m *Metrics) ObserveLoad(n int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.LoadsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.LoadsTotal.WithLabelValues(ResultSuccess).Inc()
	m.RecordsLoaded.Set(float64(n))
}

// ObserveCommit counts one commit and its save duration in seconds.
func (m *Metrics) ObserveCommit(seconds float64, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.CommitsTotal.WithLabelValues(result).Inc()
	m.CommitDuration.Observe(seconds)
}

// SetPending records the number of records with drafts.
func (m *Metrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.PendingDrafts.Set(float64(n))
}

// ObserveEdit counts one recorded field edit.
func (m *Metrics) ObserveEdit() {
	if m == nil {
		return
	}
	m.EditsTotal.Inc()
}
