// Package metrics instruments ceiling engine queries with Prometheus.
package metrics

import (
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Registry holds the engine metrics on a private Prometheus registry.
type Registry struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	ConstrainedSkills prometheus.Gauge
	KnownCeilings     prometheus.Gauge
	CeilingCoverage   prometheus.Gauge
	AssessedSkills    prometheus.Gauge
	IgnoredSkills     prometheus.Counter

	TaxonomySkills *prometheus.GaugeVec
	TaxonomyEdges  prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initQueryMetrics()
	r.initSnapshotMetrics()
	r.initTaxonomyMetrics()
	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "devmap_queries_total",
			Help: "Total number of engine queries",
		},
		[]string{"operation"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devmap_query_duration_seconds",
			Help:    "Engine query duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"operation"},
	)
}

func (r *Registry) initSnapshotMetrics() {
	r.ConstrainedSkills = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "devmap_constrained_skills",
			Help: "Skills assessed above their ceiling in the last snapshot",
		},
	)

	r.KnownCeilings = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "devmap_known_ceilings",
			Help: "Skills whose ceiling is fully determined by the last snapshot",
		},
	)

	r.CeilingCoverage = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "devmap_ceiling_coverage_ratio",
			Help: "Share of skills with a known ceiling (0..1)",
		},
	)

	r.AssessedSkills = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "devmap_assessed_skills",
			Help: "Skills present in the last snapshot",
		},
	)

	r.IgnoredSkills = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "devmap_ignored_snapshot_keys_total",
			Help: "Snapshot keys dropped because the taxonomy has no such skill",
		},
	)
}

func (r *Registry) initTaxonomyMetrics() {
	r.TaxonomySkills = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "devmap_taxonomy_skills",
			Help: "Number of skills in the taxonomy per domain",
		},
		[]string{"domain"},
	)

	r.TaxonomyEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "devmap_taxonomy_edges",
			Help: "Number of direct prerequisite edges in the taxonomy",
		},
	)
}

// RecordQuery records one engine query.
func (r *Registry) RecordQuery(operation string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(operation).Inc()
	r.QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateSnapshot records the per-snapshot gauges.
func (r *Registry) UpdateSnapshot(assessed, constrained, knownCeilings int, coverage float64) {
	r.AssessedSkills.Set(float64(assessed))
	r.ConstrainedSkills.Set(float64(constrained))
	r.KnownCeilings.Set(float64(knownCeilings))
	r.CeilingCoverage.Set(coverage)
}

// RecordIgnored counts snapshot keys dropped at the boundary.
func (r *Registry) RecordIgnored(n int) {
	r.IgnoredSkills.Add(float64(n))
}

// SetTaxonomySize records skill counts per domain and the edge count.
func (r *Registry) SetTaxonomySize(skillsPerDomain map[string]int, edges int) {
	r.TaxonomySkills.Reset()
	for domain, n := range skillsPerDomain {
		r.TaxonomySkills.WithLabelValues(domain).Set(float64(n))
	}
	r.TaxonomyEdges.Set(float64(edges))
}

// Gather returns the current metric families.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
