package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records state-engine activity: mutations per store,
// persistence failures, and catalog query latency.
type StoreMetrics struct {
	mutations      *prometheus.CounterVec
	persistFailure *prometheus.CounterVec
	queryDuration  prometheus.Histogram
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "State mutations applied, by store and operation.",
	}, []string{"store", "op"})
	persistFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Write-through persistence failures, by store.",
	}, []string{"store"})
	queryDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Duration of catalog query pipeline runs in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(mutations, persistFailure, queryDuration)
	return &StoreMetrics{
		mutations:      mutations,
		persistFailure: persistFailure,
		queryDuration:  queryDuration,
	}
}

// IncMutation counts one applied mutation for the named store.
func (m *StoreMetrics) IncMutation(store, op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncPersistFailure counts one failed write-through for the named store.
func (m *StoreMetrics) IncPersistFailure(store string) {
	if m == nil || m.persistFailure == nil {
		return
	}
	m.persistFailure.WithLabelValues(normalizeLabel(store)).Inc()
}

// ObserveQueryDuration records one catalog pipeline run.
func (m *StoreMetrics) ObserveQueryDuration(duration time.Duration) {
	if m == nil || m.queryDuration == nil {
		return
	}
	m.queryDuration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
