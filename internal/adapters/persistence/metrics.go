package persistence

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for disk activity. A nil *Metrics
// records nothing.
type Metrics struct {
	saveDuration prometheus.Histogram
	saveFailures prometheus.Counter
	skipped      prometheus.Counter
	loads        *prometheus.CounterVec
	version      prometheus.Gauge
}

// NewMetrics creates the persistence collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		saveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "phonebook_save_duration_seconds",
			Help:    "Time spent rewriting the phonebook file",
			Buckets: prometheus.DefBuckets,
		}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_save_failures_total",
			Help: "Number of failed phonebook file rewrites",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_save_skipped_total",
			Help: "Snapshots not written because a newer one was already on disk",
		}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebook_loads_total",
			Help: "Number of phonebook file loads by result",
		}, []string{"result"}),
		version: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "phonebook_persisted_version",
			Help: "Version of the last snapshot written to disk",
		}),
	}
	reg.MustRegister(m.saveDuration, m.saveFailures, m.skipped, m.loads, m.version)
	return m
}

func (m *Metrics) observeSave(d time.Duration, version uint64, err error) {
	if m == nil {
		return
	}
	m.saveDuration.Observe(d.Seconds())
	if err != nil {
		m.saveFailures.Inc()
		return
	}
	m.version.Set(float64(version))
}

func (m *Metrics) observeSkip() {
	if m == nil {
		return
	}
	m.skipped.Inc()
}

func (m *Metrics) observeLoad(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.loads.WithLabelValues(result).Inc()
}
