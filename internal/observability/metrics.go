package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// load-and-query lifecycle.
type Metrics struct {
	RecordsLoaded  prometheus.Counter
	RowsSkipped    *prometheus.CounterVec // label: reason={too_few_columns,bad_date,bad_number}
	LoadDuration   prometheus.Histogram
	DatasetRecords prometheus.Gauge

	// Query metrics.
	QueriesRun    *prometheus.CounterVec // label: query={view,wettest,trend}
	ChartsWritten prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clima",
			Name:      "records_loaded_total",
			Help:      "Total observation rows parsed into records.",
		}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clima",
			Name:      "rows_skipped_total",
			Help:      "Malformed rows dropped during load, by reason.",
		}, []string{"reason"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clima",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete read-and-parse pass over the source file.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "clima",
			Name:      "dataset_records",
			Help:      "Records held by the most recently loaded dataset.",
		}),
		QueriesRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clima",
			Name:      "queries_total",
			Help:      "Queries answered, by query kind.",
		}, []string{"query"}),
		ChartsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clima",
			Name:      "charts_written_total",
			Help:      "Chart images rendered to disk.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RowsSkipped,
		m.LoadDuration,
		m.DatasetRecords,
		m.QueriesRun,
		m.ChartsWritten,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "clima", Name: "records_loaded_total"}),
		RowsSkipped:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "clima", Name: "rows_skipped_total"}, []string{"reason"}),
		LoadDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "clima", Name: "load_duration_seconds"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "clima", Name: "dataset_records"}),
		QueriesRun:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "clima", Name: "queries_total"}, []string{"query"}),
		ChartsWritten:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "clima", Name: "charts_written_total"}),
	}
}
