// Package metrics holds the Prometheus collectors for the reconciliation pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the pipeline counters and gauges.
type Metrics struct {
	Uploads        *prometheus.CounterVec
	RowsSkipped    *prometheus.CounterVec
	MergedRecords  prometheus.Counter
	Unmatched      prometheus.Counter
	DocumentsPlan  prometheus.Counter
	ActiveSessions prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billrecon",
			Name:      "uploads_total",
			Help:      "Spreadsheet uploads by file kind and outcome.",
		}, []string{"file", "outcome"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billrecon",
			Name:      "rows_skipped_total",
			Help:      "Data rows dropped during parsing, by file kind.",
		}, []string{"file"}),
		MergedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billrecon",
			Name:      "merged_records_total",
			Help:      "Merged invoice records produced.",
		}),
		Unmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billrecon",
			Name:      "unmatched_records_total",
			Help:      "Merged records that received a synthetic customer.",
		}),
		DocumentsPlan: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billrecon",
			Name:      "documents_planned_total",
			Help:      "Document jobs planned for rendering.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "billrecon",
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
	}
	reg.MustRegister(m.Uploads, m.RowsSkipped, m.MergedRecords, m.Unmatched, m.DocumentsPlan, m.ActiveSessions)
	return m
}
