package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Item outcomes recorded by IncItem.
const (
	OutcomeStored    = "stored"
	OutcomeSeen      = "seen"
	OutcomeDuplicate = "duplicate"
	OutcomeMalformed = "malformed"
	OutcomeFailed    = "failed"
)

var (
	IngestRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_runs_total",
		Help: "Total ingestion calls by result",
	}, []string{"result"})
	IngestItems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_items_total",
		Help: "Feed items processed by outcome",
	}, []string{"outcome"})
	IngestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ingest_duration_seconds",
		Help:    "Ingestion call duration seconds",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(IngestRuns, IngestItems, IngestDuration)
}

// ObserveIngest records one finished ingestion call
func ObserveIngest(start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	IngestRuns.WithLabelValues(result).Inc()
	IngestDuration.Observe(time.Since(start).Seconds())
}

// IncItem increments the item counter for outcome.
func IncItem(outcome string) { IngestItems.WithLabelValues(outcome).Inc() }
