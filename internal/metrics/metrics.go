// Package metrics exposes Prometheus metrics for the hearing scheduler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's own prometheus registry, served at /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// CompileDuration tracks how long a full schedule compilation takes.
var CompileDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scheduler",
	Name:      "compile_duration_seconds",
	Help:      "Time taken to compile the full hearing schedule",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// ComplaintsTotal is the size of the complaint list fed to the last compile.
var ComplaintsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "complaints_total",
	Help:      "Complaints supplied to the last schedule compilation",
})

// HearingsManual counts persisted manual hearings at the last compile.
var HearingsManual = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "hearings_manual",
	Help:      "Manual hearings present at the last schedule compilation",
})

// HearingsAutomatic counts compiler-generated placements in the last compile.
var HearingsAutomatic = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "hearings_automatic",
	Help:      "Automatic hearings generated by the last schedule compilation",
})

// ComplaintsUnplaced counts complaints left pending because the 365-day
// horizon ran out of capacity. High values indicate a structural backlog.
var ComplaintsUnplaced = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "complaints_unplaced",
	Help:      "Complaints that did not fit inside the scheduling horizon",
})

// FetchFailures counts degraded reads against the remote store by source.
var FetchFailures = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "store",
	Name:      "fetch_failures_total",
	Help:      "Remote fetches that degraded to an empty collection",
}, []string{"source"})
