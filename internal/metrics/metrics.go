// Package metrics provides Prometheus metrics for the summary pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels stay low-cardinality: no video IDs or URLs.
var (
	// PipelineRunsTotal counts finished pipeline runs by outcome ("ok" or the failure kind).
	PipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caption_digest_pipeline_runs_total",
		Help: "Total number of pipeline runs, by outcome.",
	}, []string{"outcome"})

	// PipelineStageSeconds observes how long each pipeline stage took.
	PipelineStageSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "caption_digest_pipeline_stage_seconds",
		Help:    "Duration of pipeline stages in seconds, by stage.",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"stage"})

	// PipelineInFlight is 1 while a run holds the pipeline.
	PipelineInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "caption_digest_pipeline_in_flight",
		Help: "Number of pipeline runs currently executing.",
	})

	// PipelineWaiting counts submissions queued behind the running one.
	PipelineWaiting = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "caption_digest_pipeline_waiting",
		Help: "Number of submissions waiting for the pipeline.",
	})
)

// RecordRun increments the run counter for outcome.
func RecordRun(outcome string) {
	PipelineRunsTotal.WithLabelValues(outcome).Inc()
}

// ObserveStage records the time spent in stage since start.
func ObserveStage(stage string, start time.Time) {
	PipelineStageSeconds.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
