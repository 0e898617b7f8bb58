// Package metrics records Prometheus metrics for generation runs and can
// push them to a Pushgateway when a command finishes. medallion is a batch
// CLI, so metrics are pushed rather than scraped.
//
// # Basic Usage
//
//	rec := metrics.NewRecorder()
//	rec.RecordsGenerated("gold", 2500)
//	timer := rec.Timer("gold", metrics.StageUpload)
//	err := upload()
//	timer.ObserveDuration()
//	rec.RunFinished("gold", err)
//	_ = rec.Push(ctx, "http://pushgateway:9091", "medallion")
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Namespace prefixes every metric name
const Namespace = "medallion"

// Run stages
const (
	StageGenerate  = "generate"
	StageSerialize = "serialize"
	StageUpload    = "upload"
)

// Run outcomes
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder owns a private registry so tests and concurrent commands never
// collide on the default one.
type Recorder struct {
	registry *prometheus.Registry

	recordsGenerated *prometheus.CounterVec
	payloadBytes     *prometheus.HistogramVec
	stageDuration    *prometheus.HistogramVec
	runs             *prometheus.CounterVec
	buckets          *prometheus.CounterVec
}

// NewRecorder creates a recorder with all metrics registered
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		recordsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_generated_total",
			Help:      "Records generated per zone",
		}, []string{"zone"}),
		payloadBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "payload_bytes",
			Help:      "Size of uploaded payloads",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 2, 10),
		}, []string{"zone", "format"}),
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each run stage",
			Buckets:   prometheus.DefBuckets,
		}, []string{"zone", "stage"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Zone runs by outcome",
		}, []string{"zone", "status"}),
		buckets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "buckets_provisioned_total",
			Help:      "Bucket provisioning outcomes",
		}, []string{"status"}),
	}
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// RecordsGenerated adds n generated records for zone
func (r *Recorder) RecordsGenerated(zone string, n int) {
	r.recordsGenerated.WithLabelValues(zone).Add(float64(n))
}

// PayloadSize observes an uploaded payload size
func (r *Recorder) PayloadSize(zone, format string, bytes int) {
	r.payloadBytes.WithLabelValues(zone, format).Observe(float64(bytes))
}

// Timer starts timing a stage; call ObserveDuration when it ends
func (r *Recorder) Timer(zone, stage string) *prometheus.Timer {
	return prometheus.NewTimer(r.stageDuration.WithLabelValues(zone, stage))
}

// RunFinished counts a run as success or failure
func (r *Recorder) RunFinished(zone string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.runs.WithLabelValues(zone, status).Inc()
}

// BucketProvisioned counts one provisioning outcome
func (r *Recorder) BucketProvisioned(status string) {
	r.buckets.WithLabelValues(status).Inc()
}

// Push sends every metric to a Pushgateway, replacing the job's group
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(r.registry).PushContext(ctx)
}
