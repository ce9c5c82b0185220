// Package metrics records per-run Prometheus metrics for the lesson runner
// and writes them in the text exposition format.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "curriculum"

// Status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder owns a private registry, so that runs in the same process (tests,
// REPL sessions) never share counters.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	runTime  prometheus.Gauge
}

// NewRecorder registers the lesson metrics and the memory collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lessons_run_total",
			Help:      "Lessons run, by lesson and status.",
		}, []string{"lesson", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "lesson_duration_seconds",
			Help:      "Wall time of a lesson run.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"lesson"}),
		runTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the whole run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.runTime, NewMemoryCollector(Namespace))
	return r
}

// ObserveLesson counts one lesson run and records its duration.
func (r *Recorder) ObserveLesson(name string, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.runs.WithLabelValues(name, status).Inc()
	r.duration.WithLabelValues(name).Observe(d.Seconds())
}

// ObserveRun records the wall time of the whole run.
func (r *Recorder) ObserveRun(d time.Duration) {
	r.runTime.Set(d.Seconds())
}

// Registry exposes the underlying registry as a gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteToTextfile writes every metric to path atomically, in the format read
// by the node exporter's textfile collector.
func (r *Recorder) WriteToTextfile(path string) error {
	if path == "" {
		return errors.New("metrics: empty file path")
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
