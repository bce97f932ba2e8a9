package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	GenerateLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rosegen",
			Subsystem: "diagram",
			Name:      "latency_seconds",
			Help:      "Latency of diagram endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rosegen",
			Subsystem: "diagram",
			Name:      "validation_failures_total",
			Help:      "Rejected submissions by violated rule",
		},
		[]string{"rule"},
	)

	GenerateErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rosegen",
			Subsystem: "diagram",
			Name:      "errors_total",
			Help:      "Errors by diagram endpoint",
		},
		[]string{"endpoint"},
	)

	SampleSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rosegen",
			Subsystem: "diagram",
			Name:      "sample_size",
			Help:      "Number of measurement pairs per accepted submission",
			Buckets:   []float64{25, 50, 100, 200, 500, 1000},
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(GenerateLatency, ValidationFailures, GenerateErrors, SampleSize)
	})
}
