package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes used as the "result" label.
const (
	resultFound       = "found"
	resultUnreachable = "unreachable"
	resultInvalid     = "invalid"
	resultTooLarge    = "too_large"
	resultError       = "error"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	expanded prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridroute_path_requests_total",
			Help: "Path requests by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_path_duration_seconds",
			Help:    "Path computation duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_path_expanded_vertices",
			Help:    "Vertices finalized per path computation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}
