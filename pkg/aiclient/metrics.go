package aiclient

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawtrip_ai_requests_total",
			Help: "Total number of generation requests by provider, modality and outcome.",
		},
		[]string{"provider", "modality", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pawtrip_ai_request_duration_seconds",
			Help:    "Duration of generation requests.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90, 120},
		},
		[]string{"provider", "modality"},
	)
)

func observe(provider string, m Modality, start time.Time, err error) {
	aiRequestDuration.WithLabelValues(provider, string(m)).Observe(time.Since(start).Seconds())
	aiRequestsTotal.WithLabelValues(provider, string(m), outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrExtractionFailed):
		return "extraction_error"
	default:
		return "error"
	}
}
