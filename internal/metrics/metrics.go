package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firerisk_predictions_total",
		Help: "Total number of fire risk predictions served.",
	})
	AlertsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firerisk_alerts_enqueued_total",
		Help: "Total number of fire risk alerts enqueued for delivery.",
	})
	AlertsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firerisk_alerts_sent_total",
		Help: "Total number of SMS alerts delivered.",
	})
	AlertsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firerisk_alerts_failed_total",
		Help: "Total number of SMS alert delivery failures.",
	})
	InferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "firerisk_inference_duration_seconds",
		Help:    "Duration of a single model inference call.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
)
