package pagedetect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricDetectionRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pagewright",
		Name:      "detection_runs_total",
		Help:      "Number of completed page detection runs.",
	})
	metricBoundaries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pagewright",
		Name:      "boundaries_detected_total",
		Help:      "Page boundaries detected, by boundary type.",
	}, []string{"type"})
	metricSegments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pagewright",
		Name:      "segments_emitted_total",
		Help:      "Page segments emitted across all detection runs.",
	})
	metricNameStrategy = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pagewright",
		Name:      "name_strategy_hits_total",
		Help:      "Winning page-name strategy, by strategy.",
	}, []string{"strategy"})
)
