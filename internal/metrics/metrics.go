package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_chat_turns_total",
			Help: "Total number of completed chat turns",
		},
		[]string{"provider"},
	)

	ChatTurnErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_chat_turn_errors_total",
			Help: "Total number of chat turns aborted by provider errors",
		},
		[]string{"provider"},
	)

	ChartsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_charts_extracted_total",
			Help: "Total number of chart payloads extracted from replies",
		},
		[]string{"kind"},
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "advisor_upstream_latency_seconds",
			Help: "Completion provider request latency in seconds",
		},
		[]string{"provider"},
	)
)
