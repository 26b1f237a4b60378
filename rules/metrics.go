package rules

import "github.com/prometheus/client_golang/prometheus"

var (
	stepsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridsnake",
			Subsystem: "rules",
			Name:      "steps_total",
			Help:      "Steps taken by sessions, by outcome.",
		},
		[]string{"outcome"},
	)
	endsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridsnake",
			Subsystem: "rules",
			Name:      "sessions_ended_total",
			Help:      "Sessions that completed, by end cause.",
		},
		[]string{"cause"},
	)
	foodSamplesHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gridsnake",
			Subsystem: "rules",
			Name:      "food_placement_samples",
			Help:      "Random cells sampled before food could be placed.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(stepsCounter, endsCounter, foodSamplesHistogram)
}
