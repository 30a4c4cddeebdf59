package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeAbandoned = "abandoned"
)

var (
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_submissions_total",
			Help: "Resume generation submissions by outcome",
		},
		[]string{"outcome"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_submission_duration_seconds",
			Help:    "Time spent waiting for the generation backend",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
	)

	Downloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_downloads_total",
			Help: "Artifact download redirects by format",
		},
		[]string{"format"},
	)

	ActiveViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resume_active_views",
			Help: "Number of live per-session views",
		},
	)
)
