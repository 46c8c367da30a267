// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "polls"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Respondent label values of AnswersRecorded.
const (
	RespondentAnonymous = "anonymous"
	RespondentNamed     = "named"
)

//nolint: gochecknoglobals
var (
	// PollsCreated counts committed poll creations.
	PollsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Number of polls created.",
	})
	// PollMutations counts committed edits and deletions by operation.
	PollMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Number of poll edits and deletions.",
	}, []string{"operation"})
	// LinkCollisions counts generated links rejected because they were taken.
	LinkCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_collisions_total",
		Help:      "Number of generated poll links that collided with an existing poll.",
	})
	// AnswersRecorded counts stored answers by respondent kind.
	AnswersRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "answers_recorded_total",
		Help:      "Number of answers recorded.",
	}, []string{"respondent"})
	// TalliesRefreshed counts completed tally refresh jobs.
	TalliesRefreshed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tallies_refreshed_total",
		Help:      "Number of poll tallies recomputed by the worker.",
	})
)
