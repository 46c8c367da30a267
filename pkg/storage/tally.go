package storage

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// TallyStorage maintains the per-poll answer summaries.
type TallyStorage interface {
	// RefreshTally recomputes the tally of a poll from the answer ledger and
	// stores it. It returns nil when the poll no longer exists.
	RefreshTally(ctx context.Context, pollID domain.PollID) (*domain.Tally, error)
	// TallyByPoll returns nil until the first refresh.
	TallyByPoll(ctx context.Context, pollID domain.PollID) (*domain.Tally, error)
}
