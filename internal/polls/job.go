package polls

import (
	"time"

	"github.com/riverqueue/river"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// TallyJobArgs asks the worker to recompute the tally of a poll. It is
// enqueued in the same transaction as the answers it summarizes.
//
// Jobs are not unique: every submission commits its own refresh, which only
// becomes visible to workers after the answers it summarizes. A refresh
// running while new answers commit therefore never swallows their job.
type TallyJobArgs struct {
	PollID domain.PollID `json:"poll_id"`

	maxAttempts int
	delay       time.Duration
}

func (args TallyJobArgs) Kind() string { return "RefreshPollTallyJob" }

// InsertOpts delays the job by the configured tally delay.
func (args TallyJobArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
	if args.delay > 0 {
		opts.ScheduledAt = time.Now().Add(args.delay)
	}

	return opts
}
