package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/nailuj1992/polls-api/internal/polls"
	"github.com/nailuj1992/polls-api/pkg/logger"
	"github.com/nailuj1992/polls-api/pkg/metrics"
	"github.com/nailuj1992/polls-api/pkg/storage"
)

// ErrPollGone cancels refresh jobs of polls deleted after the job was
// enqueued.
var ErrPollGone = errors.New("poll no longer exists")

// TallyWorker recomputes the answer tally of a poll from the answer ledger.
// Refreshes are idempotent, so retries and duplicated jobs are harmless.
type TallyWorker struct {
	river.WorkerDefaults[polls.TallyJobArgs]

	tallies storage.TallyStorage
}

func NewTallyWorker(tallies storage.TallyStorage) *TallyWorker {
	return &TallyWorker{tallies: tallies}
}

func (w *TallyWorker) Work(ctx context.Context, job *river.Job[polls.TallyJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("pollID", int64(job.Args.PollID)))

	tally, err := w.tallies.RefreshTally(ctx, job.Args.PollID)
	if err != nil {
		logger.Error(ctx, "error refreshing poll tally", zap.Error(err))

		return fmt.Errorf("could not refresh poll tally: %w", err)
	}
	if tally == nil {
		logger.Info(ctx, "skipping tally of deleted poll")

		return river.JobCancel(ErrPollGone) //nolint: wrapcheck
	}

	metrics.TalliesRefreshed.Inc()
	logger.Debug(ctx, "poll tally refreshed",
		zap.Int64("answers", tally.Answers),
		zap.Int64("namedRespondents", tally.NamedRespondents))

	return nil
}
