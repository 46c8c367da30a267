package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a transactional handle
// the job becomes visible only if the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job. It returns false when River skipped the insert
	// because an equivalent unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
