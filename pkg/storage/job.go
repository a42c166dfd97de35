package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; when
// invoked on a transactional handle the insert participates in the
// surrounding transaction. The boolean result reports whether a job was
// actually added (false means it was skipped as a duplicate under the job's
// uniqueness constraints).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. opts can customize
	// insertion behavior (queue name, delay, priority).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
