package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; when
// called on a transactional handle the insert participates in the surrounding
// transaction. The returned bool reports whether a job was actually inserted
// (false when uniqueness constraints matched an existing job).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. opts can customize
	// insertion behavior (queue name, delay, priority) and may be nil.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
