package report

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// EnrichJobArgs contains the arguments for a risk enrichment job submitted to
// River. The consolidated aggregate ID is the unique key so only one
// enrichment runs per aggregate within the configured period.
type EnrichJobArgs struct {
	// ConsolidatedID is the aggregate to enrich. It is marked as unique so
	// River can enforce one job per aggregate according to InsertOpts.UniqueOpts.
	ConsolidatedID string `json:"consolidatedId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the enrichment worker.
func (args EnrichJobArgs) Kind() string { return "EnrichConsolidatedScam" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate enrichment of the same aggregate.
func (args EnrichJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per aggregate in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
