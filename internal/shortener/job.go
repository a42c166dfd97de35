package shortener

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// TitleJobArgs contains the arguments for a title-resolution job submitted to
// River. The short URL ID is the unique key so each URL has at most one
// pending resolution.
type TitleJobArgs struct {
	// ShortURLID identifies the short URL whose page title should be
	// resolved. Marked unique so River drops duplicate jobs for the same URL.
	ShortURLID uuid.UUID `json:"shortUrlId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the title
// resolver worker.
func (args TitleJobArgs) Kind() string { return "ResolveTitleJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// enforcing one job per short URL across active states.
func (args TitleJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
