package inspector

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SyncJobArgs asks the worker to synchronise the results of one PCB.
type SyncJobArgs struct {
	// PCBID is the unique key: at most one queued sync per PCB.
	PCBID int64 `json:"pcb_id" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register the sync worker.
func (args SyncJobArgs) Kind() string { return "PCBSyncJob" }

// InsertOpts deduplicates syncs per PCB among jobs that have not finished.
// Completed jobs are excluded so a later new_result always triggers a fresh
// sync.
func (args SyncJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
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
