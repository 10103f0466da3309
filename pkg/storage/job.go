package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue tables living next to
// the domain tables, so a job can be inserted in the same transaction as the
// rows it refers to.
//
// Example:
//
//	added, err := st.AddJob(ctx, inspector.SyncJobArgs{PCBID: 42}, nil)
type JobStorage interface {
	// AddJob enqueues a job. It reports false when the queue skipped the
	// insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
