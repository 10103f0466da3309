package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"pcbinspect/internal/inspector"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/serrors"
)

// DefaultSnoozeDelay is used when no snooze delay is configured.
const DefaultSnoozeDelay = 15 * time.Second

// SyncWorker copies a PCB's results from the backend into the local history.
//
// A PCB unknown to the backend cancels the job. An unreachable or slow
// backend snoozes it, which does not consume an attempt. Other errors are
// retried by River until MaxAttempts.
type SyncWorker struct {
	river.WorkerDefaults[inspector.SyncJobArgs]

	inspector   inspector.Inspector
	snoozeDelay time.Duration
}

// NewSyncWorker constructs a SyncWorker.
func NewSyncWorker(insp inspector.Inspector, snoozeDelay time.Duration) *SyncWorker {
	if snoozeDelay <= 0 {
		snoozeDelay = DefaultSnoozeDelay
	}

	return &SyncWorker{
		inspector:   insp,
		snoozeDelay: snoozeDelay,
	}
}

func (w *SyncWorker) Work(ctx context.Context, job *river.Job[inspector.SyncJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("pcbId", job.Args.PCBID))

	event, err := w.inspector.Sync(ctx, domain.PCBID(job.Args.PCBID))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "pcb not found on backend, cancelling sync", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in syncing results", zap.Error(err))

		if errors.Is(err, serrors.ErrUnavailable) || errors.Is(err, serrors.ErrTimeout) {
			return river.JobSnooze(w.snoozeDelay) //nolint: wrapcheck
		}

		return fmt.Errorf("could not sync results: %w", err)
	}

	if event == nil {
		logger.Info(ctx, "pcb deleted locally, sync skipped")

		return nil
	}

	logger.Info(ctx, "results synced",
		zap.Int("results", len(event.ResultIDs)),
		zap.Int("new", len(event.NewResultIDs)),
		zap.String("verdict", string(event.Verdict)))

	return nil
}
