// Package worker runs the background jobs of the gateway on a River queue
// backed by the local Postgres database.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"pcbinspect/internal/config"
	"pcbinspect/internal/inspector"
	"pcbinspect/pkg/logger"
)

// Options configure the queue client.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// SnoozeDelay postpones a sync while the backend is unreachable.
	SnoozeDelay time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:  cfg.Sync.MaxWorkers,
		SnoozeDelay: cfg.Sync.SnoozeDelay,
	}
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, insp inspector.Inspector, options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewSyncWorker(insp, options.SnoozeDelay))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
