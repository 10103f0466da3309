package inspector

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"pcbinspect/internal/config"
	"pcbinspect/pkg/backend"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/serrors"
	"pcbinspect/pkg/storage"
)

// Options configure how sync jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a sync job before marking it failed.
	MaxAttempts int
	// UniquePeriod is the window in which sync requests for the same PCB are
	// collapsed into one job.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Sync.MaxAttempts,
		UniquePeriod: cfg.Sync.UniquePeriod,
	}
}

// inspector is the concrete implementation of the Inspector interface.
type inspector struct {
	options  Options
	backend  backend.Client
	storage  storage.Storage
	notifier Notifier
	captures *Captures
	now      func() time.Time
}

// New creates an Inspector backed by the given backend client and local
// storage. A nil notifier disables result events.
func New(client backend.Client, st storage.Storage, notifier Notifier, options Options) Inspector {
	return &inspector{
		options:  options,
		backend:  client,
		storage:  st,
		notifier: notifier,
		captures: NewCaptures(),
		now:      time.Now,
	}
}

func (s *inspector) PutCapture(_ context.Context, slot Slot, upload domain.Upload) error {
	if !slot.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown capture slot %q", slot)
	}
	if !upload.Valid() {
		return serrors.With(serrors.ErrBadRequest,
			"invalid file %q: only JPG, JPEG and PNG images are allowed", upload.Name)
	}

	s.captures.Put(slot, upload)

	return nil
}

func (s *inspector) Capture(_ context.Context, slot Slot) (domain.Upload, bool) {
	return s.captures.Get(slot)
}

func (s *inspector) RemoveCapture(_ context.Context, slot Slot) {
	s.captures.Remove(slot)
}

// CaptureDetected stores the PCB crop of a detection under name. Detections
// without a crop are rejected.
func (s *inspector) CaptureDetected(ctx context.Context, slot Slot, name string, detection *domain.Detection) error {
	if detection == nil || !detection.Detected || len(detection.PCBImage) == 0 {
		return serrors.With(serrors.ErrBadRequest, "no PCB detected")
	}

	return s.PutCapture(ctx, slot, domain.Upload{Name: name, Data: detection.PCBImage})
}

// Analyze uploads the template and defective captures for comparison.
func (s *inspector) Analyze(ctx context.Context) (*domain.Analysis, error) {
	template, ok := s.captures.Get(SlotTemplate)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "template image is required")
	}
	defective, ok := s.captures.Get(SlotDefective)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "defective image is required")
	}

	res, err := s.backend.PrepareAnalysis(ctx, template, defective)
	if err != nil {
		return nil, fmt.Errorf("could not analyze images: %w", err)
	}

	logger.Info(ctx, "analysis completed",
		zap.Bool("detected", res.Detected), zap.Int("stages", len(res.Images)))

	return res, nil
}

func (s *inspector) Detect(ctx context.Context, upload domain.Upload) (*domain.Detection, error) {
	res, err := s.backend.DetectImage(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("could not detect pcb: %w", err)
	}

	return res, nil
}

// Register creates a reference PCB from the factory capture and records it
// locally so the history shows it before its first result arrives.
func (s *inspector) Register(ctx context.Context) (domain.PCBID, error) {
	upload, ok := s.captures.Get(SlotFactory)
	if !ok {
		return 0, serrors.With(serrors.ErrBadRequest, "factory image is required")
	}

	id, err := s.backend.CreatePCB(ctx, upload)
	if err != nil {
		return 0, fmt.Errorf("could not create pcb: %w", err)
	}
	ctx = logger.WithFields(ctx, zap.Int64("pcbId", int64(id)))

	if _, err := s.storage.UpsertPCB(ctx, domain.PCBSummary{
		ID:        id,
		ResultIDs: []domain.ResultID{},
		Original:  &domain.StoredImage{Filename: upload.Name, Data: upload.Data},
	}); err != nil {
		return 0, fmt.Errorf("could not store pcb: %w", err)
	}

	logger.Info(ctx, "pcb registered")

	return id, nil
}

// History returns a page of summaries. The cursor is an RFC3339 timestamp
// taken from a previous page.
func (s *inspector) History(ctx context.Context, cursor string, limit uint) ([]domain.PCBSummary, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.PCBs(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get pcbs: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.PCBs, next, nil
}

func (s *inspector) Summary(ctx context.Context) (domain.HistoryStats, error) {
	pcbs, err := s.storage.AllPCBs(ctx)
	if err != nil {
		return domain.HistoryStats{}, fmt.Errorf("could not get pcbs: %w", err)
	}

	return Summarize(pcbs), nil
}

// Summarize computes the overview of a list of summaries. FirstFailure
// follows list order.
func Summarize(pcbs []domain.PCBSummary) domain.HistoryStats {
	stats := domain.HistoryStats{Total: len(pcbs)}
	if len(pcbs) == 0 {
		return stats
	}

	accuracies := make([]float64, len(pcbs))
	for i, p := range pcbs {
		accuracies[i] = p.SumAccuracy
		if p.Verdict() == domain.VerdictPass {
			stats.Passed++
		} else if stats.FirstFailure == nil {
			id := p.ID
			stats.FirstFailure = &id
		}
	}
	stats.AverageAccuracy = stat.Mean(accuracies, nil)

	return stats
}

// Result prefers the local copy and falls back to the backend, storing what
// it fetched.
func (s *inspector) Result(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error) {
	res, err := s.storage.ResultByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get result: %w", err)
	}
	if res != nil {
		return res, nil
	}

	res, err = s.backend.Result(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch result: %w", err)
	}

	if _, err := s.storage.UpsertResults(ctx, *res); err != nil {
		// the result is still usable without the local copy.
		logger.Warn(ctx, "could not store fetched result", zap.Int64("resultId", int64(id)), zap.Error(err))
	}

	return res, nil
}

// DeletePCB deletes upstream first so a failed upstream call leaves the local
// history intact. A PCB only known locally is still removed.
func (s *inspector) DeletePCB(ctx context.Context, id domain.PCBID) error {
	upstreamMissing := false
	if err := s.backend.DeletePCB(ctx, id); err != nil {
		if !errors.Is(err, serrors.ErrNotFound) {
			return fmt.Errorf("could not delete pcb: %w", err)
		}
		upstreamMissing = true
	}

	var deleted *domain.PCBSummary
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if deleted, err = tx.SoftDeletePCB(ctx, id); err != nil {
			return fmt.Errorf("could not delete local pcb: %w", err)
		}
		if _, err := tx.SoftDeleteResultsByPCB(ctx, id); err != nil {
			return fmt.Errorf("could not delete local results: %w", err)
		}

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}

	if deleted == nil && upstreamMissing {
		return serrors.With(serrors.ErrNotFound, "pcb not found")
	}
	logger.Info(ctx, "pcb deleted", zap.Int64("pcbId", int64(id)), zap.Bool("upstreamMissing", upstreamMissing))

	return nil
}

func (s *inspector) DeleteResult(ctx context.Context, id domain.ResultID) error {
	upstreamMissing := false
	if err := s.backend.DeleteResult(ctx, id); err != nil {
		if !errors.Is(err, serrors.ErrNotFound) {
			return fmt.Errorf("could not delete result: %w", err)
		}
		upstreamMissing = true
	}

	deleted, err := s.storage.SoftDeleteResult(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete local result: %w", err)
	}
	if deleted == nil && upstreamMissing {
		return serrors.With(serrors.ErrNotFound, "result not found")
	}
	logger.Info(ctx, "result deleted", zap.Int64("resultId", int64(id)), zap.Bool("upstreamMissing", upstreamMissing))

	return nil
}

func (s *inspector) RequestSync(ctx context.Context, id domain.PCBID) (bool, error) {
	if id <= 0 {
		return false, serrors.With(serrors.ErrBadRequest, "invalid pcb id %d", id)
	}

	added, err := s.storage.AddJob(ctx, s.syncJob(id), nil)
	if err != nil {
		return false, fmt.Errorf("could not add sync job: %w", err)
	}

	return added, nil
}

// SyncAll enqueues one sync per PCB listed by the backend and returns the
// number of jobs added.
func (s *inspector) SyncAll(ctx context.Context) (int, error) {
	pcbs, err := s.backend.AllResults(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list pcbs: %w", err)
	}

	added := 0
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, p := range pcbs {
			ok, err := tx.AddJob(ctx, s.syncJob(p.ID), nil)
			if err != nil {
				return fmt.Errorf("could not add sync job: %w", err)
			}
			if ok {
				added++
			}
		}

		return nil
	}); err != nil {
		return 0, err //nolint: wrapcheck
	}

	return added, nil
}

func (s *inspector) syncJob(id domain.PCBID) SyncJobArgs {
	return SyncJobArgs{
		PCBID:           int64(id),
		maxAttempts:     s.options.MaxAttempts,
		uniqueJobPeriod: s.options.UniquePeriod,
	}
}

// Sync copies a PCB's working summary and the results not stored yet. It
// returns nil without error when the PCB was deleted locally.
func (s *inspector) Sync(ctx context.Context, id domain.PCBID) (*domain.ResultEvent, error) {
	summary, err := s.backend.WorkingResults(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch working results: %w", err)
	}

	local, err := s.storage.PCBByIDWithDeleted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get local pcb: %w", err)
	}
	if local != nil && !local.DeletedAt.IsZero() {
		return nil, nil //nolint: nilnil
	}

	var known []domain.ResultID
	if local != nil {
		known = local.ResultIDs
	}
	if local == nil || local.Original == nil {
		if img, err := s.backend.Images(ctx, id); err == nil {
			summary.Original = img
		} else if !errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "could not fetch pcb image", zap.Error(err))
		}
	}

	fresh := make([]domain.InspectionResult, 0, len(summary.ResultIDs))
	for _, rid := range summary.ResultIDs {
		if slices.Contains(known, rid) {
			continue
		}

		res, err := s.backend.Result(ctx, rid)
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "result disappeared before sync", zap.Int64("resultId", int64(rid)))

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not fetch result %d: %w", rid, err)
		}
		res.PCBID = id
		fresh = append(fresh, *res)
	}

	var stored []domain.InspectionResult
	deleted := false
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		pcb, err := tx.UpsertPCB(ctx, *summary)
		if err != nil {
			return fmt.Errorf("could not store pcb: %w", err)
		}
		// deleted after the lookup above
		if pcb == nil {
			deleted = true

			return nil
		}
		if len(fresh) == 0 {
			return nil
		}

		if stored, err = tx.UpsertResults(ctx, fresh...); err != nil {
			return fmt.Errorf("could not store results: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}
	if deleted {
		logger.Info(ctx, "skipped sync of deleted pcb")

		return nil, nil //nolint: nilnil
	}

	event := &domain.ResultEvent{
		PCBID:        id,
		SumAccuracy:  summary.SumAccuracy,
		Verdict:      summary.Verdict(),
		ResultIDs:    summary.ResultIDs,
		NewResultIDs: make([]domain.ResultID, 0, len(stored)),
		SyncedAt:     s.now().UTC(),
	}
	for _, r := range stored {
		event.NewResultIDs = append(event.NewResultIDs, r.ID)
	}

	if len(event.NewResultIDs) > 0 && s.notifier != nil {
		if err := s.notifier.PublishResults(ctx, *event); err != nil {
			logger.Warn(ctx, "could not publish result event", zap.Error(err))
		}
	}

	return event, nil
}
