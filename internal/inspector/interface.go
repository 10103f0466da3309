package inspector

import (
	"context"

	"pcbinspect/pkg/domain"
)

// Inspector drives the operator workflows: staging captures, running analyses
// and detections on the backend, registering reference PCBs and keeping the
// local result history in sync.
//
//go:generate mockgen -package mockinspector -source=interface.go -destination=mock/mockinspector.go *
type Inspector interface {
	// PutCapture stores an image in a capture slot, replacing its content.
	PutCapture(ctx context.Context, slot Slot, upload domain.Upload) error
	// Capture returns the image held in a slot.
	Capture(ctx context.Context, slot Slot) (domain.Upload, bool)
	// RemoveCapture empties a slot.
	RemoveCapture(ctx context.Context, slot Slot)
	// CaptureDetected stores the PCB crop of a detection in a slot.
	CaptureDetected(ctx context.Context, slot Slot, name string, detection *domain.Detection) error

	// Analyze compares the template and defective captures.
	Analyze(ctx context.Context) (*domain.Analysis, error)
	// Detect locates a PCB in a single image.
	Detect(ctx context.Context, upload domain.Upload) (*domain.Detection, error)
	// Register uploads the factory capture as a new reference PCB.
	Register(ctx context.Context) (domain.PCBID, error)

	// History returns a page of locally synced PCB summaries and the cursor of
	// the next page (empty on the last page).
	History(ctx context.Context, cursor string, limit uint) ([]domain.PCBSummary, string, error)
	// Summary aggregates the local history.
	Summary(ctx context.Context) (domain.HistoryStats, error)
	// Result returns an inspection result, fetching it from the backend when it
	// is not stored locally.
	Result(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error)
	// DeletePCB deletes a PCB upstream and its local history.
	DeletePCB(ctx context.Context, id domain.PCBID) error
	// DeleteResult deletes a result upstream and locally.
	DeleteResult(ctx context.Context, id domain.ResultID) error

	// RequestSync enqueues a synchronisation of a PCB's results. It reports
	// false when an equivalent job is already queued.
	RequestSync(ctx context.Context, id domain.PCBID) (bool, error)
	// SyncAll enqueues a synchronisation for every PCB known to the backend.
	SyncAll(ctx context.Context) (int, error)
	// Sync fetches a PCB's working results from the backend and stores them.
	Sync(ctx context.Context, id domain.PCBID) (*domain.ResultEvent, error)
}

// Notifier publishes result events to interested parties.
type Notifier interface {
	PublishResults(ctx context.Context, event domain.ResultEvent) error
}
