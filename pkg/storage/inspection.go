package storage

import (
	"context"
	"time"

	"pcbinspect/pkg/domain"
)

// PCBPage groups a page of PCB summaries with an optional NextCursor used
// for pagination.
type PCBPage struct {
	// PCBs contains the current page, newest first.
	PCBs []domain.PCBSummary
	// NextCursor is the created_at of the last row, nil on the last page.
	NextCursor *time.Time
}

// PCBStorage keeps the local copy of the backend's PCB summaries. IDs are
// assigned by the backend; rows are soft-deleted.
type PCBStorage interface {
	// UpsertPCB inserts or refreshes a summary and returns the stored row.
	// A nil Original keeps the stored reference image. Soft-deleted rows are
	// not revived; nil is returned for them.
	UpsertPCB(ctx context.Context, pcb domain.PCBSummary) (*domain.PCBSummary, error)
	// PCBs returns a page of summaries created before the optional cursor.
	PCBs(ctx context.Context, cursor time.Time, limit uint) (PCBPage, error)
	// AllPCBs returns every non-deleted summary without reference images.
	AllPCBs(ctx context.Context) ([]domain.PCBSummary, error)
	// PCBByID returns a summary, or nil when not found.
	PCBByID(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error)
	// PCBByIDWithDeleted is PCBByID including soft-deleted rows, whose
	// DeletedAt is set.
	PCBByIDWithDeleted(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error)
	// SoftDeletePCB marks a summary deleted and returns it, or nil when not found.
	SoftDeletePCB(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error)
}

// ResultStorage keeps the local copy of inspection results.
type ResultStorage interface {
	// UpsertResults inserts or refreshes results and returns the stored rows.
	// Soft-deleted rows are left untouched and omitted from the output.
	UpsertResults(ctx context.Context, results ...domain.InspectionResult) ([]domain.InspectionResult, error)
	// ResultByID returns a result with its stage images, or nil when not found.
	ResultByID(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error)
	// SoftDeleteResult marks a result deleted and returns it, or nil when not found.
	SoftDeleteResult(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error)
	// SoftDeleteResultsByPCB marks every result of a PCB deleted and returns
	// the number of affected rows.
	SoftDeleteResultsByPCB(ctx context.Context, pcbID domain.PCBID) (int64, error)
}
