// Package backend defines the client used to reach the PCB inspection
// backend. The backend owns every image-processing step (detection,
// alignment, diffing, scoring and storage); this module only consumes its
// HTTP and WebSocket contracts.
package backend

import (
	"context"

	"pcbinspect/pkg/domain"
)

// Client is the abstraction over the inspection backend's HTTP API.
// Failures carry serrors kinds: ErrNotFound, ErrBadRequest, ErrUnavailable
// or ErrTimeout.
//
//go:generate mockgen -package mockbackend -source=interface.go -destination=mock/mockbackend.go *
type Client interface {
	// PrepareAnalysis uploads a template and a defective image and returns
	// the staged comparison.
	PrepareAnalysis(ctx context.Context, template, defective domain.Upload) (*domain.Analysis, error)
	// DetectImage locates a PCB in a single uploaded image.
	DetectImage(ctx context.Context, image domain.Upload) (*domain.Detection, error)
	// CreatePCB registers a reference PCB image and returns its id.
	CreatePCB(ctx context.Context, image domain.Upload) (domain.PCBID, error)
	// Result fetches one inspection result with its stage images.
	Result(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error)
	// Images fetches the reference image stored for a PCB.
	Images(ctx context.Context, id domain.PCBID) (*domain.StoredImage, error)
	// WorkingResults fetches the running summary of a PCB's factory workflow.
	WorkingResults(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error)
	// AllResults lists the summaries of every registered PCB.
	AllResults(ctx context.Context) ([]domain.PCBSummary, error)
	// DeletePCB removes a PCB and its results.
	DeletePCB(ctx context.Context, id domain.PCBID) error
	// DeleteResult removes a single inspection result.
	DeleteResult(ctx context.Context, id domain.ResultID) error
	// StreamURL returns the WebSocket URL of a live frame stream. pcbID is
	// required for the factory stream and ignored otherwise.
	StreamURL(kind domain.StreamKind, pcbID domain.PCBID) (string, error)
}
