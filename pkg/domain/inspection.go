package domain

import (
	"strconv"
	"time"
)

// PCBID identifies a registered reference PCB on the backend. Every factory
// workflow run is bound to one PCBID.
type PCBID int64

// String returns the decimal representation used in backend URLs.
func (id PCBID) String() string { return strconv.FormatInt(int64(id), 10) }

// ResultID identifies a single inspection result on the backend.
type ResultID int64

// String returns the decimal representation used in backend URLs.
func (id ResultID) String() string { return strconv.FormatInt(int64(id), 10) }

// Verdict is the pass/fail classification shown for a PCB in the history list.
type Verdict string

const (
	// VerdictPass means the aggregated accuracy is above PassThreshold.
	VerdictPass Verdict = "PASS"
	// VerdictFail means the aggregated accuracy is at or below PassThreshold.
	VerdictFail Verdict = "FAIL"
)

// PassThreshold is the aggregated accuracy (percent) a PCB must exceed to pass.
const PassThreshold = 50.0

// VerdictFor classifies an aggregated accuracy percentage.
func VerdictFor(accuracy float64) Verdict {
	if accuracy > PassThreshold {
		return VerdictPass
	}

	return VerdictFail
}

// Grade returns the human readable grading the backend attaches to a single
// analysis accuracy. It is only used when the backend omits its own text.
func Grade(accuracy float64) string {
	switch {
	case accuracy <= 80:
		return "The PCB picture does not match or is incorrect."
	case accuracy <= 97:
		return "The PCB picture has many errors."
	default:
		return "The PCB picture has some errors."
	}
}

// Stage names one of the processing steps previewed for an analysis.
type Stage string

const (
	StageTemplate  Stage = "template"
	StageDefective Stage = "defective"
	StageAligned   Stage = "aligned"
	StageDiff      Stage = "diff"
	StageCleaned   Stage = "cleaned"
	StageResult    Stage = "result"
)

// Stages lists the preview stages in presentation order.
func Stages() []Stage {
	return []Stage{StageTemplate, StageDefective, StageAligned, StageDiff, StageCleaned, StageResult}
}

// Analysis is the outcome of comparing a template PCB image with a possibly
// defective one. Images holds decoded JPEG bytes per stage; stages the backend
// did not return are absent.
type Analysis struct {
	Detected bool             `json:"detected"`
	Message  string           `json:"message,omitempty"`
	Accuracy *float64         `json:"accuracy,omitempty"`
	Result   string           `json:"result,omitempty"`
	Images   map[Stage][]byte `json:"-"`
}

// Status returns the status line shown after an analysis completes.
func (a *Analysis) Status() string {
	if a.Detected {
		return "PCB detected!"
	}

	return "No PCB detected"
}

// Detection is the outcome of locating a PCB in a single uploaded image.
type Detection struct {
	Detected bool `json:"detected"`
	// DisplayImage is the annotated input image.
	DisplayImage []byte `json:"-"`
	// PCBImage is the perspective-corrected crop; nil when no PCB was found.
	PCBImage []byte `json:"-"`
}

// StoredImage is an image persisted on the backend.
type StoredImage struct {
	ID         int64     `json:"imageId"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
	Data       []byte    `json:"-"`
}

// ResultImages groups the stage images attached to an inspection result.
type ResultImages map[Stage]StoredImage

// InspectionResult is one inspection run of a factory workflow.
type InspectionResult struct {
	// ID is the backend result identifier.
	ID ResultID `json:"id"`
	// PCBID is the reference PCB the run was compared against.
	PCBID PCBID `json:"pcbId"`
	// Accuracy is the match percentage computed by the backend.
	Accuracy float64 `json:"accuracy"`
	// Description is the backend's grading text.
	Description string `json:"description"`
	// Images holds the stage images; may be empty for list views.
	Images ResultImages `json:"-"`

	// CreatedAt is when the record was first stored locally.
	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks a local soft-delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// PCBSummary aggregates all inspection results recorded for a PCB.
type PCBSummary struct {
	ID PCBID `json:"id"`
	// SumAccuracy is the aggregated accuracy reported by the backend.
	SumAccuracy float64 `json:"sumAccuracy"`
	// ResultIDs lists the inspection results recorded for the PCB.
	ResultIDs []ResultID `json:"resultIds"`
	// Original is the reference image, when the backend included it.
	Original *StoredImage `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Verdict classifies the summary by its aggregated accuracy.
func (s PCBSummary) Verdict() Verdict { return VerdictFor(s.SumAccuracy) }

// HistoryStats summarises a set of PCB summaries for the results overview.
type HistoryStats struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	AverageAccuracy float64 `json:"averageAccuracy"`
	// FirstFailure is the first failing PCB in list order, if any.
	FirstFailure *PCBID `json:"firstFailure,omitempty"`
}

// ResultEvent announces that a PCB's results were synchronised locally.
type ResultEvent struct {
	PCBID       PCBID      `json:"pcbId"`
	SumAccuracy float64    `json:"sumAccuracy"`
	Verdict     Verdict    `json:"verdict"`
	ResultIDs   []ResultID `json:"resultIds"`
	// NewResultIDs are the results stored by this synchronisation.
	NewResultIDs []ResultID `json:"newResultIds"`
	SyncedAt     time.Time  `json:"syncedAt"`
}
