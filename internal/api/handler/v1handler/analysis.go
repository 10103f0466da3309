package v1handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"pcbinspect/internal/inspector"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/serrors"
)

// AnalysisResponse carries the stage previews as base64 JPEG.
type AnalysisResponse struct {
	Detected bool                    `json:"detected"`
	Status   string                  `json:"status"`
	Message  string                  `json:"message,omitempty"`
	Accuracy *float64                `json:"accuracy,omitempty"`
	Result   string                  `json:"result,omitempty"`
	Images   map[domain.Stage][]byte `json:"images"`
}

func DomainAnalysisToV1(in *domain.Analysis) AnalysisResponse {
	images := in.Images
	if images == nil {
		images = map[domain.Stage][]byte{}
	}

	return AnalysisResponse{
		Detected: in.Detected,
		Status:   in.Status(),
		Message:  in.Message,
		Accuracy: in.Accuracy,
		Result:   in.Result,
		Images:   images,
	}
}

// Analyze compares the template and defective captures.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Inspector.Analyze(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainAnalysisToV1(res))
}

type DetectionResponse struct {
	Detected     bool   `json:"detected"`
	DisplayImage []byte `json:"displayImage,omitempty"`
	PCBImage     []byte `json:"pcbImage,omitempty"`
	// CapturedAs is the slot the crop was stored in, when requested.
	CapturedAs inspector.Slot `json:"capturedAs,omitempty"`
}

// Detect locates a PCB in the request body. With ?capture=<slot> the crop is
// stored in that slot.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	capture := inspector.Slot(r.URL.Query().Get("capture"))
	if capture != "" && !capture.Valid() {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown capture slot %q", capture))

		return
	}

	upload, err := h.readUpload(w, r, "image")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	det, err := h.deps.Inspector.Detect(r.Context(), upload)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := DetectionResponse{
		Detected:     det.Detected,
		DisplayImage: det.DisplayImage,
		PCBImage:     det.PCBImage,
	}
	if capture != "" && det.Detected {
		name := "pcb_" + strings.TrimSuffix(upload.Name, filepath.Ext(upload.Name)) + extensionFor(det.PCBImage)
		if err := h.deps.Inspector.CaptureDetected(r.Context(), capture, name, det); err != nil {
			h.writeError(w, r, err)

			return
		}
		res.CapturedAs = capture
	}

	writeJSON(w, http.StatusOK, res)
}
