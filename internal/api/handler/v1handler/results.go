package v1handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/imageutil"
	"pcbinspect/pkg/serrors"
)

type ResultImage struct {
	ImageID    int64      `json:"imageId,omitempty"`
	Filename   string     `json:"filename,omitempty"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
	Data       []byte     `json:"data"`
}

type Result struct {
	ID          domain.ResultID              `json:"id"`
	PCBID       domain.PCBID                 `json:"pcbId"`
	Accuracy    float64                      `json:"accuracy"`
	Description string                       `json:"description"`
	Images      map[domain.Stage]ResultImage `json:"images"`
}

func DomainResultToV1(in *domain.InspectionResult) Result {
	out := Result{
		ID:          in.ID,
		PCBID:       in.PCBID,
		Accuracy:    in.Accuracy,
		Description: in.Description,
		Images:      make(map[domain.Stage]ResultImage, len(in.Images)),
	}
	for stage, img := range in.Images {
		ri := ResultImage{ImageID: img.ID, Filename: img.Filename, Data: img.Data}
		if !img.UploadedAt.IsZero() {
			t := img.UploadedAt
			ri.UploadedAt = &t
		}
		out.Images[stage] = ri
	}

	return out
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Inspector.Result(r.Context(), domain.ResultID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainResultToV1(res))
}

// GetResultImage serves one stage image of a result as JPEG, scaled down to
// ?width when given.
func (h *Handler) GetResultImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	width, err := queryWidth(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Inspector.Result(r.Context(), domain.ResultID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	stage := domain.Stage(r.PathValue("stage"))
	img, ok := res.Images[stage]
	if !ok || len(img.Data) == 0 {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "result %d has no %s image", id, stage))

		return
	}

	writeImage(w, r, img.Data, width)
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Inspector.DeleteResult(r.Context(), domain.ResultID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryWidth(r *http.Request) (int, error) {
	v := r.URL.Query().Get("width")
	if v == "" {
		return 0, nil
	}

	width, err := strconv.Atoi(v)
	if err != nil || width < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid width %q", v)
	}

	return width, nil
}

// writeImage writes data unchanged, or as a JPEG thumbnail when width is set.
func writeImage(w http.ResponseWriter, r *http.Request, data []byte, width int) {
	w.Header().Set("Cache-Control", "no-store")
	if width == 0 {
		w.Header().Set("Content-Type", http.DetectContentType(data))
		_, _ = w.Write(data)

		return
	}

	var buf bytes.Buffer
	if err := imageutil.Thumbnail(&buf, data, width); err != nil {
		(&Handler{}).writeError(w, r, serrors.Wrap(serrors.ErrInternal, err, "could not scale image"))

		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write(buf.Bytes())
}
