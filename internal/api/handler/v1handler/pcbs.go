package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/serrors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type PCB struct {
	ID          domain.PCBID      `json:"id"`
	SumAccuracy float64           `json:"sumAccuracy"`
	Verdict     domain.Verdict    `json:"verdict"`
	ResultIDs   []domain.ResultID `json:"resultIds"`
	HasOriginal bool              `json:"hasOriginal"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

type PCBList struct {
	Items      []PCB   `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

func DomainPCBToV1(in *domain.PCBSummary) PCB {
	out := PCB{
		ID:          in.ID,
		SumAccuracy: in.SumAccuracy,
		Verdict:     in.Verdict(),
		ResultIDs:   in.ResultIDs,
		HasOriginal: in.Original != nil,
		CreatedAt:   in.CreatedAt,
	}
	if out.ResultIDs == nil {
		out.ResultIDs = []domain.ResultID{}
	}
	if !in.UpdatedAt.IsZero() {
		t := in.UpdatedAt
		out.UpdatedAt = &t
	}

	return out
}

func pathInt(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s %q", name, r.PathValue(name))
	}

	return v, nil
}

// RegisterPCB registers the factory capture as a reference PCB.
func (h *Handler) RegisterPCB(w http.ResponseWriter, r *http.Request) {
	id, err := h.deps.Inspector.Register(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, map[string]domain.PCBID{"id": id})
}

// ListPCBs returns a page of the local history, newest first.
func (h *Handler) ListPCBs(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLimit {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	pcbs, next, err := h.deps.Inspector.History(r.Context(), r.URL.Query().Get("cursor"), uint(limit)) //nolint: gosec
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := PCBList{Items: make([]PCB, 0, len(pcbs))}
	for i := range pcbs {
		res.Items = append(res.Items, DomainPCBToV1(&pcbs[i]))
	}
	if next != "" {
		res.NextCursor = &next
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) PCBSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Inspector.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) DeletePCB(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Inspector.DeletePCB(r.Context(), domain.PCBID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SyncPCB enqueues a result sync of one PCB.
func (h *Handler) SyncPCB(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	queued, err := h.deps.Inspector.RequestSync(r.Context(), domain.PCBID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, map[string]bool{"queued": queued})
}

// SyncAll enqueues a result sync of every PCB known to the backend.
func (h *Handler) SyncAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.deps.Inspector.SyncAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, map[string]int{"queued": n})
}
