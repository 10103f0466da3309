package v1handler

import (
	"net/http"
	"strconv"
	"strings"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/serrors"
)

func (h *Handler) liveManager() (LiveManager, error) {
	if h.deps.Live == nil {
		return nil, serrors.With(serrors.ErrConflict, "live view is not available")
	}

	return h.deps.Live, nil
}

// StartLive starts the detection or factory stream. The factory stream needs
// ?pcb_id.
func (h *Handler) StartLive(w http.ResponseWriter, r *http.Request) {
	lm, err := h.liveManager()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var pcbID int64
	if v := r.URL.Query().Get("pcb_id"); v != "" {
		if pcbID, err = strconv.ParseInt(v, 10, 64); err != nil || pcbID <= 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid pcb_id %q", v))

			return
		}
	}

	st, err := lm.Start(r.Context(), domain.StreamKind(r.PathValue("stream")), domain.PCBID(pcbID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, st)
}

func (h *Handler) StopLive(w http.ResponseWriter, r *http.Request) {
	lm, err := h.liveManager()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	lm.Stop(r.Context())
	writeJSON(w, http.StatusOK, lm.Status())
}

func (h *Handler) LiveStatus(w http.ResponseWriter, r *http.Request) {
	lm, err := h.liveManager()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, lm.Status())
}

// LiveFrame serves the latest frame of a channel at /v1/live/<channel>.jpg.
func (h *Handler) LiveFrame(w http.ResponseWriter, r *http.Request) {
	lm, err := h.liveManager()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	name, ok := strings.CutSuffix(r.PathValue("frame"), ".jpg")
	ch := relay.Channel(name)
	if !ok || !ch.Valid() {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "unknown frame %q", r.PathValue("frame")))

		return
	}
	width, err := queryWidth(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	frame, ok := lm.Frame(ch)
	if !ok {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "no %s frame on display", ch))

		return
	}

	w.Header().Set("X-Frame-Seq", strconv.FormatUint(frame.Seq, 10))
	writeImage(w, r, frame.Data, width)
}
