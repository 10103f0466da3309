package v1handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"pcbinspect/internal/inspector"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/imageutil"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/serrors"
)

type CaptureResponse struct {
	Slot   inspector.Slot `json:"slot"`
	Name   string         `json:"name"`
	Size   int            `json:"size"`
	Width  int            `json:"width,omitempty"`
	Height int            `json:"height,omitempty"`
}

// readUpload reads a raw image body. Without a ?name the file name is derived
// from base and the sniffed content type.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request, base string) (domain.Upload, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.deps.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.Upload{}, serrors.With(serrors.ErrBadRequest, "image exceeds %d bytes", tooLarge.Limit)
		}

		return domain.Upload{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not read image")
	}
	if len(data) == 0 {
		return domain.Upload{}, serrors.With(serrors.ErrBadRequest, "image body is required")
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = base + extensionFor(data)
	}

	return domain.Upload{Name: name, Data: data}, nil
}

func extensionFor(data []byte) string {
	if http.DetectContentType(data) == "image/png" {
		return ".png"
	}

	return ".jpg"
}

func pathSlot(r *http.Request) (inspector.Slot, error) {
	slot := inspector.Slot(r.PathValue("slot"))
	if !slot.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "unknown capture slot %q", slot)
	}

	return slot, nil
}

// PutCapture stores the request body, or with ?source=live the frame shown on
// the live channel (pcb unless ?channel=camera), in a capture slot.
func (h *Handler) PutCapture(w http.ResponseWriter, r *http.Request) {
	slot, err := pathSlot(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var upload domain.Upload
	if r.URL.Query().Get("source") == "live" {
		upload, err = h.liveUpload(r, slot)
	} else {
		upload, err = h.readUpload(w, r, string(slot))
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Inspector.PutCapture(r.Context(), slot, upload); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := CaptureResponse{Slot: slot, Name: upload.Name, Size: len(upload.Data)}
	if width, height, err := imageutil.Dimensions(upload.Data); err == nil {
		res.Width, res.Height = width, height
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) liveUpload(r *http.Request, slot inspector.Slot) (domain.Upload, error) {
	ch := relay.ChannelPCB
	if c := r.URL.Query().Get("channel"); c != "" {
		ch = relay.Channel(c)
	}
	if !ch.Valid() {
		return domain.Upload{}, serrors.With(serrors.ErrBadRequest, "unknown channel %q", ch)
	}
	if h.deps.Live == nil {
		return domain.Upload{}, serrors.With(serrors.ErrConflict, "live view is not available")
	}

	frame, ok := h.deps.Live.Frame(ch)
	if !ok {
		return domain.Upload{}, serrors.With(serrors.ErrConflict, "no %s frame on display", ch)
	}

	return domain.Upload{
		Name: fmt.Sprintf("%s_%s_%d%s", slot, ch, frame.Seq, extensionFor(frame.Data)),
		Data: frame.Data,
	}, nil
}

func (h *Handler) GetCapture(w http.ResponseWriter, r *http.Request) {
	slot, err := pathSlot(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	upload, ok := h.deps.Inspector.Capture(r.Context(), slot)
	if !ok {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "capture slot %q is empty", slot))

		return
	}

	w.Header().Set("Content-Type", upload.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", upload.Name))
	_, _ = w.Write(upload.Data)
}

func (h *Handler) DeleteCapture(w http.ResponseWriter, r *http.Request) {
	slot, err := pathSlot(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.deps.Inspector.RemoveCapture(r.Context(), slot)
	w.WriteHeader(http.StatusNoContent)
}
