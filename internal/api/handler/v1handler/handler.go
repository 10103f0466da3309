// Package v1handler implements the v1 HTTP API of the gateway.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"pcbinspect/internal/inspector"
	"pcbinspect/internal/live"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/serrors"
)

// DefaultMaxUploadBytes bounds an uploaded image when no limit is configured.
const DefaultMaxUploadBytes = 20 << 20

// LiveManager controls the relay feeding the live view.
type LiveManager interface {
	Start(ctx context.Context, kind domain.StreamKind, pcbID domain.PCBID) (live.Status, error)
	Stop(ctx context.Context)
	Status() live.Status
	Frame(ch relay.Channel) (relay.Handle, bool)
}

type Deps struct {
	Inspector inspector.Inspector
	Live      LiveManager
	// MaxUploadBytes limits request bodies carrying images.
	MaxUploadBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return &Handler{deps: deps}
}

// Register adds the v1 routes to mux. Every route requires a bearer token.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, sec.Middleware(fn))
	}

	route("POST /v1/captures/{slot}", h.PutCapture)
	route("GET /v1/captures/{slot}", h.GetCapture)
	route("DELETE /v1/captures/{slot}", h.DeleteCapture)

	route("POST /v1/analysis", h.Analyze)
	route("POST /v1/detections", h.Detect)

	route("POST /v1/pcbs", h.RegisterPCB)
	route("GET /v1/pcbs", h.ListPCBs)
	route("GET /v1/pcbs/summary", h.PCBSummary)
	route("POST /v1/pcbs/sync", h.SyncAll)
	route("POST /v1/pcbs/{id}/sync", h.SyncPCB)
	route("DELETE /v1/pcbs/{id}", h.DeletePCB)

	route("GET /v1/results/{id}", h.GetResult)
	route("GET /v1/results/{id}/images/{stage}", h.GetResultImage)
	route("DELETE /v1/results/{id}", h.DeleteResult)

	route("POST /v1/live/{stream}/start", h.StartLive)
	route("POST /v1/live/stop", h.StopLive)
	route("GET /v1/live", h.LiveStatus)
	route("GET /v1/live/{frame}", h.LiveFrame)
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse couples an ErrorBody with its status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// defaultMessages are used when an error carries no message of its own.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "backend timed out",
	serrors.ErrUnavailable:  "backend unavailable",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrInternal:     "internal error",
}

// NewError maps err to a response. Internal errors are logged and never
// leak their text; other kinds expose the message they were created with.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)

	msg := defaultMessages[kind]
	var se *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response:   ErrorBody{Code: kind.Error(), Message: msg},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
