// Package httpbackend provides a backend.Client implementation that talks to
// the inspection backend over HTTP.
package httpbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pcbinspect/pkg/backend"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "pcbinspect/pkg/backend/httpbackend"
	// maxResponseBytes bounds response bodies; result payloads carry six
	// base64 images.
	maxResponseBytes = 64 << 20
)

// Client talks to the inspection backend and fulfills the backend.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	streamURL  *url.URL
	tracer     trace.Tracer
	latency    metric.Float64Histogram
}

// Option configures a Client.
type Option func(*options)

type options struct {
	streamBaseURL  string
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithStreamBaseURL overrides the WebSocket base URL. By default it is derived
// from the HTTP base URL by switching the scheme to ws or wss.
func WithStreamBaseURL(u string) Option {
	return func(o *options) { o.streamBaseURL = u }
}

// WithMeterProvider sets the meter provider used for request latency.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithTracerProvider sets the tracer provider used for request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// Ensure Client conforms to the backend.Client interface at compile time.
var _ backend.Client = (*Client)(nil)

// New constructs a Client for the backend at baseURL, e.g.
// "http://localhost:8000".
func New(httpClient *http.Client, baseURL string, opts ...Option) (*Client, error) {
	o := options{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := parseBaseURL(baseURL, "http", "https")
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	var stream *url.URL
	if o.streamBaseURL != "" {
		if stream, err = parseBaseURL(o.streamBaseURL, "ws", "wss"); err != nil {
			return nil, fmt.Errorf("invalid stream url: %w", err)
		}
	} else {
		stream = &url.URL{Scheme: "ws", Host: base.Host, Path: base.Path}
		if base.Scheme == "https" {
			stream.Scheme = "wss"
		}
	}

	latency, err := o.meterProvider.Meter(instrumentationName).Float64Histogram(
		"pcbinspect.backend.request.duration",
		metric.WithDescription("Duration of inspection backend requests."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		streamURL:  stream,
		tracer:     o.tracerProvider.Tracer(instrumentationName),
		latency:    latency,
	}, nil
}

func parseBaseURL(raw string, schemes ...string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			u.Path = strings.TrimSuffix(u.Path, "/")

			return u, nil
		}
	}

	return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
}

// PrepareAnalysis uploads both images to /api/analysis/prepare. When the
// backend cannot align the images the analysis is returned with Detected set
// to false and the backend's message; it is not an error.
func (c *Client) PrepareAnalysis(ctx context.Context, template, defective domain.Upload) (*domain.Analysis, error) {
	body, contentType, err := multipartBody("files", template, defective)
	if err != nil {
		return nil, err
	}

	var resp prepareResponse
	if err := c.do(ctx, "prepare_analysis", http.MethodPost, "/api/analysis/prepare", body, contentType, &resp); err != nil {
		return nil, err
	}

	out := &domain.Analysis{
		Detected: resp.Detected,
		Message:  resp.Message,
		Accuracy: resp.Accuracy,
		Result:   resp.Result,
		Images:   make(map[domain.Stage][]byte, len(resp.Images)),
	}
	if out.Result == "" && out.Accuracy != nil {
		out.Result = domain.Grade(*out.Accuracy)
	}
	for _, stage := range domain.Stages() {
		data, err := decodeImage(resp.Images[string(stage)])
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage, err)
		}
		if data != nil {
			out.Images[stage] = data
		}
	}

	return out, nil
}

// DetectImage uploads one image to /api/pcb-detection/image. The backend
// returns a black placeholder crop when nothing is found; it is dropped so
// PCBImage is nil unless a PCB was detected.
func (c *Client) DetectImage(ctx context.Context, image domain.Upload) (*domain.Detection, error) {
	body, contentType, err := multipartBody("file", image)
	if err != nil {
		return nil, err
	}

	var resp detectResponse
	if err := c.do(ctx, "detect_image", http.MethodPost, "/api/pcb-detection/image", body, contentType, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, serrors.With(serrors.ErrBadRequest, "detection failed: %s", resp.Error)
	}

	display, err := decodeImage(resp.DisplayImage)
	if err != nil {
		return nil, fmt.Errorf("display image: %w", err)
	}
	out := &domain.Detection{Detected: resp.Detected, DisplayImage: display}
	if resp.Detected {
		if out.PCBImage, err = decodeImage(resp.PCBImage); err != nil {
			return nil, fmt.Errorf("pcb image: %w", err)
		}
	}

	return out, nil
}

// CreatePCB uploads a reference image to /factory/create_pcb.
func (c *Client) CreatePCB(ctx context.Context, image domain.Upload) (domain.PCBID, error) {
	body, contentType, err := multipartBody("file", image)
	if err != nil {
		return 0, err
	}

	var resp createPCBResponse
	if err := c.do(ctx, "create_pcb", http.MethodPost, "/factory/create_pcb", body, contentType, &resp); err != nil {
		return 0, err
	}
	if resp.Result.PCBID == 0 {
		return 0, fmt.Errorf("create pcb: response without pcb id (status %q)", resp.Status)
	}

	return domain.PCBID(resp.Result.PCBID), nil
}

// Result fetches /factory/get_result/{id}.
func (c *Client) Result(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error) {
	var resp resultResponse
	if err := c.do(ctx, "get_result", http.MethodGet, "/factory/get_result/"+id.String(), nil, "", &resp); err != nil {
		return nil, err
	}

	rl := resp.ResultList
	out := &domain.InspectionResult{
		ID:          domain.ResultID(rl.ResultsID),
		PCBID:       domain.PCBID(rl.PCBResultID),
		Accuracy:    rl.Accuracy,
		Description: rl.Description,
		Images:      make(domain.ResultImages, len(rl.ImageList)),
	}
	if out.ID == 0 {
		out.ID = id
	}
	for key, img := range rl.ImageList {
		stage := domain.Stage(strings.TrimSuffix(key, "_image"))
		stored, err := img.stored()
		if err != nil {
			return nil, fmt.Errorf("result image %s: %w", key, err)
		}
		out.Images[stage] = stored
	}

	return out, nil
}

// Images fetches /factory/get_images/{pcb_id}.
func (c *Client) Images(ctx context.Context, id domain.PCBID) (*domain.StoredImage, error) {
	var resp imageJSON
	if err := c.do(ctx, "get_images", http.MethodGet, "/factory/get_images/"+id.String(), nil, "", &resp); err != nil {
		return nil, err
	}

	img, err := resp.stored()
	if err != nil {
		return nil, err
	}

	return &img, nil
}

// WorkingResults fetches /factory/get_result_pcb_working/{pcb_id}.
func (c *Client) WorkingResults(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error) {
	var resp summaryJSON
	path := "/factory/get_result_pcb_working/" + id.String()
	if err := c.do(ctx, "get_result_pcb_working", http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	if resp.PCBID == 0 {
		resp.PCBID = int64(id)
	}

	s, err := resp.summary()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// AllResults fetches /factory/get_all_pcb_results.
func (c *Client) AllResults(ctx context.Context) ([]domain.PCBSummary, error) {
	var resp allResultsResponse
	if err := c.do(ctx, "get_all_pcb_results", http.MethodGet, "/factory/get_all_pcb_results", nil, "", &resp); err != nil {
		return nil, err
	}

	out := make([]domain.PCBSummary, 0, len(resp.Results))
	for _, r := range resp.Results {
		s, err := r.summary()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// DeletePCB calls DELETE /factory/delete_pcb/{pcb_id}.
func (c *Client) DeletePCB(ctx context.Context, id domain.PCBID) error {
	return c.do(ctx, "delete_pcb", http.MethodDelete, "/factory/delete_pcb/"+id.String(), nil, "", nil)
}

// DeleteResult calls DELETE /factory/delete_result/{result_id}.
func (c *Client) DeleteResult(ctx context.Context, id domain.ResultID) error {
	return c.do(ctx, "delete_result", http.MethodDelete, "/factory/delete_result/"+id.String(), nil, "", nil)
}

// StreamURL returns the WebSocket URL of a live stream.
func (c *Client) StreamURL(kind domain.StreamKind, pcbID domain.PCBID) (string, error) {
	u := *c.streamURL
	switch kind {
	case domain.StreamDetection:
		u.Path += "/ws/pcb-detection"
	case domain.StreamFactory:
		if pcbID <= 0 {
			return "", serrors.With(serrors.ErrBadRequest, "factory stream requires a pcb id")
		}
		u.Path += "/factory/ws/factory-workflow"
		u.RawQuery = url.Values{"pcb_id": {pcbID.String()}}.Encode()
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown stream %q", kind)
	}

	return u.String(), nil
}

// do sends a request and decodes a JSON response into out (when non-nil).
// Non-2xx responses become serrors kinds derived from the status code.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "backend."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.method", method), attribute.String("http.path", path)))
	start := time.Now()
	status := 0
	defer func() {
		c.latency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("op", op),
			attribute.Int("status", status),
		))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	u := *c.baseURL
	u.Path += path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, err, "%s timed out", op)
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach backend")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", status))

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serrors.With(serrors.FromHTTPStatus(resp.StatusCode), "%s failed: %s", op, errorDetail(b))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
