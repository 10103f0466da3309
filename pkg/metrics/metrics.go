// Package metrics holds the Prometheus collectors and the OpenTelemetry meter
// provider shared by the relay, the backend client and the API server.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Relay groups the collectors updated by a frame relay. All methods are nil
// safe so relays can run without metrics in tests.
type Relay struct {
	frames      *prometheus.CounterVec
	pairs       *prometheus.CounterVec
	emptyPCB    *prometheus.CounterVec
	fps         *prometheus.GaugeVec
	liveHandles *prometheus.GaugeVec
	connected   *prometheus.GaugeVec
}

// NewRelay creates the relay collectors and registers them with reg.
func NewRelay(reg prometheus.Registerer) (*Relay, error) {
	r := &Relay{
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "frames_total",
			Help:      "Binary frames received from the backend stream.",
		}, []string{"stream"}),
		pairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "pairs_total",
			Help:      "Camera/PCB frame pairs displayed.",
		}, []string{"stream"}),
		emptyPCB: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "empty_pcb_frames_total",
			Help:      "Pairs whose PCB frame was below the size threshold.",
		}, []string{"stream"}),
		fps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "fps",
			Help:      "Pairs displayed during the last reporting interval.",
		}, []string{"stream"}),
		liveHandles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "live_handles",
			Help:      "Display handles currently held per channel.",
		}, []string{"channel"}),
		connected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pcbinspect",
			Subsystem: "relay",
			Name:      "connected",
			Help:      "1 while the relay holds an open stream connection.",
		}, []string{"stream"}),
	}

	for _, c := range []prometheus.Collector{r.frames, r.pairs, r.emptyPCB, r.fps, r.liveHandles, r.connected} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register relay collector: %w", err)
		}
	}

	return r, nil
}

func (r *Relay) FrameReceived(stream string) {
	if r != nil {
		r.frames.WithLabelValues(stream).Inc()
	}
}

func (r *Relay) PairDisplayed(stream string, emptyPCB bool) {
	if r == nil {
		return
	}
	r.pairs.WithLabelValues(stream).Inc()
	if emptyPCB {
		r.emptyPCB.WithLabelValues(stream).Inc()
	}
}

func (r *Relay) SetFPS(stream string, fps int) {
	if r != nil {
		r.fps.WithLabelValues(stream).Set(float64(fps))
	}
}

func (r *Relay) SetLiveHandles(channel string, n int) {
	if r != nil {
		r.liveHandles.WithLabelValues(channel).Set(float64(n))
	}
}

func (r *Relay) SetConnected(stream string, connected bool) {
	if r == nil {
		return
	}
	v := 0.0
	if connected {
		v = 1
	}
	r.connected.WithLabelValues(stream).Set(v)
}

// NewMeterProvider builds an OpenTelemetry meter provider whose instruments
// are exported through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
