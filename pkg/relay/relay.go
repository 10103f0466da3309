// Package relay consumes a backend frame stream and keeps the two latest
// frames (camera view and cropped PCB) ready for display.
//
// The backend sends binary JPEG frames in a fixed alternating pattern: frame
// 2k is the annotated camera view and frame 2k+1 the perspective-corrected PCB
// (or a tiny placeholder when no board is in view). The relay buffers frames in
// arrival order, consumes them two at a time, allocates a display handle for
// each channel and releases the handle it replaces. A frame counter incremented
// per pair is sampled once per interval into an FPS figure.
//
// There are no acknowledgements, sequence numbers or backpressure on the wire.
// A closed or failed connection moves the relay to a disconnected or error
// state, drops buffered frames and resets the FPS figure. Reconnection is off
// unless Options.ReconnectDelay is set.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/metrics"

	"go.uber.org/zap"
)

// ErrRunning is returned by Run when the relay is already running.
var ErrRunning = errors.New("relay already running")

// MessageType distinguishes binary frames from text control messages.
type MessageType int

const (
	BinaryMessage MessageType = iota + 1
	TextMessage
)

// Message is a single message read from a stream connection.
type Message struct {
	Type MessageType
	Data []byte
}

// Conn is an open stream connection. ReadMessage returns io.EOF once the
// peer closed the stream normally. Close unblocks a pending ReadMessage.
type Conn interface {
	ReadMessage() (Message, error)
	Close() error
}

// Dialer opens stream connections.
type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// DialFunc adapts a function to the Dialer interface.
type DialFunc func(ctx context.Context) (Conn, error)

// Dial calls f(ctx).
func (f DialFunc) Dial(ctx context.Context) (Conn, error) { return f(ctx) }

// State is the connection state shown to operators.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateError        State = "error"
)

// Options configure a Relay.
type Options struct {
	// Name labels logs and metrics, usually the stream kind.
	Name string
	// MinPCBFrameBytes is the size below which a PCB frame means "no PCB".
	MinPCBFrameBytes int
	// FPSInterval is the FPS sampling period; defaults to one second.
	FPSInterval time.Duration
	// ReconnectDelay enables redialing after a closed or failed connection.
	// Zero disables reconnection.
	ReconnectDelay time.Duration
	// OnControl is called for every recognised control message.
	OnControl func(ctx context.Context, msg domain.ControlMessage)
	// OnPair observes every displayed pair, after handles were updated.
	OnPair func(p Pair)
	// Metrics is optional.
	Metrics *metrics.Relay
}

// Snapshot is a point-in-time view of a relay.
type Snapshot struct {
	Name   string `json:"name"`
	State  State  `json:"state"`
	Status string `json:"status"`
	// FPS is the number of pairs displayed during the last interval.
	FPS     int    `json:"fps"`
	Frames  uint64 `json:"frames"`
	Pairs   uint64 `json:"pairs"`
	Pending int    `json:"pending"`
	// CameraSeq and PCBSeq are the pair sequence numbers on display, or nil.
	CameraSeq *uint64 `json:"cameraSeq,omitempty"`
	PCBSeq    *uint64 `json:"pcbSeq,omitempty"`
}

// Relay pairs and displays frames from one stream.
type Relay struct {
	dialer  Dialer
	opts    Options
	handles *HandleStore

	// frameCount counts pairs since the last FPS sample.
	frameCount atomic.Int64
	fps        atomic.Int64
	frames     atomic.Uint64
	pairs      atomic.Uint64

	mu      sync.Mutex
	pairer  *Pairer
	state   State
	status  string
	running bool
	cancel  context.CancelFunc
}

// New creates a Relay reading from connections produced by dialer.
func New(dialer Dialer, opts Options) *Relay {
	if opts.FPSInterval <= 0 {
		opts.FPSInterval = time.Second
	}

	r := &Relay{
		dialer: dialer,
		opts:   opts,
		pairer: NewPairer(opts.MinPCBFrameBytes),
		state:  StateDisconnected,
		status: "Disconnected",
	}
	r.handles = NewHandleStore(func(ch Channel, live int) {
		opts.Metrics.SetLiveHandles(string(ch), live)
	})

	return r
}

// Run connects and relays frames until the connection ends or ctx is
// cancelled. With reconnection disabled a failed connection is returned as an
// error; a normal close or cancellation returns nil.
func (r *Relay) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()

		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	r.running = true
	r.cancel = cancel
	r.mu.Unlock()

	defer func() {
		cancel()
		r.mu.Lock()
		r.running = false
		r.cancel = nil
		r.mu.Unlock()
	}()

	ctx = logger.WithFields(ctx, zap.String("stream", r.opts.Name))

	for {
		err := r.session(ctx)
		if ctx.Err() != nil {
			r.setState(StateDisconnected, "Disconnected")

			return nil
		}
		if r.opts.ReconnectDelay <= 0 {
			return err
		}

		logger.Info(ctx, "stream ended, reconnecting",
			zap.Duration("delay", r.opts.ReconnectDelay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			r.setState(StateDisconnected, "Disconnected")

			return nil
		case <-time.After(r.opts.ReconnectDelay):
		}
	}
}

// Stop closes the connection and stops Run. It is safe to call at any time.
func (r *Relay) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Running reports whether Run is active.
func (r *Relay) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running
}

// Frame returns the handle currently displayed on ch.
func (r *Relay) Frame(ch Channel) (Handle, bool) {
	return r.handles.Current(ch)
}

// Handles exposes the relay's handle store for inspection.
func (r *Relay) Handles() *HandleStore { return r.handles }

// Snapshot returns the relay's current state.
func (r *Relay) Snapshot() Snapshot {
	r.mu.Lock()
	s := Snapshot{
		Name:    r.opts.Name,
		State:   r.state,
		Status:  r.status,
		Pending: r.pairer.Pending(),
	}
	r.mu.Unlock()

	s.FPS = int(r.fps.Load())
	s.Frames = r.frames.Load()
	s.Pairs = r.pairs.Load()
	if h, ok := r.handles.Current(ChannelCamera); ok {
		s.CameraSeq = &h.Seq
	}
	if h, ok := r.handles.Current(ChannelPCB); ok {
		s.PCBSeq = &h.Seq
	}

	return s
}

// session runs a single connection from dial to teardown.
func (r *Relay) session(ctx context.Context) error {
	r.setState(StateConnecting, "Connecting...")

	conn, err := r.dialer.Dial(ctx)
	if err != nil {
		r.setState(StateError, "Error: "+err.Error())
		logger.Warn(ctx, "could not connect to stream", zap.Error(err))

		return fmt.Errorf("could not connect to stream: %w", err)
	}

	r.setState(StateConnected, "Connected - Detecting PCB...")
	r.opts.Metrics.SetConnected(r.opts.Name, true)
	logger.Info(ctx, "stream connected")

	sessCtx, stop := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-sessCtx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer wg.Done()
		r.sampleFPS(sessCtx)
	}()

	err = r.consume(sessCtx, conn)
	stop()
	wg.Wait()
	r.teardown()

	if err == nil || errors.Is(err, io.EOF) || ctx.Err() != nil {
		r.setState(StateDisconnected, "Disconnected")
		logger.Info(ctx, "stream closed")

		return nil
	}

	r.setState(StateError, "Error: "+err.Error())
	logger.Warn(ctx, "stream failed", zap.Error(err))

	return fmt.Errorf("stream failed: %w", err)
}

func (r *Relay) consume(ctx context.Context, conn Conn) error {
	for {
		msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		switch msg.Type {
		case BinaryMessage:
			r.push(msg.Data)
		case TextMessage:
			r.control(ctx, msg.Data)
		}
	}
}

func (r *Relay) push(data []byte) {
	r.frames.Add(1)
	r.opts.Metrics.FrameReceived(r.opts.Name)

	r.mu.Lock()
	pairs := r.pairer.Push(Frame{Data: data, ReceivedAt: time.Now()})
	r.mu.Unlock()

	for _, p := range pairs {
		r.display(p)
	}
}

func (r *Relay) display(p Pair) {
	r.handles.Replace(ChannelCamera, p.Seq, p.Camera.Data)
	if p.PCB != nil {
		r.handles.Replace(ChannelPCB, p.Seq, p.PCB.Data)
	} else {
		r.handles.Clear(ChannelPCB)
	}

	r.frameCount.Add(1)
	r.pairs.Add(1)
	r.opts.Metrics.PairDisplayed(r.opts.Name, p.PCB == nil)

	if r.opts.OnPair != nil {
		r.opts.OnPair(p)
	}
}

func (r *Relay) control(ctx context.Context, data []byte) {
	var msg domain.ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type == "" {
		logger.Debug(ctx, "ignoring text message", zap.ByteString("message", data))

		return
	}
	if msg.Type != domain.ControlNewResult {
		logger.Debug(ctx, "ignoring control message", zap.String("type", msg.Type))

		return
	}

	logger.Info(ctx, "received control message", zap.String("type", msg.Type))
	if r.opts.OnControl != nil {
		r.opts.OnControl(ctx, msg)
	}
}

func (r *Relay) sampleFPS(ctx context.Context) {
	ticker := time.NewTicker(r.opts.FPSInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := r.frameCount.Swap(0)
			r.fps.Store(n)
			r.opts.Metrics.SetFPS(r.opts.Name, int(n))
		}
	}
}

// teardown drops buffered frames, releases handles and zeroes the FPS figure.
func (r *Relay) teardown() {
	r.mu.Lock()
	r.pairer.Reset()
	r.mu.Unlock()

	r.handles.ReleaseAll()
	r.frameCount.Store(0)
	r.fps.Store(0)
	r.opts.Metrics.SetFPS(r.opts.Name, 0)
	r.opts.Metrics.SetConnected(r.opts.Name, false)
}

func (r *Relay) setState(s State, status string) {
	r.mu.Lock()
	r.state = s
	r.status = status
	r.mu.Unlock()
}
