// Package live owns the single frame relay shown to the operator. Starting a
// stream replaces the previous one so at most one backend stream is consumed
// at a time.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"pcbinspect/internal/config"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/metrics"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/relay/wsconn"
	"pcbinspect/pkg/serrors"
)

// StreamLocator resolves the WebSocket URL of a backend stream.
type StreamLocator interface {
	StreamURL(kind domain.StreamKind, pcbID domain.PCBID) (string, error)
}

// Syncer is notified when the factory stream announces a new result.
type Syncer interface {
	RequestSync(ctx context.Context, id domain.PCBID) (bool, error)
}

// DialerFactory creates the dialer of a stream URL.
type DialerFactory func(url string) relay.Dialer

// Options configure the relays created by a Manager.
type Options struct {
	MinPCBFrameBytes int
	FPSInterval      time.Duration
	ReconnectDelay   time.Duration
	HandshakeTimeout time.Duration
	Metrics          *metrics.Relay
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, m *metrics.Relay) Options {
	return Options{
		MinPCBFrameBytes: cfg.Relay.MinPCBFrameBytes,
		FPSInterval:      cfg.Relay.FPSInterval,
		ReconnectDelay:   cfg.Relay.ReconnectDelay,
		HandshakeTimeout: cfg.Backend.HandshakeTimeout,
		Metrics:          m,
	}
}

// Status describes the active stream, if any.
type Status struct {
	Active bool              `json:"active"`
	Kind   domain.StreamKind `json:"kind,omitempty"`
	PCBID  domain.PCBID      `json:"pcbId,omitempty"`
	// LastError is the error the last stream ended with.
	LastError string          `json:"lastError,omitempty"`
	Relay     *relay.Snapshot `json:"relay,omitempty"`
}

type session struct {
	kind  domain.StreamKind
	pcbID domain.PCBID
	relay *relay.Relay
	// cancel ends the session's run context, also before Run started.
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager starts and stops relays on behalf of the API.
type Manager struct {
	ctx     context.Context //nolint: containedctx
	streams StreamLocator
	syncer  Syncer
	dial    DialerFactory
	opts    Options

	// startMu serializes Start and Stop so stopping the previous session and
	// installing the next one happen as one step.
	startMu sync.Mutex

	mu      sync.Mutex
	current *session
	lastErr error
}

// NewManager creates a Manager. Relays run under ctx, not under the request
// that started them. A nil dial uses WebSocket connections.
func NewManager(ctx context.Context, streams StreamLocator, syncer Syncer, dial DialerFactory, opts Options) *Manager {
	if dial == nil {
		timeout := opts.HandshakeTimeout
		dial = func(url string) relay.Dialer { return wsconn.NewDialer(url, timeout) }
	}

	return &Manager{
		ctx:     ctx,
		streams: streams,
		syncer:  syncer,
		dial:    dial,
		opts:    opts,
	}
}

// Start replaces the active stream with a new one. The factory stream needs
// a PCB id and triggers a result sync for every new_result message.
func (m *Manager) Start(ctx context.Context, kind domain.StreamKind, pcbID domain.PCBID) (Status, error) {
	if !kind.Valid() {
		return Status{}, serrors.With(serrors.ErrBadRequest, "unknown stream %q", kind)
	}
	url, err := m.streams.StreamURL(kind, pcbID)
	if err != nil {
		return Status{}, fmt.Errorf("could not resolve stream url: %w", err)
	}

	m.startMu.Lock()
	defer m.startMu.Unlock()

	m.stopCurrent()

	opts := relay.Options{
		Name:             string(kind),
		MinPCBFrameBytes: m.opts.MinPCBFrameBytes,
		FPSInterval:      m.opts.FPSInterval,
		ReconnectDelay:   m.opts.ReconnectDelay,
		Metrics:          m.opts.Metrics,
	}
	if kind == domain.StreamFactory && m.syncer != nil {
		opts.OnControl = func(ctx context.Context, _ domain.ControlMessage) {
			if _, err := m.syncer.RequestSync(ctx, pcbID); err != nil {
				logger.Warn(ctx, "could not request result sync", zap.Error(err))
			}
		}
	}

	runCtx, cancel := context.WithCancel(logger.WithFields(m.ctx, zap.Int64("pcbId", int64(pcbID))))
	s := &session{
		kind:   kind,
		pcbID:  pcbID,
		relay:  relay.New(m.dial(url), opts),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	m.mu.Lock()
	m.current = s
	m.lastErr = nil
	m.mu.Unlock()

	go func() {
		defer close(s.done)

		err := s.relay.Run(runCtx)
		if err != nil && !errors.Is(err, relay.ErrRunning) {
			logger.Warn(runCtx, "live stream ended with error", zap.Error(err))
		}

		m.mu.Lock()
		if m.current == s {
			m.lastErr = err
		}
		m.mu.Unlock()
	}()

	logger.Info(ctx, "live stream started", zap.String("stream", string(kind)), zap.Int64("pcbId", int64(pcbID)))

	return m.Status(), nil
}

// Stop stops the active stream and waits for it to release its frames. The
// wait does not depend on ctx: cancelling the session unblocks the relay, so
// it always returns once the frames are released.
func (m *Manager) Stop(ctx context.Context) {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.stopCurrent() {
		logger.Debug(ctx, "live stream stopped")
	}
}

// stopCurrent cancels the current session and waits for its relay to return.
// The caller holds startMu.
func (m *Manager) stopCurrent() bool {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()
	if s == nil {
		return false
	}

	s.cancel()
	s.relay.Stop()
	<-s.done

	return true
}

// Status returns the state of the current or last stream.
func (m *Manager) Status() Status {
	m.mu.Lock()
	s := m.current
	lastErr := m.lastErr
	m.mu.Unlock()

	if s == nil {
		return Status{}
	}

	snap := s.relay.Snapshot()
	st := Status{
		Active: s.relay.Running(),
		Kind:   s.kind,
		PCBID:  s.pcbID,
		Relay:  &snap,
	}
	if lastErr != nil {
		st.LastError = lastErr.Error()
	}

	return st
}

// Frame returns the latest frame displayed on ch by the current stream.
func (m *Manager) Frame(ch relay.Channel) (relay.Handle, bool) {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()

	if s == nil {
		return relay.Handle{}, false
	}

	return s.relay.Frame(ch)
}
