package live_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockinspector "pcbinspect/internal/inspector/mock"
	"pcbinspect/internal/live"
	mockbackend "pcbinspect/pkg/backend/mock"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/serrors"
)

// scriptConn replays messages then blocks until closed.
type scriptConn struct {
	msgs   chan relay.Message
	closed chan struct{}
	once   sync.Once
}

func newScriptConn(msgs ...relay.Message) *scriptConn {
	c := &scriptConn{msgs: make(chan relay.Message, len(msgs)), closed: make(chan struct{})}
	for _, m := range msgs {
		c.msgs <- m
	}

	return c
}

func (c *scriptConn) ReadMessage() (relay.Message, error) {
	select {
	case m := <-c.msgs:
		return m, nil
	case <-c.closed:
		return relay.Message{}, errors.New("closed")
	}
}

func (c *scriptConn) Close() error {
	c.once.Do(func() { close(c.closed) })

	return nil
}

func frame(size int) relay.Message {
	return relay.Message{Type: relay.BinaryMessage, Data: bytes.Repeat([]byte{1}, size)}
}

func newManager(t *testing.T, conn *scriptConn) (*live.Manager, *mockbackend.MockClient, *mockinspector.MockInspector, *[]string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	streams := mockbackend.NewMockClient(ctrl)
	syncer := mockinspector.NewMockInspector(ctrl)

	var mu sync.Mutex
	var urls []string
	dial := func(url string) relay.Dialer {
		mu.Lock()
		urls = append(urls, url)
		mu.Unlock()

		return relay.DialFunc(func(context.Context) (relay.Conn, error) { return conn, nil })
	}

	m := live.NewManager(context.Background(), streams, syncer, dial, live.Options{FPSInterval: 10 * time.Millisecond})
	t.Cleanup(func() { m.Stop(context.Background()) })

	return m, streams, syncer, &urls
}

func TestManager_StartShowsFrames(t *testing.T) {
	conn := newScriptConn(frame(10), frame(500))
	m, streams, _, urls := newManager(t, conn)

	streams.EXPECT().StreamURL(domain.StreamDetection, domain.PCBID(0)).Return("ws://b/ws/pcb-detection", nil)

	st, err := m.Start(context.Background(), domain.StreamDetection, 0)
	require.NoError(t, err)
	require.Equal(t, domain.StreamDetection, st.Kind)
	require.Equal(t, []string{"ws://b/ws/pcb-detection"}, *urls)

	require.Eventually(t, func() bool {
		_, ok := m.Frame(relay.ChannelPCB)

		return ok
	}, time.Second, 5*time.Millisecond)

	cam, ok := m.Frame(relay.ChannelCamera)
	require.True(t, ok)
	require.Len(t, cam.Data, 10)

	status := m.Status()
	require.True(t, status.Active)
	require.NotNil(t, status.Relay)
	require.Equal(t, relay.StateConnected, status.Relay.State)

	m.Stop(context.Background())
	require.False(t, m.Status().Active)
	_, ok = m.Frame(relay.ChannelCamera)
	require.False(t, ok)
}

func TestManager_FactoryControlRequestsSync(t *testing.T) {
	conn := newScriptConn(relay.Message{Type: relay.TextMessage, Data: []byte(`{"type":"new_result"}`)})
	m, streams, syncer, _ := newManager(t, conn)

	streams.EXPECT().StreamURL(domain.StreamFactory, domain.PCBID(5)).
		Return("ws://b/factory/ws/factory-workflow?pcb_id=5", nil)

	synced := make(chan struct{})
	syncer.EXPECT().RequestSync(gomock.Any(), domain.PCBID(5)).DoAndReturn(
		func(context.Context, domain.PCBID) (bool, error) {
			close(synced)

			return true, nil
		})

	_, err := m.Start(context.Background(), domain.StreamFactory, 5)
	require.NoError(t, err)

	select {
	case <-synced:
	case <-time.After(time.Second):
		t.Fatal("sync was not requested")
	}
}

func TestManager_StartValidates(t *testing.T) {
	m, streams, _, _ := newManager(t, newScriptConn())

	_, err := m.Start(context.Background(), "thermal", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	streams.EXPECT().StreamURL(domain.StreamFactory, domain.PCBID(0)).
		Return("", serrors.With(serrors.ErrBadRequest, "pcb id is required"))
	_, err = m.Start(context.Background(), domain.StreamFactory, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.False(t, m.Status().Active)
}

func TestManager_StartReplacesPrevious(t *testing.T) {
	conn := newScriptConn()
	m, streams, _, urls := newManager(t, conn)

	streams.EXPECT().StreamURL(gomock.Any(), gomock.Any()).Return("ws://b/one", nil)
	_, err := m.Start(context.Background(), domain.StreamDetection, 0)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return m.Status().Active }, time.Second, 5*time.Millisecond)

	streams.EXPECT().StreamURL(gomock.Any(), gomock.Any()).Return("ws://b/two", nil)
	_, err = m.Start(context.Background(), domain.StreamDetection, 0)
	require.NoError(t, err)

	require.Equal(t, []string{"ws://b/one", "ws://b/two"}, *urls)
}

func TestManager_StatusWithoutStream(t *testing.T) {
	m, _, _, _ := newManager(t, newScriptConn())

	require.Equal(t, live.Status{}, m.Status())
	_, ok := m.Frame(relay.ChannelCamera)
	require.False(t, ok)
}

// countingDialer hands out a fresh connection per dial and tracks how many
// are still open.
type countingDialer struct {
	open  atomic.Int64
	dials atomic.Int64
}

type countedConn struct {
	*scriptConn
	d *countingDialer
}

func (c *countedConn) Close() error {
	c.once.Do(func() {
		close(c.closed)
		c.d.open.Add(-1)
	})

	return nil
}

func (d *countingDialer) factory(string) relay.Dialer {
	return relay.DialFunc(func(context.Context) (relay.Conn, error) {
		d.dials.Add(1)
		d.open.Add(1)

		return &countedConn{scriptConn: newScriptConn(), d: d}, nil
	})
}

func newCountingManager(t *testing.T) (*live.Manager, *countingDialer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	streams := mockbackend.NewMockClient(ctrl)
	streams.EXPECT().StreamURL(gomock.Any(), gomock.Any()).Return("ws://b/ws/pcb-detection", nil).AnyTimes()

	d := &countingDialer{}
	m := live.NewManager(context.Background(), streams, nil, d.factory, live.Options{FPSInterval: 10 * time.Millisecond})
	t.Cleanup(func() { m.Stop(context.Background()) })

	return m, d
}

func TestManager_ConcurrentStartsKeepOneStream(t *testing.T) {
	m, d := newCountingManager(t)

	for round := 0; round < 4; round++ {
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := m.Start(context.Background(), domain.StreamDetection, 0)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		require.Eventually(t, func() bool { return d.open.Load() == 1 }, time.Second, 5*time.Millisecond)
		require.True(t, m.Status().Active)
	}

	m.Stop(context.Background())
	require.Zero(t, d.open.Load())
	require.Positive(t, d.dials.Load())
	require.False(t, m.Status().Active)
}

func TestManager_StopWaitsPastRequestContext(t *testing.T) {
	m, d := newCountingManager(t)

	_, err := m.Start(context.Background(), domain.StreamDetection, 0)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return d.open.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Stop(ctx)

	require.Zero(t, d.open.Load())
	_, ok := m.Frame(relay.ChannelCamera)
	require.False(t, ok)
}

func TestManager_StartThenImmediateStop(t *testing.T) {
	m, d := newCountingManager(t)

	for i := 0; i < 16; i++ {
		_, err := m.Start(context.Background(), domain.StreamDetection, 0)
		require.NoError(t, err)
		m.Stop(context.Background())
		require.Zero(t, d.open.Load())
	}
}
