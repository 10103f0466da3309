package metrics_test

import (
	"testing"

	"pcbinspect/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRelay_NilSafe(t *testing.T) {
	var r *metrics.Relay
	require.NotPanics(t, func() {
		r.FrameReceived("detection")
		r.PairDisplayed("detection", true)
		r.SetFPS("detection", 3)
		r.SetLiveHandles("camera", 1)
		r.SetConnected("detection", true)
	})
}

func TestRelay_Collects(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRelay(reg)
	require.NoError(t, err)

	r.FrameReceived("factory")
	r.FrameReceived("factory")
	r.PairDisplayed("factory", true)
	r.SetFPS("factory", 7)

	n, err := testutil.GatherAndCount(reg,
		"pcbinspect_relay_frames_total",
		"pcbinspect_relay_pairs_total",
		"pcbinspect_relay_empty_pcb_frames_total",
		"pcbinspect_relay_fps")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	// registering twice on the same registry fails
	_, err = metrics.NewRelay(reg)
	require.Error(t, err)
}

func TestNewMeterProvider(t *testing.T) {
	mp, err := metrics.NewMeterProvider(prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, mp.Meter("test"))
}
