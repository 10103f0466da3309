package relay_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"pcbinspect/pkg/relay"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func TestHandleStore_ReplaceKeepsOneLivePerChannel(t *testing.T) {
	maxLive := map[relay.Channel]int{}
	s := relay.NewHandleStore(func(ch relay.Channel, live int) {
		if live > maxLive[ch] {
			maxLive[ch] = live
		}
	})

	for i := 0; i < 5; i++ {
		s.Replace(relay.ChannelCamera, uint64(i), []byte("camera"))
		s.Replace(relay.ChannelPCB, uint64(i), []byte("pcb"))
	}

	require.Equal(t, 2, s.Live())
	acquired, released := s.Counts()
	require.EqualValues(t, 10, acquired)
	require.EqualValues(t, 8, released)
	require.Equal(t, 1, maxLive[relay.ChannelCamera])
	require.Equal(t, 1, maxLive[relay.ChannelPCB])

	h, ok := s.Current(relay.ChannelCamera)
	require.True(t, ok)
	require.EqualValues(t, 4, h.Seq)
	require.False(t, h.Decoded)
}

func TestHandleStore_DecodesDimensions(t *testing.T) {
	s := relay.NewHandleStore(nil)

	h := s.Replace(relay.ChannelPCB, 0, pngBytes(t, 32, 16))
	require.True(t, h.Decoded)
	require.Equal(t, 32, h.Width)
	require.Equal(t, 16, h.Height)
}

func TestHandleStore_ClearAndReleaseAll(t *testing.T) {
	s := relay.NewHandleStore(nil)

	s.Clear(relay.ChannelPCB)
	_, released := s.Counts()
	require.Zero(t, released)

	first := s.Replace(relay.ChannelCamera, 0, []byte("a"))
	second := s.Replace(relay.ChannelPCB, 0, []byte("b"))
	require.NotEqual(t, first.ID, second.ID)

	s.Clear(relay.ChannelPCB)
	_, ok := s.Current(relay.ChannelPCB)
	require.False(t, ok)
	require.Equal(t, 1, s.Live())

	s.ReleaseAll()
	require.Zero(t, s.Live())
	acquired, released := s.Counts()
	require.Equal(t, acquired, released)
}

func TestChannel_Valid(t *testing.T) {
	require.True(t, relay.ChannelCamera.Valid())
	require.True(t, relay.ChannelPCB.Valid())
	require.False(t, relay.Channel("thermal").Valid())
}
