package relay_test

import (
	"bytes"
	"testing"

	"pcbinspect/pkg/relay"

	"github.com/stretchr/testify/require"
)

func frame(size int, b byte) relay.Frame {
	return relay.Frame{Data: bytes.Repeat([]byte{b}, size)}
}

func TestPairer_AlternatingFrames(t *testing.T) {
	p := relay.NewPairer(0)

	var pairs []relay.Pair
	pairs = append(pairs, p.Push(frame(2000, 'A'))...)
	require.Empty(t, pairs)
	require.Equal(t, 1, p.Pending())

	pairs = append(pairs, p.Push(frame(5, 'B'))...)
	pairs = append(pairs, p.Push(frame(1800, 'C'))...)
	pairs = append(pairs, p.Push(frame(1200, 'D'))...)

	require.Len(t, pairs, 2)
	require.Equal(t, 0, p.Pending())

	require.EqualValues(t, 0, pairs[0].Seq)
	require.Equal(t, byte('A'), pairs[0].Camera.Data[0])
	require.Nil(t, pairs[0].PCB)

	require.EqualValues(t, 1, pairs[1].Seq)
	require.Equal(t, byte('C'), pairs[1].Camera.Data[0])
	require.NotNil(t, pairs[1].PCB)
	require.Equal(t, byte('D'), pairs[1].PCB.Data[0])
}

func TestPairer_EmitsFloorHalf(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 11} {
		p := relay.NewPairer(relay.DefaultMinPCBFrameBytes)
		emitted := 0
		for i := 0; i < n; i++ {
			emitted += len(p.Push(frame(200, byte(i))))
		}
		require.Equal(t, n/2, emitted, "n=%d", n)
		require.Equal(t, n%2, p.Pending(), "n=%d", n)
	}
}

func TestPairer_Threshold(t *testing.T) {
	p := relay.NewPairer(10)

	pairs := p.Push(frame(1, 'x'))
	require.Empty(t, pairs)
	pairs = p.Push(frame(9, 'y'))
	require.Len(t, pairs, 1)
	require.Nil(t, pairs[0].PCB)

	p.Push(frame(1, 'x'))
	pairs = p.Push(frame(10, 'y'))
	require.Len(t, pairs, 1)
	require.NotNil(t, pairs[0].PCB)
}

func TestPairer_ResetDropsPending(t *testing.T) {
	p := relay.NewPairer(0)
	p.Push(frame(200, 'A'))
	require.Equal(t, 1, p.Pending())

	p.Reset()
	require.Equal(t, 0, p.Pending())

	// the dropped frame does not pair with the next one
	require.Empty(t, p.Push(frame(200, 'B')))
	pairs := p.Push(frame(200, 'C'))
	require.Len(t, pairs, 1)
	require.Equal(t, byte('B'), pairs[0].Camera.Data[0])
}
