package relay

import "time"

// DefaultMinPCBFrameBytes is the payload size below which a PCB frame is an
// "empty" placeholder sent by the backend when no board is in view.
const DefaultMinPCBFrameBytes = 100

// Frame is one binary message received from the stream.
type Frame struct {
	Data       []byte
	ReceivedAt time.Time
}

// Pair is a camera frame together with the PCB frame that followed it.
type Pair struct {
	// Seq numbers pairs from zero in emission order.
	Seq uint64
	// Camera is the annotated camera view.
	Camera Frame
	// PCB is the cropped board; nil when no PCB was detected.
	PCB *Frame
}

// Pairer turns an ordered stream of frames into camera/PCB pairs. Frames are
// consumed strictly two at a time in arrival order; there is no reordering and
// nothing is dropped. Pairer is not safe for concurrent use.
type Pairer struct {
	minPCB int
	queue  []Frame
	seq    uint64
}

// NewPairer creates a Pairer. PCB frames shorter than minPCBBytes are reported
// as "no PCB"; a value <= 0 selects DefaultMinPCBFrameBytes.
func NewPairer(minPCBBytes int) *Pairer {
	if minPCBBytes <= 0 {
		minPCBBytes = DefaultMinPCBFrameBytes
	}

	return &Pairer{minPCB: minPCBBytes}
}

// Push appends a frame and returns every pair completed by it. With the
// backend's alternating pattern this is zero or one pair.
func (p *Pairer) Push(f Frame) []Pair {
	p.queue = append(p.queue, f)

	var out []Pair
	for len(p.queue) >= 2 {
		camera, pcb := p.queue[0], p.queue[1]
		// shift without keeping references to consumed payloads
		p.queue[0], p.queue[1] = Frame{}, Frame{}
		p.queue = p.queue[2:]

		pair := Pair{Seq: p.seq, Camera: camera}
		if len(pcb.Data) >= p.minPCB {
			pair.PCB = &pcb
		}
		p.seq++
		out = append(out, pair)
	}
	if len(p.queue) == 0 {
		p.queue = nil
	}

	return out
}

// Pending returns the number of buffered frames waiting for a partner.
func (p *Pairer) Pending() int { return len(p.queue) }

// Reset discards buffered frames. Sequence numbering continues.
func (p *Pairer) Reset() { p.queue = nil }
