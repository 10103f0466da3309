package domain

// StreamKind selects one of the backend's live frame streams.
type StreamKind string

const (
	// StreamDetection is the free-running PCB detection stream.
	StreamDetection StreamKind = "detection"
	// StreamFactory is the factory workflow stream bound to a reference PCB.
	// It additionally emits control messages when new results are stored.
	StreamFactory StreamKind = "factory"
)

// Valid reports whether k names a known stream.
func (k StreamKind) Valid() bool {
	return k == StreamDetection || k == StreamFactory
}

// ControlNewResult is the control message type announcing that the backend
// stored a new inspection result for the running factory workflow.
const ControlNewResult = "new_result"

// ControlMessage is a JSON text message sent on a live stream alongside the
// binary frames.
type ControlMessage struct {
	Type string `json:"type"`
}
