package relay

import (
	"sync"
	"time"

	"pcbinspect/pkg/imageutil"
)

// Channel names one of the two displayed image slots.
type Channel string

const (
	ChannelCamera Channel = "camera"
	ChannelPCB    Channel = "pcb"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool { return c == ChannelCamera || c == ChannelPCB }

// Handle is a display resource allocated for one decoded frame. Handles are
// values; the store owns the live set.
type Handle struct {
	ID      uint64
	Channel Channel
	// Seq is the sequence number of the pair the frame belonged to.
	Seq    uint64
	Data   []byte
	Width  int
	Height int
	// Decoded is false when the payload header could not be parsed; the raw
	// bytes are still displayed as received.
	Decoded   bool
	CreatedAt time.Time
}

// HandleStore keeps at most one live handle per channel. Replacing or
// clearing a channel releases its previous handle before the next one is
// acquired, so the live count per channel never exceeds one.
type HandleStore struct {
	mu       sync.RWMutex
	nextID   uint64
	current  map[Channel]*Handle
	acquired uint64
	released uint64
	// onChange observes the live count of a channel after each change.
	onChange func(ch Channel, live int)
}

// NewHandleStore creates an empty store. onChange may be nil.
func NewHandleStore(onChange func(ch Channel, live int)) *HandleStore {
	return &HandleStore{
		current:  make(map[Channel]*Handle, 2),
		onChange: onChange,
	}
}

// Replace releases the channel's current handle and acquires a new one for
// data.
func (s *HandleStore) Replace(ch Channel, seq uint64, data []byte) Handle {
	h := &Handle{
		Channel:   ch,
		Seq:       seq,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if w, ht, err := imageutil.Dimensions(data); err == nil {
		h.Width, h.Height, h.Decoded = w, ht, true
	}

	s.mu.Lock()
	s.releaseLocked(ch)
	s.nextID++
	h.ID = s.nextID
	s.current[ch] = h
	s.acquired++
	s.mu.Unlock()

	s.notify(ch)

	return *h
}

// Clear releases the channel's current handle, if any.
func (s *HandleStore) Clear(ch Channel) {
	s.mu.Lock()
	released := s.releaseLocked(ch)
	s.mu.Unlock()

	if released {
		s.notify(ch)
	}
}

// ReleaseAll releases every live handle.
func (s *HandleStore) ReleaseAll() {
	s.Clear(ChannelCamera)
	s.Clear(ChannelPCB)
}

// Current returns a copy of the channel's live handle.
func (s *HandleStore) Current(ch Channel) (Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.current[ch]
	if !ok {
		return Handle{}, false
	}

	return *h, true
}

// Live returns the number of live handles across all channels.
func (s *HandleStore) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.current)
}

// Counts returns how many handles were acquired and released so far.
func (s *HandleStore) Counts() (acquired, released uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.acquired, s.released
}

func (s *HandleStore) releaseLocked(ch Channel) bool {
	h, ok := s.current[ch]
	if !ok {
		return false
	}
	h.Data = nil
	delete(s.current, ch)
	s.released++

	return true
}

func (s *HandleStore) notify(ch Channel) {
	if s.onChange == nil {
		return
	}
	live := 0
	if _, ok := s.Current(ch); ok {
		live = 1
	}
	s.onChange(ch, live)
}
