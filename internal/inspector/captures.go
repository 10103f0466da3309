package inspector

import (
	"sync"

	"pcbinspect/pkg/domain"
)

// Slot names a staged image used by a later workflow step.
type Slot string

const (
	// SlotTemplate holds the known-good board for an analysis.
	SlotTemplate Slot = "template"
	// SlotDefective holds the board under test for an analysis.
	SlotDefective Slot = "defective"
	// SlotFactory holds the reference board registered for a factory run.
	SlotFactory Slot = "factory"
)

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	return s == SlotTemplate || s == SlotDefective || s == SlotFactory
}

// Captures is an in-memory store of staged images keyed by slot. It is safe
// for concurrent use.
type Captures struct {
	mu    sync.RWMutex
	slots map[Slot]domain.Upload
}

// NewCaptures creates an empty store.
func NewCaptures() *Captures {
	return &Captures{slots: make(map[Slot]domain.Upload, 3)}
}

// Put replaces the content of a slot.
func (c *Captures) Put(slot Slot, u domain.Upload) {
	c.mu.Lock()
	c.slots[slot] = u
	c.mu.Unlock()
}

// Get returns the content of a slot.
func (c *Captures) Get(slot Slot) (domain.Upload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, ok := c.slots[slot]

	return u, ok
}

// Remove empties a slot.
func (c *Captures) Remove(slot Slot) {
	c.mu.Lock()
	delete(c.slots, slot)
	c.mu.Unlock()
}

// Clear empties every slot.
func (c *Captures) Clear() {
	c.mu.Lock()
	clear(c.slots)
	c.mu.Unlock()
}
