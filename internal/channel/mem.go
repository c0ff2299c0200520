package channel

import (
	"encoding/json"
	"sync"
)

// Memory is an in-process Bus end. Frames emitted on one end are dispatched
// to the peer end's handlers, sequentially. Used by tests and by the host
// simulator; dispatch order matches emission order.
type Memory struct {
	mu       sync.Mutex
	handlers map[string]Handler
	peer     *Memory
}

var _ Bus = (*Memory)(nil)

// MemoryPair returns two connected in-process channel ends.
func MemoryPair() (*Memory, *Memory) {
	a := &Memory{handlers: make(map[string]Handler)}
	b := &Memory{handlers: make(map[string]Handler)}
	a.peer = b
	b.peer = a
	return a, b
}

// Emit serializes the payload and delivers it to the peer's handler, if any.
// Delivery is synchronous, which gives tests deterministic ordering.
func (m *Memory) Emit(event string, payload interface{}) error {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		raw = data
	}

	m.peer.mu.Lock()
	h := m.peer.handlers[event]
	m.peer.mu.Unlock()

	if h != nil {
		h(raw)
	}
	return nil
}

// On registers the handler for an event name, replacing any previous one.
func (m *Memory) On(event string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[event] = h
}

// Off removes the handler for an event name.
func (m *Memory) Off(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, event)
}
