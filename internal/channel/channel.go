package channel

import (
	"encoding/json"
	"fmt"
)

// Event names exchanged with the UI host.
const (
	EventCreateWindow    = "createBrowserWindow"
	EventWindowCreated   = "BrowserWindowCreated"
	EventWindowClosed    = "BrowserWindowClosed"
	EventCreateView      = "createBrowserView"
	EventViewCreated     = "BrowserViewCreated"
	EventQuitOnAllClosed = "quit-on-all-closed"
)

// Handler receives the raw payload of a single event.
type Handler func(payload json.RawMessage)

// Bus is a bidirectional event channel to the UI host. Emit is
// fire-and-forget; there is no acknowledgment. At most one handler is
// registered per event name, and re-registering replaces the previous one.
// Handlers are invoked sequentially in delivery order.
type Bus interface {
	Emit(event string, payload interface{}) error
	On(event string, h Handler)
	Off(event string)
}

// Frame is one event on the wire, encoded as a single JSON line.
type Frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EncodeFrame marshals an event and its payload into a newline-terminated frame.
func EncodeFrame(event string, payload interface{}) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", event, err)
		}
		raw = data
	}

	data, err := json.Marshal(Frame{Event: event, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseFrame parses a single frame line.
func ParseFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse frame: %w", err)
	}
	if f.Event == "" {
		return nil, fmt.Errorf("frame has no event name")
	}
	return &f, nil
}
