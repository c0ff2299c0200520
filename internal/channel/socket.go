package channel

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"
)

// Socket is a Bus backed by the UI host's unix socket. One goroutine reads
// frames and dispatches handlers sequentially, so handlers observe events in
// delivery order and never run concurrently with each other.
type Socket struct {
	conn   net.Conn
	logger *slog.Logger

	writeMu sync.Mutex

	mu       sync.Mutex
	handlers map[string]Handler

	done      chan struct{}
	closeOnce sync.Once
}

var _ Bus = (*Socket)(nil)

// Dial connects to the host socket and starts the dispatch loop.
func Dial(socketPath string, logger *slog.Logger) (*Socket, error) {
	conn, err := net.DialTimeout("unix", socketPath, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to host: %w (is the host running?)", err)
	}

	s := &Socket{
		conn:     conn,
		logger:   logger,
		handlers: make(map[string]Handler),
		done:     make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

// Emit writes a single frame to the host. Fire-and-forget.
func (s *Socket) Emit(event string, payload interface{}) error {
	data, err := EncodeFrame(event, payload)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.conn.Write(data); err != nil {
		return fmt.Errorf("failed to send %s: %w", event, err)
	}
	return nil
}

// On registers the handler for an event name, replacing any previous one.
func (s *Socket) On(event string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[event] = h
}

// Off removes the handler for an event name.
func (s *Socket) Off(event string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handlers, event)
}

// Close tears down the connection and stops the dispatch loop.
func (s *Socket) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return s.conn.Close()
}

// Done is closed when the connection has gone away.
func (s *Socket) Done() <-chan struct{} {
	return s.done
}

func (s *Socket) readLoop() {
	reader := bufio.NewReader(s.conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			select {
			case <-s.done:
			default:
				if err != io.EOF {
					s.logger.Error("host connection read error", "error", err)
				}
			}
			s.closeOnce.Do(func() { close(s.done) })
			return
		}

		frame, err := ParseFrame(line)
		if err != nil {
			s.logger.Warn("dropping malformed frame", "error", err)
			continue
		}
		s.dispatch(frame.Event, frame.Payload)
	}
}

func (s *Socket) dispatch(event string, payload json.RawMessage) {
	s.mu.Lock()
	h := s.handlers[event]
	s.mu.Unlock()

	if h == nil {
		s.logger.Debug("unhandled host event", "event", event)
		return
	}
	h(payload)
}
