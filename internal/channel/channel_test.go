package channel

import (
	"encoding/json"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestEncodeFrame_RoundTrip(t *testing.T) {
	data, err := EncodeFrame(EventWindowCreated, map[string]interface{}{"id": 7})
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Fatal("frame is not newline-terminated")
	}

	frame, err := ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if frame.Event != EventWindowCreated {
		t.Fatalf("event = %q, want %q", frame.Event, EventWindowCreated)
	}

	var payload struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.ID != 7 {
		t.Fatalf("id = %d, want 7", payload.ID)
	}
}

func TestEncodeFrame_NilPayloadOmitted(t *testing.T) {
	data, err := EncodeFrame(EventWindowClosed, nil)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	frame, err := ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if frame.Payload != nil {
		t.Fatalf("payload = %s, want none", frame.Payload)
	}
}

func TestParseFrame_RejectsMissingEvent(t *testing.T) {
	if _, err := ParseFrame([]byte(`{"payload":1}`)); err == nil {
		t.Fatal("expected error for frame without event name")
	}
	if _, err := ParseFrame([]byte("not json\n")); err == nil {
		t.Fatal("expected error for malformed frame")
	}
}

func TestMemoryPair_DeliversToPeer(t *testing.T) {
	controller, host := MemoryPair()

	var got []string
	host.On(EventCreateWindow, func(payload json.RawMessage) {
		got = append(got, string(payload))
	})

	if err := controller.Emit(EventCreateWindow, map[string]string{"loadTarget": "http://x/"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("handler invoked %d times, want 1", len(got))
	}
}

func TestMemoryPair_ReRegisterReplacesHandler(t *testing.T) {
	controller, host := MemoryPair()

	first, second := 0, 0
	host.On(EventCreateView, func(json.RawMessage) { first++ })
	host.On(EventCreateView, func(json.RawMessage) { second++ })

	if err := controller.Emit(EventCreateView, nil); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if first != 0 || second != 1 {
		t.Fatalf("first = %d, second = %d; want 0, 1", first, second)
	}

	host.Off(EventCreateView)
	if err := controller.Emit(EventCreateView, nil); err != nil {
		t.Fatalf("Emit after Off: %v", err)
	}
	if second != 1 {
		t.Fatalf("handler invoked after Off")
	}
}

func TestSocket_EmitAndDispatch(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "host.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		accepted <- conn
	}()

	sock, err := Dial(socketPath, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer sock.Close()

	hostConn := <-accepted
	defer hostConn.Close()

	received := make(chan json.RawMessage, 1)
	sock.On(EventWindowCreated, func(payload json.RawMessage) {
		received <- payload
	})

	// Host announces a created window.
	frame, err := EncodeFrame(EventWindowCreated, map[string]interface{}{"id": 3})
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	if _, err := hostConn.Write(frame); err != nil {
		t.Fatalf("host write: %v", err)
	}

	select {
	case payload := <-received:
		var body struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(payload, &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.ID != 3 {
			t.Fatalf("id = %d, want 3", body.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched event")
	}

	// Controller emits a command; the host should see a parseable frame.
	if err := sock.Emit(EventCreateWindow, map[string]string{"token": "abc"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	buf := make([]byte, 4096)
	hostConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := hostConn.Read(buf)
	if err != nil {
		t.Fatalf("host read: %v", err)
	}
	got, err := ParseFrame(buf[:n])
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if got.Event != EventCreateWindow {
		t.Fatalf("event = %q, want %q", got.Event, EventCreateWindow)
	}
}

// testWriter routes slog output through the test log.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}
