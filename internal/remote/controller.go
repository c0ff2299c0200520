package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/1broseidon/winbridge/internal/channel"
	"github.com/1broseidon/winbridge/internal/platform"
)

// createPayload is the body of a creation command. Every command carries a
// unique request token which the host echoes back in the matching created
// notification.
type createPayload struct {
	Token      string                 `json:"token"`
	LoadTarget string                 `json:"loadTarget,omitempty"`
	Options    map[string]interface{} `json:"options"`
}

// createdPayload is the body of a created notification from the host.
type createdPayload struct {
	Token string `json:"token"`
	ID    int    `json:"id"`
}

// Controller drives window/view creation against the UI host and maintains
// the local inventory of live entities. Construct one per host connection and
// inject it where window management is needed; there is no package-level
// instance.
//
// Creation is correlated by token, so overlapping calls are safe: a created
// notification resolves exactly the call whose token it echoes. A pending
// call blocks until its notification arrives or its context ends; the host
// sends no rejection, so an abandoned context is the only local escape.
type Controller struct {
	bus      channel.Bus
	host     platform.Info
	base     *url.URL
	logger   *slog.Logger
	registry *Registry

	mu             sync.Mutex
	pendingWindows map[string]chan *Window
	pendingViews   map[string]chan *View
}

// NewController wires a controller onto the channel. The standing handlers —
// created-notification resolution per kind and the closed-set sweep — are
// registered here and live for the controller's lifetime, independent of any
// single creation call.
func NewController(bus channel.Bus, host platform.Info, base *url.URL, logger *slog.Logger) *Controller {
	c := &Controller{
		bus:            bus,
		host:           host,
		base:           base,
		logger:         logger,
		registry:       NewRegistry(),
		pendingWindows: make(map[string]chan *Window),
		pendingViews:   make(map[string]chan *View),
	}

	bus.On(channel.EventWindowCreated, c.handleWindowCreated)
	bus.On(channel.EventViewCreated, c.handleViewCreated)
	bus.On(channel.EventWindowClosed, c.handleWindowsClosed)

	return c
}

// Windows returns a snapshot of the live window list in creation order.
func (c *Controller) Windows() []*Window {
	return c.registry.Windows()
}

// Views returns a snapshot of the live view list in creation order.
func (c *Controller) Views() []*View {
	return c.registry.Views()
}

// CreateWindow asks the host to create a window showing loadTarget and blocks
// until the host reports the new window's id or ctx ends. A load target that
// is neither an absolute URL nor a base-relative path fails immediately with
// ErrInvalidArgument; nothing is emitted in that case.
func (c *Controller) CreateWindow(ctx context.Context, opts Options, loadTarget string) (*Window, error) {
	target, err := normalizeTarget(loadTarget, c.base)
	if err != nil {
		return nil, err
	}

	opts = opts.compensated(c.host)

	token := uuid.New().String()
	result := make(chan *Window, 1)
	c.mu.Lock()
	c.pendingWindows[token] = result
	c.mu.Unlock()
	defer c.dropPendingWindow(token)

	payload := createPayload{
		Token:      token,
		LoadTarget: target,
		Options:    opts.encode(),
	}
	if err := c.bus.Emit(channel.EventCreateWindow, payload); err != nil {
		return nil, err
	}
	c.logger.Debug("window creation requested", "token", token, "target", target)

	select {
	case w := <-result:
		return w, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("window creation abandoned: %w", ctx.Err())
	}
}

// CreateView asks the host to create an embedded view and blocks until the
// host reports the new view's id or ctx ends.
func (c *Controller) CreateView(ctx context.Context, opts Options) (*View, error) {
	opts = opts.compensated(c.host)

	token := uuid.New().String()
	result := make(chan *View, 1)
	c.mu.Lock()
	c.pendingViews[token] = result
	c.mu.Unlock()
	defer c.dropPendingView(token)

	payload := createPayload{
		Token:   token,
		Options: opts.encode(),
	}
	if err := c.bus.Emit(channel.EventCreateView, payload); err != nil {
		return nil, err
	}
	c.logger.Debug("view creation requested", "token", token)

	select {
	case v := <-result:
		return v, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("view creation abandoned: %w", ctx.Err())
	}
}

// SetQuitOnAllClosed forwards the process-wide quit flag to the host
// unchanged.
func (c *Controller) SetQuitOnAllClosed(quit bool) error {
	return c.bus.Emit(channel.EventQuitOnAllClosed, quit)
}

// handleWindowCreated registers the announced window and resolves the pending
// call whose token the notification echoes. The window enters the registry
// even if the call was abandoned: the host created it either way, and the
// closed-set sweep will retire it like any other window.
func (c *Controller) handleWindowCreated(payload json.RawMessage) {
	var body createdPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		c.logger.Warn("malformed window-created notification", "error", err)
		return
	}

	w := &Window{ID: body.ID}
	c.registry.addWindow(w)

	c.mu.Lock()
	result, ok := c.pendingWindows[body.Token]
	if ok {
		delete(c.pendingWindows, body.Token)
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Warn("window created with no pending request", "id", body.ID, "token", body.Token)
		return
	}
	result <- w
}

func (c *Controller) handleViewCreated(payload json.RawMessage) {
	var body createdPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		c.logger.Warn("malformed view-created notification", "error", err)
		return
	}

	v := &View{ID: body.ID}
	c.registry.addView(v)

	c.mu.Lock()
	result, ok := c.pendingViews[body.Token]
	if ok {
		delete(c.pendingViews, body.Token)
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Warn("view created with no pending request", "id", body.ID, "token", body.Token)
		return
	}
	result <- v
}

// handleWindowsClosed reconciles the window list against the host's
// authoritative snapshot of still-live ids. Views are not swept; view closure
// is not announced by the host.
func (c *Controller) handleWindowsClosed(payload json.RawMessage) {
	var ids []int
	if err := json.Unmarshal(payload, &ids); err != nil {
		c.logger.Warn("malformed window-closed notification", "error", err)
		return
	}

	live := make(map[int]bool, len(ids))
	for _, id := range ids {
		live[id] = true
	}
	c.registry.retainWindows(live)
}

func (c *Controller) dropPendingWindow(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pendingWindows, token)
}

func (c *Controller) dropPendingView(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pendingViews, token)
}
