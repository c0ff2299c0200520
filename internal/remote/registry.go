package remote

import "sync"

// Window is the controller-side record of one live host window, keyed by the
// host-assigned id. Ids are unique among live windows; the host may reuse an
// id after closure. Never mutated after construction.
type Window struct {
	ID int
}

// View is the controller-side record of one live embedded view. Views have
// their own id space, separate from windows.
type View struct {
	ID int
}

// Registry holds the live window and view lists, insertion-ordered by
// creation. Entries are appended when the host announces a creation and
// windows are dropped when the host's live-set no longer contains them;
// nothing else mutates the lists.
type Registry struct {
	mu      sync.Mutex
	windows []*Window
	views   []*View
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Windows returns a snapshot of the live window list in creation order.
func (r *Registry) Windows() []*Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Window, len(r.windows))
	copy(out, r.windows)
	return out
}

// Views returns a snapshot of the live view list in creation order.
func (r *Registry) Views() []*View {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*View, len(r.views))
	copy(out, r.views)
	return out
}

func (r *Registry) addWindow(w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = append(r.windows, w)
}

func (r *Registry) addView(v *View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

// retainWindows reconciles the window list against the host's authoritative
// set of still-live ids. Any tracked id absent from the set is considered
// closed, even if no individual close event was observed. Survivors keep
// their relative order; reconciliation never adds entries.
func (r *Registry) retainWindows(live map[int]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.windows[:0]
	for _, w := range r.windows {
		if live[w.ID] {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(r.windows); i++ {
		r.windows[i] = nil
	}
	r.windows = kept
}
