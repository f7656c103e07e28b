// File: registry.go
// Role: Registry, the ordered set of open editors and the
// close-with-confirmation lifecycle. The registry never decides on its own
// whether to drop a dirty editor: it defers to a Confirmer, which is where
// a host's "save before closing?" modal dialog plugs in.
package editor

import (
	"fmt"
	"sync"
)

// Confirmer asks whether it is safe to close e, prompting the user to save
// first if e.FileInfo().Dirty(). Returning false leaves e open.
type Confirmer interface {
	ConfirmClose(e *Editor) bool
}

// AlwaysConfirm is a Confirmer that never blocks a close, useful for
// headless tests and any host with no dirty-save prompt.
type AlwaysConfirm struct{}

func (AlwaysConfirm) ConfirmClose(*Editor) bool { return true }

// Registry holds an ordered set of open editors, exposing each
// editor's FileInfo/StatusBar contracts to the outer UI and gating removal
// on a Confirmer.
type Registry struct {
	mu      sync.Mutex
	editors []*Editor
	index   map[*Editor]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[*Editor]int)}
}

// Open adds e to the registry's open set. Adding the same *Editor twice is
// a no-op.
func (r *Registry) Open(e *Editor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[e]; exists {
		return
	}
	r.index[e] = len(r.editors)
	r.editors = append(r.editors, e)
}

// Editors returns a snapshot of the currently open editors, in the order
// they were opened.
func (r *Registry) Editors() []*Editor {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Editor, len(r.editors))
	copy(out, r.editors)
	return out
}

// Close asks confirmer whether it is safe to drop e (consulted only when e
// is dirty; a clean editor never needs confirmation), and if so removes it
// from the open set. Returns whether e was actually closed.
func (r *Registry) Close(e *Editor, confirmer Confirmer) (bool, error) {
	r.mu.Lock()
	idx, ok := r.index[e]
	r.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("editor: close: %w", ErrUnknownEditor)
	}

	if e.FileInfo().Dirty() {
		if confirmer == nil {
			confirmer = AlwaysConfirm{}
		}
		if !confirmer.ConfirmClose(e) {
			return false, nil
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-resolve idx: another Close may have run between the unlock above
	// and here (e.g. a Confirmer that re-enters the registry).
	idx, ok = r.index[e]
	if !ok {
		return false, nil
	}
	r.editors = append(r.editors[:idx], r.editors[idx+1:]...)
	delete(r.index, e)
	for i := idx; i < len(r.editors); i++ {
		r.index[r.editors[i]] = i
	}
	return true, nil
}
