// Package action holds the custom click action registry.
package action

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Handler processes a custom click action for the player that sent it.
type Handler func(playerID uuid.UUID, payload map[string]string)

// Registry maps namespaced ids to handlers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[NamespacedID]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[NamespacedID]Handler)}
}

// Register stores h under namespace:path, replacing any previous handler.
// A nil handler removes the entry. It returns the change in entry count:
// 1 for a new id, 0 for a replacement or a no-op, -1 for a removal.
func (r *Registry) Register(namespace, path string, h Handler) int {
	id := NewID(namespace, path)
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.handlers[id]
	if h == nil {
		if !existed {
			return 0
		}
		delete(r.handlers, id)
		return -1
	}
	r.handlers[id] = h
	if existed {
		return 0
	}
	return 1
}

// Unregister removes the handler for namespace:path and reports whether
// there was one.
func (r *Registry) Unregister(namespace, path string) bool {
	id := NewID(namespace, path)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[id]; !ok {
		return false
	}
	delete(r.handlers, id)
	return true
}

// Clear removes every handler and returns how many there were.
func (r *Registry) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.handlers)
	r.handlers = make(map[NamespacedID]Handler)
	return n
}

// Lookup returns the handler for namespace:path.
func (r *Registry) Lookup(namespace, path string) (Handler, bool) {
	return r.Get(NewID(namespace, path))
}

// Get returns the handler for id.
func (r *Registry) Get(id NamespacedID) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[id]
	return h, ok
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// IDs returns the registered ids ordered by namespace, then path.
func (r *Registry) IDs() []NamespacedID {
	r.mu.RLock()
	ids := make([]NamespacedID, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Path < ids[j].Path
	})
	return ids
}
