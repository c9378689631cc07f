package cart

import "sync"

// Listener is told about every change of any session's cart.
type Listener func(sessionID string, snap Snapshot)

// Registry owns one Store per session, created on first use.
type Registry struct {
	mu       sync.Mutex
	stores   map[string]*Store
	listener Listener
}

// NewRegistry wires listener (may be nil) into every store it creates.
func NewRegistry(listener Listener) *Registry {
	return &Registry{
		stores:   make(map[string]*Store),
		listener: listener,
	}
}

// Get returns the session's store, creating an empty one if needed.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[sessionID]; ok {
		return s
	}
	s := NewStore()
	if r.listener != nil {
		l := r.listener
		s.Subscribe(func(snap Snapshot) { l(sessionID, snap) })
	}
	r.stores[sessionID] = s
	return s
}

// Lookup returns the session's store without creating one.
func (r *Registry) Lookup(sessionID string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[sessionID]
	return s, ok
}

// Drop empties and forgets the session's cart. The next Get starts empty.
// Holders of the old store see it cleared.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	s, ok := r.stores[sessionID]
	delete(r.stores, sessionID)
	r.mu.Unlock()

	if ok {
		s.Clear()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
