package packet

import "sync"

// Bus is an in-process EventManager. Fire delivers synchronously, in
// registration order, on the caller's goroutine.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// RegisterListener appends l. Registering the same listener twice delivers
// to it twice. l must be a comparable value (normally a pointer).
func (b *Bus) RegisterListener(l Listener) {
	b.mu.Lock()
	b.listeners = append(b.listeners, l)
	b.mu.Unlock()
}

// UnregisterListener removes the first registration of l.
func (b *Bus) UnregisterListener(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, cur := range b.listeners {
		if cur == l {
			next := make([]Listener, 0, len(b.listeners)-1)
			next = append(next, b.listeners[:i]...)
			b.listeners = append(next, b.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of active registrations.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Fire delivers ev to every listener registered when Fire was called.
// Listeners may register or unregister listeners while handling ev.
func (b *Bus) Fire(ev *ReceiveEvent) {
	b.mu.RLock()
	snapshot := b.listeners
	b.mu.RUnlock()

	for _, l := range snapshot {
		l.OnPacketReceive(ev)
	}
}
