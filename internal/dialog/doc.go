// Package dialog routes custom click actions from dialog buttons to
// registered handlers and clears open dialogs on peers.
//
// A Manager owns one action registry and at most one packet listener:
//
//   - manager.go: Manager, Options, construction and the action registry API.
//   - listener.go: Register/Unregister lifecycle and per-packet dispatch.
//   - clear.go: clear dialog sends with phase selection.
//
// Dispatch runs synchronously on whatever goroutine the transport delivers
// packets on. Register and Unregister are expected to be called from a single
// controlling goroutine.
package dialog
