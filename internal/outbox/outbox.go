package outbox

import (
	"sync"

	"github.com/projectunified/unidialog-go/internal/packet"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Outbox keeps the most recent packets sent to one peer in a fixed-size
// circular buffer. It is safe for concurrent use.
type Outbox struct {
	mu       sync.Mutex
	buf      []packet.Packet
	writePos int
	capacity int
	written  int // total packets ever written
}

// New creates an outbox holding up to capacity packets.
func New(capacity int) *Outbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Outbox{
		buf:      make([]packet.Packet, capacity),
		capacity: capacity,
	}
}

// Write appends p, overwriting the oldest packet when full.
func (o *Outbox) Write(p packet.Packet) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.buf[o.writePos] = p
	o.writePos = (o.writePos + 1) % o.capacity
	o.written++
}

// Snapshot returns up to n of the most recent packets, oldest first.
func (o *Outbox) Snapshot(n int) []packet.Packet {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked(n)
}

// Drain returns every buffered packet, oldest first, and empties the outbox.
func (o *Outbox) Drain() []packet.Packet {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := o.snapshotLocked(o.capacity)
	for i := range o.buf {
		o.buf[i] = nil
	}
	o.writePos = 0
	o.written = 0
	return out
}

// Len returns the number of buffered packets.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.availableLocked()
}

// Total returns the number of packets ever written, including overwritten ones.
func (o *Outbox) Total() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.written
}

func (o *Outbox) availableLocked() int {
	if o.written > o.capacity {
		return o.capacity
	}
	return o.written
}

func (o *Outbox) snapshotLocked(n int) []packet.Packet {
	if n > o.capacity {
		n = o.capacity
	}
	if avail := o.availableLocked(); n > avail {
		n = avail
	}
	if n <= 0 {
		return nil
	}

	out := make([]packet.Packet, n)
	start := (o.writePos - n + o.capacity) % o.capacity
	if start+n <= o.capacity {
		copy(out, o.buf[start:start+n])
	} else {
		first := o.capacity - start
		copy(out[:first], o.buf[start:])
		copy(out[first:], o.buf[:n-first])
	}
	return out
}
