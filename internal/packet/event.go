package packet

// ReceiveEvent is one inbound packet as seen by listeners.
type ReceiveEvent struct {
	// Type is the declared wire type; listeners classify on it before
	// touching Packet.
	Type Type
	// Player is the transport's opaque handle for the sender.
	Player any
	Packet Packet
}

// NewReceiveEvent builds the event for p as sent by player.
func NewReceiveEvent(player any, p Packet) *ReceiveEvent {
	return &ReceiveEvent{Type: p.PacketType(), Player: player, Packet: p}
}

// Listener receives inbound packets.
type Listener interface {
	OnPacketReceive(ev *ReceiveEvent)
}

// ListenerFunc adapts a function to Listener. Function values are not
// comparable, so register a *ListenerFunc when it must be removed later.
type ListenerFunc func(ev *ReceiveEvent)

func (f *ListenerFunc) OnPacketReceive(ev *ReceiveEvent) { (*f)(ev) }

// EventManager is the subscription side of the transport. Listeners are
// matched by identity on removal.
type EventManager interface {
	RegisterListener(l Listener)
	UnregisterListener(l Listener)
}

// User is the transport-level handle used to send packets to one peer.
type User interface {
	Phase() Phase
	SendPacket(p Packet) error
}

// PlayerManager resolves the transport user behind a player handle.
type PlayerManager interface {
	User(player any) (User, bool)
}
