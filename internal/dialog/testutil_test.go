package dialog

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/projectunified/unidialog-go/internal/packet"
)

// countingEvents wraps a packet.Bus and counts install/teardown calls.
type countingEvents struct {
	*packet.Bus
	installs  int
	teardowns int
}

func (c *countingEvents) RegisterListener(l packet.Listener) {
	c.installs++
	c.Bus.RegisterListener(l)
}

func (c *countingEvents) UnregisterListener(l packet.Listener) {
	c.teardowns++
	c.Bus.UnregisterListener(l)
}

type fakePlayer struct {
	id   uuid.UUID
	user *fakeUser
}

type fakeUser struct {
	mu    sync.Mutex
	phase packet.Phase
	sent  []packet.Packet
	err   error
}

func (u *fakeUser) Phase() packet.Phase { return u.phase }

func (u *fakeUser) SendPacket(p packet.Packet) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return u.err
	}
	u.sent = append(u.sent, p)
	return nil
}

func (u *fakeUser) Sent() []packet.Packet {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]packet.Packet(nil), u.sent...)
}

// fakePeers implements PeerResolver and packet.PlayerManager.
type fakePeers struct {
	players  map[uuid.UUID]*fakePlayer
	noUser   bool
	lookups  int
	userHits int
}

func newFakePeers() *fakePeers {
	return &fakePeers{players: make(map[uuid.UUID]*fakePlayer)}
}

func (f *fakePeers) add(phase packet.Phase) *fakePlayer {
	p := &fakePlayer{id: uuid.New(), user: &fakeUser{phase: phase}}
	f.players[p.id] = p
	return p
}

func (f *fakePeers) Player(id uuid.UUID) (any, bool) {
	f.lookups++
	p, ok := f.players[id]
	if !ok {
		return nil, false
	}
	return p, true
}

func (f *fakePeers) PlayerID(player any) uuid.UUID {
	if p, ok := player.(*fakePlayer); ok {
		return p.id
	}
	return uuid.Nil
}

func (f *fakePeers) User(player any) (packet.User, bool) {
	f.userHits++
	p, ok := player.(*fakePlayer)
	if !ok || f.noUser {
		return nil, false
	}
	return p.user, true
}

var errSend = errors.New("send failed")

func newTestManager(t *testing.T) (*Manager, *countingEvents, *fakePeers) {
	t.Helper()
	events := &countingEvents{Bus: packet.NewBus()}
	peers := newFakePeers()
	m, err := New(Options{
		DefaultNamespace: "test",
		Events:           events,
		Players:          peers,
		Resolver:         peers,
		Logger:           zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m, events, peers
}
