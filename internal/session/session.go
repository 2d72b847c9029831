package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/outbox"
	"github.com/projectunified/unidialog-go/internal/packet"
)

// Session holds per-peer connection state. It is the packet.User for that
// peer: packets sent to it are kept in its outbox until drained.
type Session struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Outbox    *outbox.Outbox

	phase  atomic.Int32
	logger *zap.Logger

	stopOnce sync.Once
	stopped  atomic.Bool
}

// New creates a session in the given phase with an outbox of outboxSize packets.
func New(id uuid.UUID, name string, phase packet.Phase, outboxSize int, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		Outbox:    outbox.New(outboxSize),
		logger:    logger.With(zap.Stringer("peer", id)),
	}
	s.phase.Store(int32(phase))
	return s
}

// Phase returns the current connection phase.
func (s *Session) Phase() packet.Phase {
	return packet.Phase(s.phase.Load())
}

// SetPhase moves the session to p.
func (s *Session) SetPhase(p packet.Phase) {
	old := packet.Phase(s.phase.Swap(int32(p)))
	if old != p {
		s.logger.Info("phase changed", zap.Stringer("from", old), zap.Stringer("to", p))
	}
}

// SendPacket queues p for the peer. It fails with packet.ErrClosed once the
// session is stopped.
func (s *Session) SendPacket(p packet.Packet) error {
	if s.stopped.Load() {
		return packet.ErrClosed
	}
	s.Outbox.Write(p)
	s.logger.Debug("packet sent", zap.Stringer("type", p.PacketType()))
	return nil
}

// Stopped reports whether Stop has been called.
func (s *Session) Stopped() bool {
	return s.stopped.Load()
}

// Stop closes the session. It is idempotent.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		s.logger.Info("session stopped")
	})
}
