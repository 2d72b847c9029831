package gateway

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/config"
	"github.com/projectunified/unidialog-go/internal/metrics"
	"github.com/projectunified/unidialog-go/internal/packet"
	"github.com/projectunified/unidialog-go/internal/session"
)

var (
	// ErrPeerNotFound is returned for ids with no live session.
	ErrPeerNotFound = errors.New("peer not found")
	// ErrPeerLimit is returned when the peer cap is reached.
	ErrPeerLimit = errors.New("max peers reached")
)

// Gateway owns the peer sessions and the packet bus they deliver into. It is
// the PeerResolver and PlayerManager handed to the dialog manager; the player
// handle it exposes is the *session.Session itself.
type Gateway struct {
	cfg    *config.Config
	logger *zap.Logger
	bus    *packet.Bus

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session
}

// New creates a Gateway with no sessions.
func New(cfg *config.Config, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		cfg:      cfg,
		logger:   logger,
		bus:      packet.NewBus(),
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

// Bus returns the event manager inbound packets are fired on.
func (gw *Gateway) Bus() *packet.Bus { return gw.bus }

// SessionCount returns the current number of sessions.
func (gw *Gateway) SessionCount() int {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	return len(gw.sessions)
}

// CreateSession registers a new peer in the given phase.
func (gw *Gateway) CreateSession(name string, phase packet.Phase) (*session.Session, error) {
	id := uuid.New()
	sess := session.New(id, name, phase, gw.cfg.OutboxSize, gw.logger)

	gw.mu.Lock()
	if gw.cfg.MaxPeers > 0 && len(gw.sessions) >= gw.cfg.MaxPeers {
		n := len(gw.sessions)
		gw.mu.Unlock()
		metrics.PeersRejectedTotal.Inc()
		gw.logger.Warn("peer cap reached", zap.Int("current", n), zap.Int("max", gw.cfg.MaxPeers))
		return nil, ErrPeerLimit
	}
	gw.sessions[id] = sess
	gw.mu.Unlock()

	metrics.ActivePeers.Inc()
	gw.logger.Info("session created",
		zap.Stringer("peer", id),
		zap.String("name", name),
		zap.Stringer("phase", phase),
	)
	return sess, nil
}

// Session returns the live session for id.
func (gw *Gateway) Session(id uuid.UUID) (*session.Session, bool) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	sess, ok := gw.sessions[id]
	return sess, ok
}

// DeleteSession stops the session and forgets it. It reports whether the
// session existed.
func (gw *Gateway) DeleteSession(id uuid.UUID) bool {
	gw.mu.Lock()
	sess, ok := gw.sessions[id]
	if ok {
		delete(gw.sessions, id)
	}
	gw.mu.Unlock()

	if ok && sess != nil {
		sess.Stop()
		metrics.ActivePeers.Dec()
		gw.logger.Info("session deleted", zap.Stringer("peer", id))
	}
	return ok
}

// Receive delivers p as if the peer id had just sent it.
func (gw *Gateway) Receive(id uuid.UUID, p packet.Packet) error {
	sess, ok := gw.Session(id)
	if !ok {
		return fmt.Errorf("receive %s: %w", id, ErrPeerNotFound)
	}
	gw.bus.Fire(packet.NewReceiveEvent(sess, p))
	return nil
}

// Player implements dialog.PeerResolver.
func (gw *Gateway) Player(id uuid.UUID) (any, bool) {
	sess, ok := gw.Session(id)
	if !ok {
		return nil, false
	}
	return sess, true
}

// PlayerID implements dialog.PeerResolver.
func (gw *Gateway) PlayerID(player any) uuid.UUID {
	if sess, ok := player.(*session.Session); ok && sess != nil {
		return sess.ID
	}
	return uuid.Nil
}

// User implements packet.PlayerManager.
func (gw *Gateway) User(player any) (packet.User, bool) {
	sess, ok := player.(*session.Session)
	if !ok || sess == nil || sess.Stopped() {
		return nil, false
	}
	return sess, true
}

// Shutdown stops all sessions.
func (gw *Gateway) Shutdown() {
	gw.mu.Lock()
	sessions := gw.sessions
	gw.sessions = make(map[uuid.UUID]*session.Session)
	gw.mu.Unlock()

	for _, sess := range sessions {
		sess.Stop()
	}
	metrics.ActivePeers.Set(0)

	gw.logger.Info("gateway shutdown complete", zap.Int("sessions", len(sessions)))
}
