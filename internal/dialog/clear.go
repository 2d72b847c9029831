package dialog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/metrics"
	"github.com/projectunified/unidialog-go/internal/packet"
)

// ClearDialogPhase sends the configuration clear packet if configuration is
// true and the play clear packet otherwise.
func (m *Manager) ClearDialogPhase(user packet.User, configuration bool) error {
	p := packet.NewClearDialog(configuration)
	if err := user.SendPacket(p); err != nil {
		metrics.DialogClearsTotal.WithLabelValues(p.Phase.String(), "error").Inc()
		return fmt.Errorf("send %s: %w", p.PacketType(), err)
	}
	metrics.DialogClearsTotal.WithLabelValues(p.Phase.String(), "sent").Inc()
	return nil
}

// ClearDialogUser clears the dialog using the variant that matches the
// user's current connection phase.
func (m *Manager) ClearDialogUser(user packet.User) error {
	return m.ClearDialogPhase(user, user.Phase() == packet.PhaseConfiguration)
}

// ClearDialog clears the dialog of the peer with the given id. It returns
// false without sending anything when the peer cannot be resolved. Send
// failures are logged; the peer was still found, so the result is true.
func (m *Manager) ClearDialog(id uuid.UUID) bool {
	player, ok := m.resolver.Player(id)
	if !ok {
		metrics.DialogClearsTotal.WithLabelValues("none", "no_peer").Inc()
		return false
	}
	user, ok := m.players.User(player)
	if !ok {
		metrics.DialogClearsTotal.WithLabelValues("none", "no_user").Inc()
		return false
	}
	if err := m.ClearDialogUser(user); err != nil {
		m.logger.Warn("clear dialog failed", zap.Stringer("player", id), zap.Error(err))
	}
	return true
}
