package dialog

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/action"
	"github.com/projectunified/unidialog-go/internal/metrics"
	"github.com/projectunified/unidialog-go/internal/packet"
	"github.com/projectunified/unidialog-go/internal/payload"
)

// clickListener is the packet listener installed by Register. A fresh value
// is created on every Register so the event manager can tell them apart.
type clickListener struct {
	m *Manager
}

func (l *clickListener) OnPacketReceive(ev *packet.ReceiveEvent) {
	l.m.handle(ev)
}

// Register installs the click action listener, replacing the previous one if
// the manager is already listening.
func (m *Manager) Register() {
	m.mu.Lock()
	if m.listener != nil {
		m.events.UnregisterListener(m.listener)
	}
	m.listener = &clickListener{m: m}
	m.events.RegisterListener(m.listener)
	m.mu.Unlock()

	metrics.ListenerInstallsTotal.Inc()
	m.logger.Info("dialog listener registered", zap.String("defaultNamespace", m.defaultNamespace))
	m.onListening(true)
}

// Unregister removes the listener and drops every registered action. It does
// nothing if the manager is not listening.
func (m *Manager) Unregister() {
	m.mu.Lock()
	l := m.listener
	if l != nil {
		m.events.UnregisterListener(l)
		m.listener = nil
	}
	m.mu.Unlock()

	if l == nil {
		return
	}
	m.UnregisterAllActions()
	m.logger.Info("dialog listener unregistered")
	m.onListening(false)
}

// Listening reports whether a listener is installed.
func (m *Manager) Listening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listener != nil
}

// handle routes one inbound packet. Packets other than custom click actions
// belong to other listeners on the same bus and are skipped.
func (m *Manager) handle(ev *packet.ReceiveEvent) {
	switch ev.Type {
	case packet.TypePlayCustomClickAction, packet.TypeConfigurationCustomClickAction:
	default:
		return
	}

	click, ok := ev.Packet.(*packet.CustomClickAction)
	if !ok || click == nil {
		metrics.ClickActionsTotal.WithLabelValues(metrics.OutcomeIgnored).Inc()
		return
	}

	h, ok := m.actions.Get(click.ID)
	if !ok {
		metrics.ClickActionsTotal.WithLabelValues(metrics.OutcomeUnmatched).Inc()
		m.logger.Debug("no handler for custom action", zap.Stringer("id", click.ID))
		return
	}

	playerID := m.resolver.PlayerID(ev.Player)
	data := payload.Decode(click.Payload)
	m.invoke(h, click.ID, playerID, data)
}

func (m *Manager) invoke(h action.Handler, id action.NamespacedID, playerID uuid.UUID, data map[string]string) {
	start := time.Now()
	defer func() {
		metrics.DispatchDuration.Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			metrics.ClickActionsTotal.WithLabelValues(metrics.OutcomePanicked).Inc()
			m.logger.Error("custom action handler panicked",
				zap.Stringer("id", id),
				zap.Stringer("player", playerID),
				zap.Any("panic", r),
			)
		}
	}()

	m.logger.Debug("dispatching custom action",
		zap.Stringer("id", id),
		zap.Stringer("player", playerID),
		zap.Int("fields", len(data)),
	)
	h(playerID, data)
	metrics.ClickActionsTotal.WithLabelValues(metrics.OutcomeDispatched).Inc()
}
