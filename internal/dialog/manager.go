package dialog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/action"
	"github.com/projectunified/unidialog-go/internal/metrics"
	"github.com/projectunified/unidialog-go/internal/packet"
)

// DefaultNamespace is used when Options.DefaultNamespace is empty.
const DefaultNamespace = "unidialog"

// PeerResolver maps between peer UUIDs and the transport's player handles.
// It is supplied by the adopting application.
type PeerResolver interface {
	// Player returns the live handle for id, or false if the peer is gone.
	Player(id uuid.UUID) (any, bool)
	// PlayerID returns the UUID of a player handle.
	PlayerID(player any) uuid.UUID
}

// Options configures a Manager.
type Options struct {
	DefaultNamespace string
	Events           packet.EventManager
	Players          packet.PlayerManager
	Resolver         PeerResolver
	Logger           *zap.Logger
	// OnListening, if set, is called after every listener state change.
	OnListening func(listening bool)
}

// Manager dispatches custom click actions and clears dialogs.
type Manager struct {
	defaultNamespace string
	events           packet.EventManager
	players          packet.PlayerManager
	resolver         PeerResolver
	logger           *zap.Logger
	onListening      func(bool)
	actions          *action.Registry

	mu       sync.Mutex
	listener *clickListener
}

// New validates opts and creates a Manager that is not yet listening.
func New(opts Options) (*Manager, error) {
	if opts.Events == nil {
		return nil, errors.New("dialog: event manager is required")
	}
	if opts.Players == nil {
		return nil, errors.New("dialog: player manager is required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("dialog: peer resolver is required")
	}
	m := &Manager{
		defaultNamespace: opts.DefaultNamespace,
		events:           opts.Events,
		players:          opts.Players,
		resolver:         opts.Resolver,
		logger:           opts.Logger,
		onListening:      opts.OnListening,
		actions:          action.NewRegistry(),
	}
	if m.defaultNamespace == "" {
		m.defaultNamespace = DefaultNamespace
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.onListening == nil {
		m.onListening = func(bool) {}
	}
	return m, nil
}

// DefaultNamespace returns the namespace used by the short action forms.
func (m *Manager) DefaultNamespace() string { return m.defaultNamespace }

// RegisterAction registers h under the default namespace.
func (m *Manager) RegisterAction(path string, h action.Handler) {
	m.RegisterNamespacedAction(m.defaultNamespace, path, h)
}

// RegisterNamespacedAction registers h under namespace:path, replacing any
// existing handler.
func (m *Manager) RegisterNamespacedAction(namespace, path string, h action.Handler) {
	if d := m.actions.Register(namespace, path, h); d != 0 {
		metrics.RegisteredActions.Add(float64(d))
	}
	m.logger.Debug("custom action registered", zap.Stringer("id", action.NewID(namespace, path)))
}

// UnregisterAction removes the handler for path in the default namespace.
func (m *Manager) UnregisterAction(path string) {
	m.UnregisterNamespacedAction(m.defaultNamespace, path)
}

// UnregisterNamespacedAction removes the handler for namespace:path.
func (m *Manager) UnregisterNamespacedAction(namespace, path string) {
	if m.actions.Unregister(namespace, path) {
		metrics.RegisteredActions.Dec()
	}
}

// UnregisterAllActions removes every registered handler.
func (m *Manager) UnregisterAllActions() {
	if n := m.actions.Clear(); n > 0 {
		metrics.RegisteredActions.Sub(float64(n))
	}
}

// Action returns the handler registered under namespace:path.
func (m *Manager) Action(namespace, path string) (action.Handler, bool) {
	return m.actions.Lookup(namespace, path)
}

// Actions returns the registered ids in sorted order.
func (m *Manager) Actions() []action.NamespacedID {
	return m.actions.IDs()
}
