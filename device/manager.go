package device

import (
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-procseq/internal/util"
	"github.com/arloliu/go-procseq/logger"
	"github.com/arloliu/go-procseq/seq"
)

// DefaultStationNames lists the devices of the default process station.
var DefaultStationNames = []string{"weighing", "slider", "cobotta", "plc"}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used by the manager.
// Defaults to the package default logger.
func WithLogger(l logger.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager is the registry of managed devices.
//
// It provides the two capabilities the step controller consumes: the
// aggregate readiness query AllStandby and the instruction dispatcher
// UpdateStatus.
type Manager struct {
	logger  logger.Logger
	devices *xsync.MapOf[string, Device]

	mu    sync.Mutex
	names []string // registration order
}

// NewManager creates an empty device Manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		logger:  logger.GetLogger(),
		devices: xsync.NewMapOf[string, Device](),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewStationManager creates a Manager pre-registered with the default station
// devices (weighing, slider, cobotta, plc), brought up to standby.
func NewStationManager(opts ...ManagerOption) *Manager {
	m := NewManager(opts...)

	for _, name := range DefaultStationNames {
		dev := NewStationDevice(name)
		_ = m.Register(dev)
		dev.Settle()
	}

	return m
}

// Register adds a device to the registry.
// It returns ErrDeviceExists if a device with the same name is already registered.
func (m *Manager) Register(dev Device) error {
	if _, loaded := m.devices.LoadOrStore(dev.Name(), dev); loaded {
		return ErrDeviceExists
	}

	m.mu.Lock()
	m.names = append(m.names, dev.Name())
	m.mu.Unlock()

	m.logger.Debug("device registered", "device", dev.Name())

	return nil
}

// Get returns the registered device with the given name.
func (m *Manager) Get(name string) (Device, bool) {
	return m.devices.Load(name)
}

// Names returns the registered device names in registration order.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return util.CloneSlice(m.names, 0)
}

// AllStandby reports whether every managed device is in the standby situation.
// It is the readiness gate for advancing the step sequence.
func (m *Manager) AllStandby() bool {
	return m.AllInSituation(SituationStandby)
}

// AllInSituation reports whether every managed device is in the given
// situation. An empty registry is vacuously true.
func (m *Manager) AllInSituation(situation Situation) bool {
	all := true
	m.devices.Range(func(_ string, dev Device) bool {
		if dev.Situation() != situation {
			all = false
			return false
		}
		return true
	})

	return all
}

// UpdateStatus dispatches one instruction to the managed devices.
//
// The instruction is split on whitespace into <device>_<action> tokens; each
// token is routed to the registered device whose name prefixes it. The
// terminal marker is an accepted no-op. UpdateStatus returns false when any
// token fails to route or dispatch; remaining tokens are still dispatched so
// one bad token does not starve the other devices.
func (m *Manager) UpdateStatus(instruction string) bool {
	ok := true

	for _, token := range strings.Fields(instruction) {
		if seq.Instruction(token).IsTerminal() {
			continue
		}

		dev, action, found := m.route(token)
		if !found {
			m.logger.Warn("no device for instruction token", "token", token, "error", ErrUnknownDevice)
			ok = false
			continue
		}

		if err := dev.Dispatch(action); err != nil {
			m.logger.Warn("device dispatch failed", "device", dev.Name(), "action", action, "error", err)
			ok = false
			continue
		}

		m.logger.Debug("device command dispatched", "device", dev.Name(), "action", action)
	}

	return ok
}

// route resolves an instruction token to a registered device and the action
// remainder. The longest matching device-name prefix wins, so a device named
// "slider_aux" takes precedence over "slider" for "slider_aux_home".
func (m *Manager) route(token string) (Device, string, bool) {
	var (
		matched Device
		action  string
	)

	m.devices.Range(func(name string, dev Device) bool {
		prefix := name + "_"
		if !strings.HasPrefix(token, prefix) {
			return true
		}
		if matched == nil || len(name) > len(matched.Name()) {
			matched = dev
			action = token[len(prefix):]
		}
		return true
	})

	if matched == nil || action == "" {
		return nil, "", false
	}

	return matched, action, true
}
