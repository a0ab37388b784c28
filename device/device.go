package device

import (
	"fmt"
	"sync"
)

// Device is one managed station device.
type Device interface {
	// Name returns the device name used as the routing prefix in instruction tokens.
	Name() string
	// Situation returns the current operational situation.
	Situation() Situation
	// Dispatch hands an action to the device. The device becomes busy until
	// the underlying driver settles it back to standby.
	Dispatch(action string) error
}

// StationDevice is the default Device implementation backing one physical
// station device. Dispatch marks the device busy; the integrating driver
// calls Settle or Fail when the physical operation completes.
type StationDevice struct {
	name      string
	situation AtomicSituation

	mu         sync.Mutex
	lastAction string
}

var _ Device = (*StationDevice)(nil)

// NewStationDevice creates a StationDevice in the initializing situation.
func NewStationDevice(name string) *StationDevice {
	return &StationDevice{name: name}
}

// Name returns the device name.
func (d *StationDevice) Name() string {
	return d.name
}

// Situation returns the current operational situation.
func (d *StationDevice) Situation() Situation {
	return d.situation.Get()
}

// Dispatch accepts an action when the device is in standby and marks it busy.
// It returns ErrDeviceNotReady when the device is initializing, busy or faulted.
func (d *StationDevice) Dispatch(action string) error {
	if !d.situation.ToBusy() {
		return fmt.Errorf("%w: %s is %s", ErrDeviceNotReady, d.name, d.situation.Get())
	}

	d.mu.Lock()
	d.lastAction = action
	d.mu.Unlock()

	return nil
}

// LastAction returns the most recently dispatched action.
func (d *StationDevice) LastAction() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastAction
}

// Settle moves the device back to standby, typically after the physical
// operation completed or during bring-up.
func (d *StationDevice) Settle() {
	d.situation.ToStandby()
}

// Fail marks the device faulted.
func (d *StationDevice) Fail() {
	d.situation.ToFault()
}
