package device

import "errors"

var (
	// ErrDeviceExists indicates that a device with the same name is already registered.
	ErrDeviceExists = errors.New("device already registered")

	// ErrUnknownDevice indicates that an instruction token does not match any registered device.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrDeviceNotReady indicates that a device received a command while not in the standby situation.
	ErrDeviceNotReady = errors.New("device not in standby")
)
