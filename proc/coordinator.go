package proc

// Coordinator abstracts the managed-device set the controller drives.
//
// It covers exactly the two capabilities the step state machine needs: the
// aggregate readiness query and the instruction dispatcher. device.Manager
// satisfies it; tests substitute fakes.
type Coordinator interface {
	// AllStandby reports whether every managed device is in a
	// standby-equivalent state, permitting progression to the next step.
	AllStandby() bool

	// UpdateStatus dispatches one instruction to the managed devices and
	// reports aggregate success. The call must not return before the
	// instruction is confirmed dispatched.
	UpdateStatus(instruction string) bool
}
