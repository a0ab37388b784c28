package device

import "sync/atomic"

// Situation represents the operational state of one managed device.
type Situation uint32

const (
	// SituationInitializing indicates the device is being brought up and is not yet usable.
	SituationInitializing Situation = iota
	// SituationStandby indicates the device is idle and ready to accept a command.
	SituationStandby
	// SituationBusy indicates the device is executing a command.
	SituationBusy
	// SituationFault indicates the device reported an unrecoverable condition.
	SituationFault
)

// String returns string representation of the situation.
func (s Situation) String() string {
	switch s {
	case SituationInitializing:
		return "initializing"
	case SituationStandby:
		return "standby"
	case SituationBusy:
		return "busy"
	case SituationFault:
		return "fault"
	default:
		return "unknown"
	}
}

// AtomicSituation holds a device situation with atomic transitions.
type AtomicSituation struct {
	state atomic.Uint32
}

func (st *AtomicSituation) String() string {
	return st.Get().String()
}

// Get returns the current situation.
func (st *AtomicSituation) Get() Situation {
	return Situation(st.state.Load())
}

// Set sets the situation unconditionally.
func (st *AtomicSituation) Set(situation Situation) {
	st.state.Store(uint32(situation))
}

func (st *AtomicSituation) IsInitializing() bool {
	return st.Get() == SituationInitializing
}

func (st *AtomicSituation) IsStandby() bool {
	return st.Get() == SituationStandby
}

func (st *AtomicSituation) IsBusy() bool {
	return st.Get() == SituationBusy
}

func (st *AtomicSituation) IsFault() bool {
	return st.Get() == SituationFault
}

// ToBusy transitions to SituationBusy. The transition is only allowed from
// SituationStandby; it returns false otherwise.
func (st *AtomicSituation) ToBusy() bool {
	return st.state.CompareAndSwap(uint32(SituationStandby), uint32(SituationBusy))
}

// ToStandby transitions to SituationStandby from any situation.
// It returns true when the device ends up in standby.
func (st *AtomicSituation) ToStandby() bool {
	for {
		cur := st.state.Load()
		if cur == uint32(SituationStandby) {
			return true
		}
		if st.state.CompareAndSwap(cur, uint32(SituationStandby)) {
			return true
		}
	}
}

// ToFault transitions to SituationFault from any situation.
func (st *AtomicSituation) ToFault() {
	st.Set(SituationFault)
}
