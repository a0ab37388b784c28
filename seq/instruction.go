package seq

// Instruction is an opaque command token consumed by a device subsystem.
//
// The compiler does not interpret instruction contents beyond the loop-control
// syntax; everything else passes through verbatim.
type Instruction string

// Finished is the reserved terminal marker denoting the end of a sequence.
const Finished Instruction = "finished"

// String returns the raw token text.
func (i Instruction) String() string {
	return string(i)
}

// IsTerminal returns true if the instruction is the terminal marker.
func (i Instruction) IsTerminal() bool {
	return i == Finished
}
