package seq

import (
	"fmt"

	"github.com/arloliu/go-procseq/internal/util"
)

// Sequence is an ordered, immutable list of instructions.
//
// A Sequence is never empty and always ends with the Finished terminal
// marker; NewSequence enforces both.
type Sequence struct {
	steps []Instruction
}

// NewSequence creates a Sequence from the given steps.
//
// The steps are copied, and the Finished terminal marker is appended when the
// input is empty or does not already end with it.
func NewSequence(steps ...Instruction) Sequence {
	cloned := util.CloneSlice(steps, 0)
	if len(cloned) == 0 || cloned[len(cloned)-1] != Finished {
		cloned = append(cloned, Finished)
	}
	return Sequence{steps: cloned}
}

// Len returns the number of steps in the sequence.
func (s Sequence) Len() int {
	return len(s.steps)
}

// Step returns the instruction at the given zero-based index.
// It returns ErrStepOutOfRange if the index is negative or past the end.
func (s Sequence) Step(index int) (Instruction, error) {
	if index < 0 || index >= len(s.steps) {
		return "", fmt.Errorf("%w: index %d, length %d", ErrStepOutOfRange, index, len(s.steps))
	}
	return s.steps[index], nil
}

// Steps returns a copy of all steps. Mutating the returned slice does not
// affect the sequence.
func (s Sequence) Steps() []Instruction {
	return util.CloneSlice(s.steps, 0)
}

// Last returns the final instruction, which is always the Finished marker.
func (s Sequence) Last() Instruction {
	return s.steps[len(s.steps)-1]
}
