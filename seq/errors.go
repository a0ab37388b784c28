package seq

import "errors"

var (
	// ErrInvalidRepeatCount indicates that a loop-start line declared a repeat
	// count of zero. Repeat counts must be greater than zero.
	ErrInvalidRepeatCount = errors.New("loop repeat count must be greater than 0")

	// ErrUnmatchedLoopEnd indicates that a loop-end line was encountered while
	// no loop was open.
	ErrUnmatchedLoopEnd = errors.New("loop end without matching loop start")

	// ErrLoopIDMismatch indicates that a loop-end line named a different loop
	// id than the innermost open loop.
	ErrLoopIDMismatch = errors.New("loop id mismatch")

	// ErrUnclosedLoop indicates that the input ended while one or more loops
	// were still open.
	ErrUnclosedLoop = errors.New("unclosed loop")
)

var (
	// ErrStepOutOfRange indicates an attempt to read a step past the end of a
	// compiled sequence.
	ErrStepOutOfRange = errors.New("step index out of range")
)
