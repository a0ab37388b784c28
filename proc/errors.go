package proc

import "errors"

var (
	// ErrCoordinatorNil indicates that a nil device coordinator was provided.
	ErrCoordinatorNil = errors.New("device coordinator is nil")

	// ErrEmptySequence indicates that the controller was constructed with a
	// zero-length sequence.
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrSequenceExhausted indicates that Advance was called after the
	// sequence completed. Callers must check IsSequenceCompleted before
	// calling Advance again.
	ErrSequenceExhausted = errors.New("sequence exhausted")
)
