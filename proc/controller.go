package proc

import (
	"fmt"

	"github.com/arloliu/go-procseq/logger"
	"github.com/arloliu/go-procseq/seq"
)

// InitCommand is the sentinel initial command meaning "no externally supplied
// first command"; the controller starts drawing from the compiled sequence on
// the first Advance call.
const InitCommand = "init"

// Status strings reported for device updates. The mapping is cosmetic, for
// logging and telemetry only; a failed update does not stop the sequence.
const (
	statusUpdateSuccess = "update device status success"
	statusUpdateError   = "update device status error"
)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used by the controller.
// Defaults to the package default logger.
func WithLogger(l logger.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller walks a compiled sequence one instruction at a time.
//
// The controller owns its cursor and sequence exclusively and performs no
// internal locking; all calls must come from a single driving goroutine.
type Controller struct {
	coord    Coordinator
	sequence seq.Sequence
	logger   logger.Logger

	current seq.Instruction
	cursor  int

	// pendingExternal marks the one-time passthrough of an externally
	// supplied first command before the compiled sequence begins.
	pendingExternal bool
}

// NewController creates a Controller positioned before the first step of the
// sequence.
//
// command is the initial current step. When it is not InitCommand, the first
// Advance call forwards it to the devices exactly once without consuming a
// sequence position.
func NewController(command string, coord Coordinator, sequence seq.Sequence, opts ...ControllerOption) (*Controller, error) {
	if coord == nil {
		return nil, ErrCoordinatorNil
	}
	if sequence.Len() == 0 {
		return nil, ErrEmptySequence
	}

	c := &Controller{
		coord:           coord,
		sequence:        sequence,
		logger:          logger.GetLogger(),
		current:         seq.Instruction(command),
		pendingExternal: command != InitCommand,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// CurrentStep returns the instruction currently considered active.
func (c *Controller) CurrentStep() seq.Instruction {
	return c.current
}

// Cursor returns the zero-based index of the next sequence step.
func (c *Controller) Cursor() int {
	return c.cursor
}

// IsReadyToAdvance reports whether all managed devices are in standby,
// permitting the next Advance call.
func (c *Controller) IsReadyToAdvance() bool {
	return c.coord.AllStandby()
}

// IsSequenceCompleted reports whether every step of the sequence has been
// dispatched.
func (c *Controller) IsSequenceCompleted() bool {
	return c.cursor >= c.sequence.Len()
}

// Advance performs one step transition.
//
// The first call forwards an externally supplied initial command (anything
// other than InitCommand) to the devices without consuming a sequence
// position. Every other call draws the instruction at the cursor, forwards
// it, and increments the cursor.
//
// Advance returns ErrSequenceExhausted when called after the sequence
// completed; the controller state is left untouched. A device update failure
// does not stop progression; it is surfaced through the logged status string.
func (c *Controller) Advance() error {
	if c.IsSequenceCompleted() {
		return fmt.Errorf("%w: cursor %d, sequence length %d", ErrSequenceExhausted, c.cursor, c.sequence.Len())
	}

	if c.pendingExternal {
		c.pendingExternal = false
		c.logStatus(c.updateDeviceStatuses(c.current), c.current)
		return nil
	}

	step, err := c.sequence.Step(c.cursor)
	if err != nil {
		return fmt.Errorf("%w: cursor %d, sequence length %d", ErrSequenceExhausted, c.cursor, c.sequence.Len())
	}

	c.current = step
	c.logStatus(c.updateDeviceStatuses(c.current), c.current)
	c.cursor++

	return nil
}

// updateDeviceStatuses forwards one instruction to the device coordinator and
// maps the boolean result to the observable status string.
func (c *Controller) updateDeviceStatuses(instruction seq.Instruction) string {
	if c.coord.UpdateStatus(string(instruction)) {
		return statusUpdateSuccess
	}

	return statusUpdateError
}

func (c *Controller) logStatus(status string, instruction seq.Instruction) {
	if status == statusUpdateSuccess {
		c.logger.Info(status, "step", instruction, "cursor", c.cursor)
	} else {
		c.logger.Warn(status, "step", instruction, "cursor", c.cursor)
	}
}
