package seq

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/go-procseq/internal/stack"
)

var (
	loopStartRegexp = regexp.MustCompile(`^\s*loop(\d+)_(\d+)\s*$`)
	loopEndRegexp   = regexp.MustCompile(`^\s*loop(\d+)_end\s*$`)
)

// loopFrame tracks one open repeat-block during compilation: its id, repeat
// count, and the instructions accumulated between its start and end markers.
type loopFrame struct {
	id     int
	repeat int
	block  []Instruction
}

// expand produces repeat concatenated copies of the frame's block, preserving
// body order.
func (f *loopFrame) expand() []Instruction {
	expanded := make([]Instruction, 0, len(f.block)*f.repeat)
	for i := 0; i < f.repeat; i++ {
		expanded = append(expanded, f.block...)
	}
	return expanded
}

// Compile parses raw program lines into a flat ordered list of instructions,
// expanding nested repeat-loops.
//
// Loop markers follow the grammar described in the package documentation.
// Any line that is not a loop marker is stored verbatim as an instruction.
//
// The memory and copy cost is proportional to the total expanded length;
// nested loops multiply, which is acceptable for short process-control
// programs.
//
// Compile fails with ErrInvalidRepeatCount, ErrUnmatchedLoopEnd,
// ErrLoopIDMismatch or ErrUnclosedLoop on malformed input. The returned error
// wraps the sentinel and names the offending line or loop id.
func Compile(rawLines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(rawLines))
	frames := stack.New[*loopFrame](4)

	for _, line := range rawLines {
		if m := loopStartRegexp.FindStringSubmatch(line); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("invalid loop id %q: %w", m[1], err)
			}
			repeat, err := strconv.Atoi(m[2])
			if err != nil || repeat <= 0 {
				return nil, fmt.Errorf("%w: %s", ErrInvalidRepeatCount, strings.TrimSpace(line))
			}
			frames.Push(&loopFrame{id: id, repeat: repeat})
			continue
		}

		if m := loopEndRegexp.FindStringSubmatch(line); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("invalid loop id %q: %w", m[1], err)
			}

			frame, ok := frames.Pop()
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnmatchedLoopEnd, strings.TrimSpace(line))
			}
			if frame.id != id {
				return nil, fmt.Errorf("%w: expected loop%d_end, got %s", ErrLoopIDMismatch, frame.id, strings.TrimSpace(line))
			}

			// An inner loop's expansion joins the parent frame's block before
			// the parent expands; that is what makes nesting work.
			expanded := frame.expand()
			if parent, ok := frames.Peek(); ok {
				parent.block = append(parent.block, expanded...)
			} else {
				out = append(out, expanded...)
			}
			continue
		}

		inst := Instruction(line)
		if top, ok := frames.Peek(); ok {
			top.block = append(top.block, inst)
		} else {
			out = append(out, inst)
		}
	}

	if frame, ok := frames.Peek(); ok {
		return nil, fmt.Errorf("%w: loop%d", ErrUnclosedLoop, frame.id)
	}

	return out, nil
}
