package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSequence_AppendsTerminalMarker(t *testing.T) {
	require := require.New(t)

	s := NewSequence("a", "b")
	require.Equal(3, s.Len())
	require.Equal(Finished, s.Last())

	// already terminated input is not double-terminated
	s = NewSequence("a", "b", Finished)
	require.Equal(3, s.Len())
	require.Equal(Finished, s.Last())
}

func TestNewSequence_EmptyBecomesMinimalSafeSequence(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	require.Equal(1, s.Len())
	require.Equal(Finished, s.Last())

	step, err := s.Step(0)
	require.NoError(err)
	require.Equal(Finished, step)
}

func TestSequence_Step(t *testing.T) {
	require := require.New(t)

	s := NewSequence("a", "b")

	step, err := s.Step(0)
	require.NoError(err)
	require.Equal(Instruction("a"), step)

	step, err = s.Step(2)
	require.NoError(err)
	require.Equal(Finished, step)

	_, err = s.Step(3)
	require.ErrorIs(err, ErrStepOutOfRange)

	_, err = s.Step(-1)
	require.ErrorIs(err, ErrStepOutOfRange)
}

func TestSequence_Immutability(t *testing.T) {
	require := require.New(t)

	input := []Instruction{"a", "b", Finished}
	s := NewSequence(input...)

	// mutating the constructor input does not affect the sequence
	input[0] = "mutated"
	step, err := s.Step(0)
	require.NoError(err)
	require.Equal(Instruction("a"), step)

	// mutating the Steps() copy does not affect the sequence
	steps := s.Steps()
	steps[1] = "mutated"
	step, err = s.Step(1)
	require.NoError(err)
	require.Equal(Instruction("b"), step)
}

func TestInstruction_IsTerminal(t *testing.T) {
	require := require.New(t)

	require.True(Finished.IsTerminal())
	require.False(Instruction("slider_init").IsTerminal())
	require.Equal("finished", Finished.String())
}
