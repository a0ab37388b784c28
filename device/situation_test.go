package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSituation_String(t *testing.T) {
	require := require.New(t)

	require.Equal("initializing", SituationInitializing.String())
	require.Equal("standby", SituationStandby.String())
	require.Equal("busy", SituationBusy.String())
	require.Equal("fault", SituationFault.String())
	require.Equal("unknown", Situation(99).String())
}

func TestAtomicSituation_Transitions(t *testing.T) {
	require := require.New(t)

	var st AtomicSituation
	require.True(st.IsInitializing())

	// busy is only reachable from standby
	require.False(st.ToBusy())
	require.True(st.IsInitializing())

	require.True(st.ToStandby())
	require.True(st.IsStandby())

	require.True(st.ToBusy())
	require.True(st.IsBusy())

	// a busy device cannot be made busy again
	require.False(st.ToBusy())

	require.True(st.ToStandby())
	require.True(st.IsStandby())

	// standby to standby is a no-op success
	require.True(st.ToStandby())

	st.ToFault()
	require.True(st.IsFault())
	require.False(st.ToBusy())

	// fault recovers through standby
	require.True(st.ToStandby())
	require.True(st.IsStandby())
}
