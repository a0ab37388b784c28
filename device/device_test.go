package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStationDevice_DispatchLifecycle(t *testing.T) {
	require := require.New(t)

	dev := NewStationDevice("slider")
	require.Equal("slider", dev.Name())
	require.Equal(SituationInitializing, dev.Situation())

	// not usable until brought up
	err := dev.Dispatch("init")
	require.ErrorIs(err, ErrDeviceNotReady)

	dev.Settle()
	require.Equal(SituationStandby, dev.Situation())

	require.NoError(dev.Dispatch("shelf_1"))
	require.Equal(SituationBusy, dev.Situation())
	require.Equal("shelf_1", dev.LastAction())

	// busy device rejects further commands
	err = dev.Dispatch("weight_pos")
	require.ErrorIs(err, ErrDeviceNotReady)
	require.Equal("shelf_1", dev.LastAction())

	dev.Settle()
	require.NoError(dev.Dispatch("weight_pos"))
	require.Equal("weight_pos", dev.LastAction())
}

func TestStationDevice_Fail(t *testing.T) {
	require := require.New(t)

	dev := NewStationDevice("plc")
	dev.Settle()

	dev.Fail()
	require.Equal(SituationFault, dev.Situation())
	require.ErrorIs(dev.Dispatch("buzz"), ErrDeviceNotReady)

	dev.Settle()
	require.NoError(dev.Dispatch("buzz"))
}
