// Package device provides the managed-device registry for a process station:
// the weighing unit, linear slider, cobotta robotic arm and PLC.
//
// The Manager supplies the two capabilities the step controller needs: an
// aggregate readiness query (AllStandby) and an instruction dispatcher
// (UpdateStatus). An instruction line carries one or more whitespace-separated
// tokens of the form <device>_<action>; UpdateStatus routes each token to the
// registered device whose name prefixes it.
package device
