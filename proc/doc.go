// Package proc provides the step controller that walks a compiled process
// sequence one instruction at a time, gated on device readiness.
//
// The controller is driven by an external polling loop:
//
//	ctrl, err := proc.NewController("init", manager, sequence)
//	if err != nil {
//	    // handle construction error
//	}
//	for !ctrl.IsSequenceCompleted() {
//	    if ctrl.IsReadyToAdvance() {
//	        if err := ctrl.Advance(); err != nil {
//	            break
//	        }
//	    }
//	    // wait for the next tick
//	}
//
// The controller assumes a single driving goroutine; callers sharing one
// controller across goroutines must serialize Advance themselves.
package proc
