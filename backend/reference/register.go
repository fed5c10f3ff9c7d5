// register.go wires the reference engine into the backend package's
// registration variable (NewReferenceEngineFunc). This init() runs when any
// package imports backend/reference. The reference engine is the fallback
// tier: backends use it, with a warning and no noise model, when the
// statevector engine is not linked in.
package reference

import "github.com/qpu-sim/qpu-sim/backend"

func init() {
	backend.NewReferenceEngineFunc = func() backend.Engine {
		return New()
	}
}
