// register.go wires the statevector engine into the backend package's
// registration variable (NewStatevectorEngineFunc). This init() runs when any
// package imports backend/statevector, breaking the import cycle between
// backend/ (interface owner) and backend/statevector/ (implementation).
// Binaries that never import this package have no full-featured engine and
// take the reference fallback path.
package statevector

import "github.com/qpu-sim/qpu-sim/backend"

func init() {
	backend.NewStatevectorEngineFunc = func() backend.PulseEngine {
		return New()
	}
}
