// Package backend provides fake quantum backends for testing code that
// submits circuit or pulse-schedule jobs to a backend interface.
//
// # Reading Guide
//
// Start with these three files to understand the package:
//   - config.go: the static device description (qubit count, coupling map, basis gates)
//   - backend.go: FakeBackend, the modern facade and its run dispatch
//   - engine.go: the simulation-engine seam and how engines are resolved
//
// # Architecture
//
// The backend package defines interfaces and the dispatch logic; simulation
// engines live in sub-packages:
//   - backend/statevector/: the full-featured engine (noise models, pulse schedules, async jobs)
//   - backend/reference/: the basic fallback engine (ideal circuits only)
//
// Sub-packages register their constructors via init() functions that set
// package-level factory variables (NewStatevectorEngineFunc,
// NewReferenceEngineFunc). Whether the full-featured engine is "installed"
// is therefore a link-time property: a binary that never imports
// backend/statevector degrades to the reference engine with a warning, and
// pulse jobs fail. DefaultEngines resolves the capability set once per
// process; tests inject their own Engines value instead.
//
// Everything a backend reports about itself is synthetic. Properties()
// returns a calibration document with fixed placeholder values derived only
// from the coupling map, and Credentials carry a dummy token that is never
// validated or transmitted.
package backend
