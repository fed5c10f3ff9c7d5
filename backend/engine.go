package backend

import "sync"

// Device is the surface engines and model derivations need from a fake
// backend. Both facades implement it.
type Device interface {
	Name() string
	Configuration() *Configuration
	Properties() *Properties
}

// Engine executes gate-level circuits. Implementations own their job
// lifecycle; the returned Job is whatever handle the engine produces.
type Engine interface {
	Name() string
	DefaultOptions() RunOptions
	RunCircuits(circuits []*Circuit, opts RunOptions) (Job, error)
}

// PulseEngine is an Engine that can additionally execute pulse schedules
// against a device system model. Only the full-featured engine implements it.
type PulseEngine interface {
	Engine
	RunSchedules(schedules []*Schedule, model *SystemModel, opts RunOptions) (Job, error)
}

// Engine constructors are registered here by sub-package init() functions,
// breaking the import cycle between backend (interface owner) and the engine
// packages (implementations). A nil NewStatevectorEngineFunc means the
// full-featured engine was never linked into the binary, which puts every
// backend on the degraded reference path.
var (
	NewStatevectorEngineFunc func() PulseEngine
	NewReferenceEngineFunc   func() Engine
)

// Engines is the capability set a backend dispatches through. Advanced is
// nil when backend/statevector is not linked in.
type Engines struct {
	Advanced  PulseEngine
	Reference Engine
}

// HasAdvanced reports whether the full-featured engine is available.
func (e Engines) HasAdvanced() bool { return e.Advanced != nil }

var (
	resolveOnce    sync.Once
	defaultEngines Engines
)

// DefaultEngines resolves the process-wide engine capability set once, from
// whichever engine packages registered themselves. Backends constructed
// without explicit engines use this set; tests inject their own Engines
// through NewFakeBackendWithEngines instead of mutating the registration
// variables.
func DefaultEngines() Engines {
	resolveOnce.Do(func() {
		if NewStatevectorEngineFunc != nil {
			defaultEngines.Advanced = NewStatevectorEngineFunc()
		}
		if NewReferenceEngineFunc != nil {
			defaultEngines.Reference = NewReferenceEngineFunc()
		}
	})
	return defaultEngines
}
