package backend

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// core is the configuration-driven adapter both facades share: static
// configuration, dummy credentials, and the resolved engine set. The facades
// differ only in their run surface and in which job wrapper they return.
type core struct {
	cfg     *Configuration
	creds   Credentials
	engines Engines
}

func newCore(cfg *Configuration, engines Engines) core {
	return core{cfg: cfg, creds: newCredentials(), engines: engines}
}

// Name returns the configured backend name.
func (c *core) Name() string { return c.cfg.BackendName }

// Configuration returns the static device description.
func (c *core) Configuration() *Configuration { return c.cfg }

// Credentials returns the dummy credential tuple.
func (c *core) Credentials() Credentials { return c.creds }

// Properties synthesizes the calibration document from the configuration.
// The document is rebuilt on every call.
func (c *core) Properties() *Properties { return BuildProperties(c.cfg) }

// DefaultOptions returns the run defaults of whichever engine is available,
// preferring the full-featured one.
func (c *core) DefaultOptions() RunOptions {
	if c.engines.HasAdvanced() {
		return c.engines.Advanced.DefaultOptions()
	}
	if c.engines.Reference != nil {
		return c.engines.Reference.DefaultOptions()
	}
	return RunOptions{}
}

// validateInstructions rejects any circuit instruction outside the basis
// gate set before submission. Measurement is implicitly allowed.
func (c *core) validateInstructions(circuits []*Circuit) error {
	for _, circ := range circuits {
		for _, inst := range circ.Instructions {
			if !c.cfg.SupportsGate(inst.Name) {
				return fmt.Errorf("%w: %q", ErrUnsupportedInstruction, inst.Name)
			}
		}
	}
	return nil
}

// FakeBackend is a dummy backend for testing purposes. It mimics the modern
// backend interface: configuration, synthetic properties, and a Run method
// that classifies its input and forwards it to a simulation engine.
type FakeBackend struct {
	core

	// TimeAlive is the idle time in seconds a harness may wait before
	// treating results as ready. Kept for interface compatibility; nothing
	// here sleeps on it.
	TimeAlive int
}

// NewFakeBackend constructs a fake backend over the process-wide engine set.
func NewFakeBackend(cfg *Configuration) *FakeBackend {
	return NewFakeBackendWithEngines(cfg, DefaultEngines())
}

// NewFakeBackendWithEngines constructs a fake backend with an injected
// engine set. Tests use this to force either dispatch tier.
func NewFakeBackendWithEngines(cfg *Configuration, engines Engines) *FakeBackend {
	return &FakeBackend{core: newCore(cfg, engines), TimeAlive: 10}
}

// Run classifies input as circuit or pulse work and forwards it to the
// available engine. Input must be a *Circuit, *Schedule, or a non-empty
// homogeneous list of either.
//
// With the full-featured engine linked in, pulse work runs against a system
// model derived from this backend, and circuit work is validated against the
// basis gate set, given a noise model derived from the fake properties, and
// optionally remapped through opts.QubitMapping. Without it, pulse work
// fails and circuit work degrades to the reference engine with a warning and
// no noise model.
func (b *FakeBackend) Run(input any, opts RunOptions) (Job, error) {
	circuits, schedules, pulse, err := classifyRunInput(input)
	if err != nil {
		return nil, err
	}

	if b.engines.HasAdvanced() {
		eng := b.engines.Advanced
		opts = opts.withDefaults(eng.DefaultOptions())
		if pulse {
			model := SystemModelFromBackend(b)
			return eng.RunSchedules(schedules, model, opts.forEngine())
		}
		if err := b.validateInstructions(circuits); err != nil {
			return nil, err
		}
		opts.Noise = NoiseModelFromBackend(b)
		if opts.QubitMapping != nil {
			layout, err := ParseQubitMapping(opts.QubitMapping)
			if err != nil {
				return nil, err
			}
			circuits = transpileAll(circuits, layout)
		}
		return eng.RunCircuits(circuits, opts.forEngine())
	}

	if pulse {
		return nil, fmt.Errorf("%w: backend %q cannot run schedules", ErrPulseUnsupported, b.Name())
	}
	if b.engines.Reference == nil {
		return nil, fmt.Errorf("backend %q has no simulation engine linked in", b.Name())
	}
	logrus.Warnf("statevector engine not found, using %s and no noise", b.engines.Reference.Name())
	opts = opts.withDefaults(b.engines.Reference.DefaultOptions())
	return b.engines.Reference.RunCircuits(circuits, opts.forEngine())
}
