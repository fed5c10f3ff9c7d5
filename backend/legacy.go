package backend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FakeLegacyBackend is a dummy backend for testing the legacy provider
// interface. It shares the configuration/properties/credentials surface with
// FakeBackend but accepts a pre-built Qobj batch with an explicitly declared
// kind, and always returns a LegacyJob.
type FakeLegacyBackend struct {
	core

	TimeAlive int
}

// NewFakeLegacyBackend constructs a legacy fake backend over the
// process-wide engine set.
func NewFakeLegacyBackend(cfg *Configuration) *FakeLegacyBackend {
	return NewFakeLegacyBackendWithEngines(cfg, DefaultEngines())
}

// NewFakeLegacyBackendWithEngines constructs a legacy fake backend with an
// injected engine set.
func NewFakeLegacyBackendWithEngines(cfg *Configuration, engines Engines) *FakeLegacyBackend {
	return &FakeLegacyBackend{core: newCore(cfg, engines), TimeAlive: 10}
}

// Run submits a legacy batch. With the full-featured engine the work is
// dispatched eagerly and the engine's job is wrapped. Without it, pulse
// batches fail and circuit batches produce a job that lazily executes the
// simulation on the reference engine the first time it is asked for its
// result.
func (b *FakeLegacyBackend) Run(qobj *Qobj) (*LegacyJob, error) {
	if qobj == nil {
		return nil, fmt.Errorf("%w: nil qobj", ErrInvalidInput)
	}
	opts := RunOptions{Shots: qobj.Shots, Seed: qobj.Seed}

	if b.engines.HasAdvanced() {
		eng := b.engines.Advanced
		opts = opts.withDefaults(eng.DefaultOptions())
		var inner Job
		var err error
		if qobj.Type == QobjPulse {
			model := SystemModelFromBackend(b)
			inner, err = eng.RunSchedules(qobj.Schedules, model, opts)
		} else {
			opts.Noise = NoiseModelFromBackend(b)
			inner, err = eng.RunCircuits(qobj.Circuits, opts)
		}
		if err != nil {
			return nil, err
		}
		return wrapLegacyJob(inner), nil
	}

	if qobj.Type == QobjPulse {
		return nil, fmt.Errorf("%w: backend %q cannot run schedules", ErrPulseUnsupported, b.Name())
	}
	if b.engines.Reference == nil {
		return nil, fmt.Errorf("backend %q has no simulation engine linked in", b.Name())
	}
	logrus.Warnf("statevector engine not found, using %s and no noise", b.engines.Reference.Name())
	opts = opts.withDefaults(b.engines.Reference.DefaultOptions())

	ref := b.engines.Reference
	circuits := qobj.Circuits
	return newDeferredLegacyJob(uuid.NewString(), func() (*Result, error) {
		job, err := ref.RunCircuits(circuits, opts)
		if err != nil {
			return nil, err
		}
		return job.Result(context.Background())
	}), nil
}
