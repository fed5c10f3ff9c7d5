// Package statevector implements the full-featured simulation engine: ideal
// statevector execution of gate-level circuits, readout sampling through a
// noise model, and pulse-schedule execution against a device system model.
// Jobs run asynchronously on their own goroutine.
package statevector

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/qpu-sim/qpu-sim/backend"
)

// Engine is the full-featured simulator.
type Engine struct{}

// New constructs a statevector engine.
func New() *Engine { return &Engine{} }

// Name returns the engine identifier reported in results.
func (e *Engine) Name() string { return "statevector_simulator" }

// DefaultOptions returns the engine's run defaults.
func (e *Engine) DefaultOptions() backend.RunOptions {
	return backend.RunOptions{Shots: 1024, Seed: 42}
}

// RunCircuits submits circuit work and returns immediately with an
// asynchronous job handle.
func (e *Engine) RunCircuits(circuits []*backend.Circuit, opts backend.RunOptions) (backend.Job, error) {
	if len(circuits) == 0 {
		return nil, fmt.Errorf("statevector engine: no circuits to run")
	}
	opts = fillDefaults(opts, e.DefaultOptions())
	j := newJob()
	go j.complete(func() (*backend.Result, error) {
		return e.execute(circuits, opts)
	})
	return j, nil
}

// RunSchedules submits pulse work against a system model. Pulse execution
// models an unexcited device: every schedule measures the ground state.
func (e *Engine) RunSchedules(schedules []*backend.Schedule, model *backend.SystemModel, opts backend.RunOptions) (backend.Job, error) {
	if model == nil {
		return nil, fmt.Errorf("statevector engine: schedules require a system model")
	}
	if len(schedules) == 0 {
		return nil, fmt.Errorf("statevector engine: no schedules to run")
	}
	opts = fillDefaults(opts, e.DefaultOptions())
	j := newJob()
	go j.complete(func() (*backend.Result, error) {
		results := make([]backend.ExperimentResult, 0, len(schedules))
		ground := bitstring(0, model.NumQubits)
		for _, sched := range schedules {
			results = append(results, backend.ExperimentResult{
				Name:   sched.Name,
				Shots:  opts.Shots,
				Counts: map[string]int{ground: opts.Shots},
			})
		}
		return &backend.Result{BackendName: e.Name(), Success: true, Results: results}, nil
	})
	return j, nil
}

func (e *Engine) execute(circuits []*backend.Circuit, opts backend.RunOptions) (*backend.Result, error) {
	src := rand.NewPCG(uint64(opts.Seed), 0)
	results := make([]backend.ExperimentResult, 0, len(circuits))
	for _, c := range circuits {
		counts, err := simulate(c, opts, src)
		if err != nil {
			return nil, err
		}
		results = append(results, backend.ExperimentResult{Name: c.Name, Shots: opts.Shots, Counts: counts})
	}
	return &backend.Result{BackendName: e.Name(), Success: true, Results: results}, nil
}

// simulate runs one circuit to its final statevector and samples shots from
// the outcome distribution, flipping readout bits per the noise model.
func simulate(c *backend.Circuit, opts backend.RunOptions, src rand.Source) (map[string]int, error) {
	if c.NumQubits <= 0 {
		return nil, fmt.Errorf("circuit %q has no qubits", c.Name)
	}
	st := newState(c.NumQubits)
	for _, inst := range c.Instructions {
		if err := st.apply(inst); err != nil {
			return nil, fmt.Errorf("circuit %q: %w", c.Name, err)
		}
	}

	dist := distuv.NewCategorical(st.probabilities(), src)
	flips := readoutFlips(opts.Noise, c.NumQubits, src)
	counts := make(map[string]int)
	for i := 0; i < opts.Shots; i++ {
		outcome := int(dist.Rand())
		for q, flip := range flips {
			if flip.Rand() == 1 {
				outcome ^= 1 << q
			}
		}
		counts[bitstring(outcome, c.NumQubits)]++
	}
	return counts, nil
}

// readoutFlips builds a Bernoulli sampler per qubit with a non-zero readout
// error. The fake properties document carries all-zero rates, so this is
// normally empty.
func readoutFlips(noise *backend.NoiseModel, numQubits int, src rand.Source) map[int]distuv.Bernoulli {
	flips := make(map[int]distuv.Bernoulli)
	if noise == nil {
		return flips
	}
	for q, p := range noise.ReadoutErrors {
		if p > 0 && q < numQubits {
			flips[q] = distuv.Bernoulli{P: p, Src: src}
		}
	}
	return flips
}

func fillDefaults(opts, defaults backend.RunOptions) backend.RunOptions {
	if opts.Shots == 0 {
		opts.Shots = defaults.Shots
	}
	if opts.Seed == 0 {
		opts.Seed = defaults.Seed
	}
	return opts
}

// bitstring renders an amplitude index with qubit 0 as the rightmost
// character.
func bitstring(outcome, n int) string {
	b := make([]byte, n)
	for q := 0; q < n; q++ {
		if outcome&(1<<q) != 0 {
			b[n-1-q] = '1'
		} else {
			b[n-1-q] = '0'
		}
	}
	return string(b)
}
