// Package reference implements the basic fallback engine: an independent,
// ideal statevector simulator with no noise modeling and no pulse support.
// Work executes synchronously at submission and the returned job is already
// complete. It mirrors the role a bundled reference simulator plays next to
// a full-featured one.
package reference

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/google/uuid"

	"github.com/qpu-sim/qpu-sim/backend"
)

// Engine is the basic simulator.
type Engine struct{}

// New constructs a reference engine.
func New() *Engine { return &Engine{} }

// Name returns the engine identifier reported in results.
func (e *Engine) Name() string { return "reference_simulator" }

// DefaultOptions returns the engine's run defaults.
func (e *Engine) DefaultOptions() backend.RunOptions {
	return backend.RunOptions{Shots: 1024, Seed: 42}
}

// RunCircuits executes the circuits synchronously and returns a completed
// job.
func (e *Engine) RunCircuits(circuits []*backend.Circuit, opts backend.RunOptions) (backend.Job, error) {
	if len(circuits) == 0 {
		return nil, fmt.Errorf("reference engine: no circuits to run")
	}
	if opts.Shots == 0 {
		opts.Shots = e.DefaultOptions().Shots
	}
	if opts.Seed == 0 {
		opts.Seed = e.DefaultOptions().Seed
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	results := make([]backend.ExperimentResult, 0, len(circuits))
	for _, c := range circuits {
		counts, err := run(c, opts.Shots, rng)
		if err != nil {
			return nil, err
		}
		results = append(results, backend.ExperimentResult{Name: c.Name, Shots: opts.Shots, Counts: counts})
	}
	id := uuid.NewString()
	return &doneJob{id: id, res: &backend.Result{
		BackendName: e.Name(),
		JobID:       id,
		Success:     true,
		Results:     results,
	}}, nil
}

// doneJob is a job handle whose work finished before it was handed out.
type doneJob struct {
	id  string
	res *backend.Result
}

func (j *doneJob) ID() string { return j.id }

func (j *doneJob) Status() backend.JobStatus { return backend.JobDone }

func (j *doneJob) Result(ctx context.Context) (*backend.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return j.res, nil
}

func run(c *backend.Circuit, shots int, rng *rand.Rand) (map[string]int, error) {
	if c.NumQubits <= 0 {
		return nil, fmt.Errorf("circuit %q has no qubits", c.Name)
	}
	amps := make([]complex128, 1<<c.NumQubits)
	amps[0] = 1
	for _, inst := range c.Instructions {
		if err := apply(amps, c.NumQubits, inst); err != nil {
			return nil, fmt.Errorf("circuit %q: %w", c.Name, err)
		}
	}

	// Cumulative-probability sampling; no noise, ever.
	cumulative := make([]float64, len(amps))
	total := 0.0
	for i, a := range amps {
		re, im := real(a), imag(a)
		total += re*re + im*im
		cumulative[i] = total
	}
	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		r := rng.Float64() * total
		outcome := len(cumulative) - 1
		for idx, edge := range cumulative {
			if r < edge {
				outcome = idx
				break
			}
		}
		counts[bitstring(outcome, c.NumQubits)]++
	}
	return counts, nil
}

func apply(amps []complex128, n int, inst backend.Instruction) error {
	checkQubits := func(want int) error {
		if len(inst.Qubits) != want {
			return fmt.Errorf("gate %q wants %d qubits, got %d", inst.Name, want, len(inst.Qubits))
		}
		for _, q := range inst.Qubits {
			if q < 0 || q >= n {
				return fmt.Errorf("gate %q: qubit %d out of range [0, %d)", inst.Name, q, n)
			}
		}
		return nil
	}
	switch inst.Name {
	case "measure", "barrier", "id", "delay":
		return nil
	case "cx":
		if err := checkQubits(2); err != nil {
			return err
		}
		c, t := 1<<inst.Qubits[0], 1<<inst.Qubits[1]
		for idx := range amps {
			if idx&c != 0 && idx&t == 0 {
				amps[idx], amps[idx|t] = amps[idx|t], amps[idx]
			}
		}
		return nil
	default:
		m, err := matrix(inst.Name, inst.Params)
		if err != nil {
			return err
		}
		if err := checkQubits(1); err != nil {
			return err
		}
		step := 1 << inst.Qubits[0]
		for idx := range amps {
			if idx&step == 0 {
				a0, a1 := amps[idx], amps[idx|step]
				amps[idx] = m[0][0]*a0 + m[0][1]*a1
				amps[idx|step] = m[1][0]*a0 + m[1][1]*a1
			}
		}
		return nil
	}
}

func matrix(name string, params []float64) ([2][2]complex128, error) {
	p := func(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }
	inv := complex(1/math.Sqrt2, 0)
	switch {
	case name == "x":
		return [2][2]complex128{{0, 1}, {1, 0}}, nil
	case name == "y":
		return [2][2]complex128{{0, -1i}, {1i, 0}}, nil
	case name == "z":
		return [2][2]complex128{{1, 0}, {0, -1}}, nil
	case name == "h":
		return [2][2]complex128{{inv, inv}, {inv, -inv}}, nil
	case name == "s":
		return [2][2]complex128{{1, 0}, {0, 1i}}, nil
	case name == "sdg":
		return [2][2]complex128{{1, 0}, {0, -1i}}, nil
	case name == "t":
		return [2][2]complex128{{1, 0}, {0, p(math.Pi / 4)}}, nil
	case name == "tdg":
		return [2][2]complex128{{1, 0}, {0, p(-math.Pi / 4)}}, nil
	case (name == "rz" || name == "u1" || name == "p") && len(params) == 1:
		if name == "rz" {
			return [2][2]complex128{{p(-params[0] / 2), 0}, {0, p(params[0] / 2)}}, nil
		}
		return [2][2]complex128{{1, 0}, {0, p(params[0])}}, nil
	case name == "rx" && len(params) == 1:
		c := complex(math.Cos(params[0]/2), 0)
		s := complex(0, -math.Sin(params[0]/2))
		return [2][2]complex128{{c, s}, {s, c}}, nil
	case name == "ry" && len(params) == 1:
		c := complex(math.Cos(params[0]/2), 0)
		s := complex(math.Sin(params[0]/2), 0)
		return [2][2]complex128{{c, -s}, {s, c}}, nil
	case name == "u2" && len(params) == 2:
		phi, lam := params[0], params[1]
		return [2][2]complex128{{inv, -inv * p(lam)}, {inv * p(phi), inv * p(phi+lam)}}, nil
	case (name == "u3" || name == "u") && len(params) == 3:
		theta, phi, lam := params[0], params[1], params[2]
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return [2][2]complex128{{c, -s * p(lam)}, {s * p(phi), c * p(phi+lam)}}, nil
	default:
		return [2][2]complex128{}, fmt.Errorf("unknown gate %q (params %v)", name, params)
	}
}

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
