package statevector

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qpu-sim/qpu-sim/backend"
)

// state is a dense statevector over n qubits. Qubit q corresponds to bit q
// of the amplitude index; the display bitstring puts qubit 0 rightmost.
type state struct {
	n    int
	amps []complex128
}

func newState(n int) *state {
	s := &state{n: n, amps: make([]complex128, 1<<n)}
	s.amps[0] = 1
	return s
}

// apply interprets one instruction. Measurement and barriers are no-ops
// here; sampling happens once, at the end, over the full register.
func (s *state) apply(inst backend.Instruction) error {
	switch inst.Name {
	case "measure", "barrier", "id", "delay":
		return nil
	case "cx":
		a, b, err := s.twoQubits(inst)
		if err != nil {
			return err
		}
		s.applyCX(a, b)
		return nil
	case "cz":
		a, b, err := s.twoQubits(inst)
		if err != nil {
			return err
		}
		s.applyCZ(a, b)
		return nil
	case "swap":
		a, b, err := s.twoQubits(inst)
		if err != nil {
			return err
		}
		s.applyCX(a, b)
		s.applyCX(b, a)
		s.applyCX(a, b)
		return nil
	default:
		m, err := gateMatrix(inst.Name, inst.Params)
		if err != nil {
			return err
		}
		if len(inst.Qubits) != 1 {
			return fmt.Errorf("gate %q wants 1 qubit, got %d", inst.Name, len(inst.Qubits))
		}
		q := inst.Qubits[0]
		if q < 0 || q >= s.n {
			return fmt.Errorf("gate %q: qubit %d out of range [0, %d)", inst.Name, q, s.n)
		}
		s.apply1(m, q)
		return nil
	}
}

func (s *state) twoQubits(inst backend.Instruction) (int, int, error) {
	if len(inst.Qubits) != 2 {
		return 0, 0, fmt.Errorf("gate %q wants 2 qubits, got %d", inst.Name, len(inst.Qubits))
	}
	a, b := inst.Qubits[0], inst.Qubits[1]
	for _, q := range []int{a, b} {
		if q < 0 || q >= s.n {
			return 0, 0, fmt.Errorf("gate %q: qubit %d out of range [0, %d)", inst.Name, q, s.n)
		}
	}
	if a == b {
		return 0, 0, fmt.Errorf("gate %q: duplicate qubit %d", inst.Name, a)
	}
	return a, b, nil
}

func (s *state) apply1(m [2][2]complex128, q int) {
	step := 1 << q
	for idx := range s.amps {
		if idx&step == 0 {
			a0, a1 := s.amps[idx], s.amps[idx|step]
			s.amps[idx] = m[0][0]*a0 + m[0][1]*a1
			s.amps[idx|step] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

func (s *state) applyCX(control, target int) {
	c, t := 1<<control, 1<<target
	for idx := range s.amps {
		if idx&c != 0 && idx&t == 0 {
			s.amps[idx], s.amps[idx|t] = s.amps[idx|t], s.amps[idx]
		}
	}
}

func (s *state) applyCZ(a, b int) {
	ab := 1<<a | 1<<b
	for idx := range s.amps {
		if idx&ab == ab {
			s.amps[idx] = -s.amps[idx]
		}
	}
}

// probabilities returns the measurement distribution over amplitude indices.
func (s *state) probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		re, im := real(a), imag(a)
		probs[i] = re*re + im*im
	}
	return probs
}

func phase(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}

// gateMatrix returns the 2x2 matrix for a single-qubit gate.
func gateMatrix(name string, params []float64) ([2][2]complex128, error) {
	want := func(n int) error {
		if len(params) != n {
			return fmt.Errorf("gate %q wants %d params, got %d", name, n, len(params))
		}
		return nil
	}
	inv := complex(1/math.Sqrt2, 0)
	switch name {
	case "x":
		return [2][2]complex128{{0, 1}, {1, 0}}, want(0)
	case "y":
		return [2][2]complex128{{0, -1i}, {1i, 0}}, want(0)
	case "z":
		return [2][2]complex128{{1, 0}, {0, -1}}, want(0)
	case "h":
		return [2][2]complex128{{inv, inv}, {inv, -inv}}, want(0)
	case "s":
		return [2][2]complex128{{1, 0}, {0, 1i}}, want(0)
	case "sdg":
		return [2][2]complex128{{1, 0}, {0, -1i}}, want(0)
	case "t":
		return [2][2]complex128{{1, 0}, {0, phase(math.Pi / 4)}}, want(0)
	case "tdg":
		return [2][2]complex128{{1, 0}, {0, phase(-math.Pi / 4)}}, want(0)
	case "rx":
		if err := want(1); err != nil {
			return [2][2]complex128{}, err
		}
		c := complex(math.Cos(params[0]/2), 0)
		s := complex(0, -math.Sin(params[0]/2))
		return [2][2]complex128{{c, s}, {s, c}}, nil
	case "ry":
		if err := want(1); err != nil {
			return [2][2]complex128{}, err
		}
		c := complex(math.Cos(params[0]/2), 0)
		s := complex(math.Sin(params[0]/2), 0)
		return [2][2]complex128{{c, -s}, {s, c}}, nil
	case "rz":
		if err := want(1); err != nil {
			return [2][2]complex128{}, err
		}
		return [2][2]complex128{{phase(-params[0] / 2), 0}, {0, phase(params[0] / 2)}}, nil
	case "p", "u1":
		if err := want(1); err != nil {
			return [2][2]complex128{}, err
		}
		return [2][2]complex128{{1, 0}, {0, phase(params[0])}}, nil
	case "u2":
		if err := want(2); err != nil {
			return [2][2]complex128{}, err
		}
		phi, lam := params[0], params[1]
		return [2][2]complex128{
			{inv, -inv * phase(lam)},
			{inv * phase(phi), inv * phase(phi+lam)},
		}, nil
	case "u3", "u":
		if err := want(3); err != nil {
			return [2][2]complex128{}, err
		}
		theta, phi, lam := params[0], params[1], params[2]
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return [2][2]complex128{
			{c, -s * phase(lam)},
			{s * phase(phi), c * phase(phi+lam)},
		}, nil
	default:
		return [2][2]complex128{}, fmt.Errorf("unknown gate %q", name)
	}
}
