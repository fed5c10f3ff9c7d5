package backend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instruction is one gate or measurement applied to a set of qubits.
type Instruction struct {
	Name   string    `yaml:"name" json:"name"`
	Qubits []int     `yaml:"qubits" json:"qubits"`
	Params []float64 `yaml:"params,omitempty" json:"params,omitempty"`
}

// Circuit is a gate-level program: an ordered list of instructions over
// NumQubits qubits.
type Circuit struct {
	Name         string        `yaml:"name" json:"name"`
	NumQubits    int           `yaml:"n_qubits" json:"n_qubits"`
	Instructions []Instruction `yaml:"instructions" json:"instructions"`
}

// PulseInstruction is one pulse played on a channel during a schedule.
type PulseInstruction struct {
	Channel  string `yaml:"channel" json:"channel"`
	T0       int    `yaml:"t0" json:"t0"`
	Duration int    `yaml:"duration" json:"duration"`
}

// Schedule is a pulse-level program. Only the full-featured engine can
// execute schedules.
type Schedule struct {
	Name         string             `yaml:"name" json:"name"`
	Instructions []PulseInstruction `yaml:"instructions" json:"instructions"`
}

// LoadCircuit reads and parses a YAML circuit file.
func LoadCircuit(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit: %w", err)
	}
	var c Circuit
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing circuit: %w", err)
	}
	return &c, nil
}

// classifyRunInput sorts run input into circuit or pulse work. A single
// circuit or schedule, or a non-empty homogeneous list of either, is
// accepted; anything else is an ErrInvalidInput naming the value. Lists of
// type []any are classified element-wise so callers can pass mixed-typed
// collections and get a precise rejection.
func classifyRunInput(input any) (circuits []*Circuit, schedules []*Schedule, pulse bool, err error) {
	switch v := input.(type) {
	case *Circuit:
		return []*Circuit{v}, nil, false, nil
	case *Schedule:
		return nil, []*Schedule{v}, true, nil
	case []*Circuit:
		if len(v) == 0 {
			return nil, nil, false, fmt.Errorf("%w: empty circuit list", ErrInvalidInput)
		}
		return v, nil, false, nil
	case []*Schedule:
		if len(v) == 0 {
			return nil, nil, false, fmt.Errorf("%w: empty schedule list", ErrInvalidInput)
		}
		return nil, v, true, nil
	case []any:
		if len(v) == 0 {
			return nil, nil, false, fmt.Errorf("%w: empty list", ErrInvalidInput)
		}
		for _, item := range v {
			switch it := item.(type) {
			case *Circuit:
				circuits = append(circuits, it)
			case *Schedule:
				schedules = append(schedules, it)
			default:
				return nil, nil, false, fmt.Errorf("%w: %v is not a circuit or schedule", ErrInvalidInput, item)
			}
		}
		if len(circuits) > 0 && len(schedules) > 0 {
			return nil, nil, false, fmt.Errorf("%w: %v mixes circuits and schedules", ErrInvalidInput, v)
		}
		return circuits, schedules, len(schedules) > 0, nil
	default:
		return nil, nil, false, fmt.Errorf("%w: %v must be a *Circuit, *Schedule, or a list of either", ErrInvalidInput, input)
	}
}
