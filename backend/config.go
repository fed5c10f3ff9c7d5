package backend

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Configuration is the static description of a fake device, loadable from a
// YAML file. It is supplied at backend construction and never mutated;
// backends hold a pointer and only ever read through it.
type Configuration struct {
	BackendName    string   `yaml:"backend_name" json:"backend_name"`
	BackendVersion string   `yaml:"backend_version" json:"backend_version"`
	NumQubits      int      `yaml:"n_qubits" json:"n_qubits"`
	BasisGates     []string `yaml:"basis_gates" json:"basis_gates"`
	CouplingMap    [][2]int `yaml:"coupling_map" json:"coupling_map"`
	OpenPulse      bool     `yaml:"open_pulse" json:"open_pulse"`
	Simulator      bool     `yaml:"simulator" json:"simulator"`
	Local          bool     `yaml:"local" json:"local"`
	MaxShots       int      `yaml:"max_shots" json:"max_shots"`
}

// LoadConfiguration reads and parses a YAML backend configuration file and
// validates it.
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backend config: %w", err)
	}
	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing backend config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration describes a coherent device.
func (c *Configuration) Validate() error {
	if c.BackendName == "" {
		return fmt.Errorf("backend configuration has no backend_name")
	}
	if c.NumQubits <= 0 {
		return fmt.Errorf("backend %q: n_qubits must be positive, got %d", c.BackendName, c.NumQubits)
	}
	if len(c.BasisGates) == 0 {
		return fmt.Errorf("backend %q: basis_gates is empty", c.BackendName)
	}
	for _, pair := range c.CouplingMap {
		for _, q := range []int{pair[0], pair[1]} {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("backend %q: coupling map qubit %d out of range [0, %d)", c.BackendName, q, c.NumQubits)
			}
		}
		if pair[0] == pair[1] {
			return fmt.Errorf("backend %q: coupling map pair [%d, %d] is a self-loop", c.BackendName, pair[0], pair[1])
		}
	}
	return nil
}

// CouplingQubits returns the sorted distinct qubit indices referenced by the
// coupling map. The properties document synthesizes exactly one calibration
// record per entry of this list.
func (c *Configuration) CouplingQubits() []int {
	seen := make(map[int]bool)
	for _, pair := range c.CouplingMap {
		seen[pair[0]] = true
		seen[pair[1]] = true
	}
	qubits := make([]int, 0, len(seen))
	for q := range seen {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)
	return qubits
}

// SupportsGate reports whether name is in the configured basis gate set.
// The measurement operation is implicitly supported by every device.
func (c *Configuration) SupportsGate(name string) bool {
	if name == "measure" {
		return true
	}
	for _, g := range c.BasisGates {
		if g == name {
			return true
		}
	}
	return false
}
