package backend

import "fmt"

// propertiesTimestamp is the fixed calibration date stamped on every record.
// The document carries schema fidelity, not measurement semantics, so every
// value in it is a placeholder.
const propertiesTimestamp = "2000-01-01 00:00:00Z"

// ParameterValue is one named calibration datum (a qiskit-style Nduv record).
type ParameterValue struct {
	Date  string  `json:"date"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// GateProperties is the calibration record for one gate on one qubit pair.
type GateProperties struct {
	Gate       string           `json:"gate"`
	Name       string           `json:"name"`
	Parameters []ParameterValue `json:"parameters"`
	Qubits     []int            `json:"qubits"`
}

// Properties is a synthetic device calibration report. It is derived
// deterministically from a Configuration at call time and regenerated fresh
// on every Properties() call, never cached.
type Properties struct {
	BackendName    string             `json:"backend_name"`
	BackendVersion string             `json:"backend_version"`
	LastUpdateDate string             `json:"last_update_date"`
	Qubits         [][]ParameterValue `json:"qubits"`
	Gates          []GateProperties   `json:"gates"`
	General        []ParameterValue   `json:"general"`
}

// BuildProperties synthesizes the calibration document for a configuration:
// one fixed-value record set per distinct qubit in the coupling map, and one
// zero-error cx record per coupling pair.
func BuildProperties(cfg *Configuration) *Properties {
	qubits := make([][]ParameterValue, 0, len(cfg.CouplingQubits()))
	for range cfg.CouplingQubits() {
		qubits = append(qubits, []ParameterValue{
			{Date: propertiesTimestamp, Name: "T1", Unit: "µs", Value: 0.0},
			{Date: propertiesTimestamp, Name: "T2", Unit: "µs", Value: 0.0},
			{Date: propertiesTimestamp, Name: "frequency", Unit: "GHz", Value: 0.0},
			{Date: propertiesTimestamp, Name: "readout_error", Unit: "", Value: 0.0},
			{Date: propertiesTimestamp, Name: "operational", Unit: "", Value: 1},
		})
	}

	gates := make([]GateProperties, 0, len(cfg.CouplingMap))
	for _, pair := range cfg.CouplingMap {
		gates = append(gates, GateProperties{
			Gate: "cx",
			Name: fmt.Sprintf("CX%d_%d", pair[0], pair[1]),
			Parameters: []ParameterValue{
				{Date: propertiesTimestamp, Name: "gate_error", Unit: "", Value: 0.0},
			},
			Qubits: []int{pair[0], pair[1]},
		})
	}

	return &Properties{
		BackendName:    cfg.BackendName,
		BackendVersion: cfg.BackendVersion,
		LastUpdateDate: propertiesTimestamp,
		Qubits:         qubits,
		Gates:          gates,
		General:        []ParameterValue{},
	}
}
