package backend

// SystemModel carries the device parameters a pulse engine needs to execute
// schedules: estimated qubit frequencies from the properties document plus
// the connectivity from the configuration.
type SystemModel struct {
	NumQubits    int
	QubitFreqEst []float64
	CouplingMap  [][2]int
}

// SystemModelFromBackend derives a pulse system model from a fake backend.
func SystemModelFromBackend(d Device) *SystemModel {
	cfg := d.Configuration()
	props := d.Properties()
	freqs := make([]float64, 0, len(props.Qubits))
	for _, records := range props.Qubits {
		for _, rec := range records {
			if rec.Name == "frequency" {
				freqs = append(freqs, rec.Value)
			}
		}
	}
	return &SystemModel{
		NumQubits:    cfg.NumQubits,
		QubitFreqEst: freqs,
		CouplingMap:  cfg.CouplingMap,
	}
}
