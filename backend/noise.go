package backend

// NoiseModel is a synthetic error-injection profile derived from a fake
// properties document. For fake backends every rate is zero, so applying the
// model is a numerical no-op, but engines honor non-zero values should a
// harness construct its own.
type NoiseModel struct {
	// ReadoutErrors maps qubit index to readout bit-flip probability.
	ReadoutErrors map[int]float64
	// GateErrors maps gate record names (e.g. "CX0_1") to error rates.
	GateErrors map[string]float64
}

// NoiseModelFromBackend derives a noise model from the device's current
// properties document, the way a simulator builds one from real calibration
// data.
func NoiseModelFromBackend(d Device) *NoiseModel {
	props := d.Properties()
	readout := make(map[int]float64, len(props.Qubits))
	for i, records := range props.Qubits {
		for _, rec := range records {
			if rec.Name == "readout_error" {
				readout[i] = rec.Value
			}
		}
	}
	gateErrs := make(map[string]float64, len(props.Gates))
	for _, g := range props.Gates {
		for _, p := range g.Parameters {
			if p.Name == "gate_error" {
				gateErrs[g.Name] = p.Value
			}
		}
	}
	return &NoiseModel{ReadoutErrors: readout, GateErrors: gateErrs}
}
