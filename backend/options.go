package backend

// RunOptions carries per-submission parameters. The zero value means "use the
// engine's defaults" for Shots and Seed.
type RunOptions struct {
	// Shots is the number of measurement repetitions per circuit.
	Shots int
	// Seed makes measurement sampling reproducible.
	Seed int64
	// QubitMapping maps virtual qubit indices to device labels of the form
	// "QB<n>". The facade converts it to an initial layout, applies it by
	// transpilation, and strips it before anything reaches an engine.
	QubitMapping map[int]string
	// Noise is set by the facade on the full-featured path. Callers normally
	// leave it nil; the backend derives one from its own properties.
	Noise *NoiseModel
}

// forEngine returns a copy with the fields engines must never see removed.
func (o RunOptions) forEngine() RunOptions {
	o.QubitMapping = nil
	return o
}

// withDefaults fills zero-valued Shots and Seed from the engine defaults.
func (o RunOptions) withDefaults(d RunOptions) RunOptions {
	if o.Shots == 0 {
		o.Shots = d.Shots
	}
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	return o
}
