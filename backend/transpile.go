package backend

// TranspileWithLayout returns a copy of the circuit with every instruction's
// virtual qubit indices remapped to physical indices through the initial
// layout. Indices absent from the layout pass through unchanged. The input
// circuit is not modified.
func TranspileWithLayout(c *Circuit, layout map[int]int) *Circuit {
	out := &Circuit{
		Name:         c.Name,
		NumQubits:    c.NumQubits,
		Instructions: make([]Instruction, len(c.Instructions)),
	}
	for i, inst := range c.Instructions {
		qubits := make([]int, len(inst.Qubits))
		for j, q := range inst.Qubits {
			if phys, ok := layout[q]; ok {
				qubits[j] = phys
			} else {
				qubits[j] = q
			}
		}
		out.Instructions[i] = Instruction{Name: inst.Name, Qubits: qubits, Params: inst.Params}
	}
	return out
}

func transpileAll(circuits []*Circuit, layout map[int]int) []*Circuit {
	out := make([]*Circuit, len(circuits))
	for i, c := range circuits {
		out[i] = TranspileWithLayout(c, layout)
	}
	return out
}
