package statevector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qpu-sim/qpu-sim/backend"
)

func TestState_HadamardSplitsAmplitude(t *testing.T) {
	st := newState(1)
	require.NoError(t, st.apply(backend.Instruction{Name: "h", Qubits: []int{0}}))

	probs := st.probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestState_CXEntangles(t *testing.T) {
	st := newState(2)
	require.NoError(t, st.apply(backend.Instruction{Name: "h", Qubits: []int{0}}))
	require.NoError(t, st.apply(backend.Instruction{Name: "cx", Qubits: []int{0, 1}}))

	probs := st.probabilities()
	assert.InDelta(t, 0.5, probs[0b00], 1e-12)
	assert.InDelta(t, 0.0, probs[0b01], 1e-12)
	assert.InDelta(t, 0.0, probs[0b10], 1e-12)
	assert.InDelta(t, 0.5, probs[0b11], 1e-12)
}

func TestState_SwapMovesExcitation(t *testing.T) {
	st := newState(2)
	require.NoError(t, st.apply(backend.Instruction{Name: "x", Qubits: []int{0}}))
	require.NoError(t, st.apply(backend.Instruction{Name: "swap", Qubits: []int{0, 1}}))

	probs := st.probabilities()
	assert.InDelta(t, 1.0, probs[0b10], 1e-12)
}

func TestState_U2EquivalentToHadamard(t *testing.T) {
	// u2(0, pi) is the Hadamard up to global phase
	st := newState(1)
	require.NoError(t, st.apply(backend.Instruction{Name: "u2", Qubits: []int{0}, Params: []float64{0, math.Pi}}))

	probs := st.probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestState_ProbabilitiesStayNormalized(t *testing.T) {
	st := newState(3)
	for _, inst := range []backend.Instruction{
		{Name: "h", Qubits: []int{0}},
		{Name: "t", Qubits: []int{1}},
		{Name: "ry", Qubits: []int{2}, Params: []float64{1.1}},
		{Name: "cx", Qubits: []int{0, 2}},
		{Name: "cz", Qubits: []int{1, 2}},
		{Name: "rz", Qubits: []int{0}, Params: []float64{0.3}},
	} {
		require.NoError(t, st.apply(inst))
	}

	sum := 0.0
	for _, p := range st.probabilities() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestState_ApplyRejectsBadOperands(t *testing.T) {
	st := newState(2)
	tests := []struct {
		name string
		inst backend.Instruction
		want string
	}{
		{"qubit out of range", backend.Instruction{Name: "x", Qubits: []int{5}}, "out of range"},
		{"wrong arity", backend.Instruction{Name: "h", Qubits: []int{0, 1}}, "wants 1 qubit"},
		{"cx needs two", backend.Instruction{Name: "cx", Qubits: []int{0}}, "wants 2 qubits"},
		{"cx duplicate qubit", backend.Instruction{Name: "cx", Qubits: []int{1, 1}}, "duplicate qubit"},
		{"missing params", backend.Instruction{Name: "rz", Qubits: []int{0}}, "wants 1 params"},
		{"unknown gate", backend.Instruction{Name: "zz", Qubits: []int{0}}, "unknown gate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, st.apply(tt.inst), tt.want)
		})
	}
}

func TestBitstring(t *testing.T) {
	assert.Equal(t, "01", bitstring(0b01, 2))
	assert.Equal(t, "10", bitstring(0b10, 2))
	assert.Equal(t, "0011", bitstring(0b0011, 4))
	assert.Equal(t, "", bitstring(0, 0))
}
