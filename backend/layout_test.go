package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQubitMapping_OneBasedLabels(t *testing.T) {
	// GIVEN the mapping {0: "QB1", 1: "QB3"}
	mapping := map[int]string{0: "QB1", 1: "QB3"}

	// WHEN it is parsed
	layout, err := ParseQubitMapping(mapping)
	require.NoError(t, err)

	// THEN the one-based labels become zero-based physical indices
	assert.Equal(t, map[int]int{0: 0, 1: 2}, layout)
}

func TestParseQubitMapping_MultiDigitLabel(t *testing.T) {
	layout, err := ParseQubitMapping(map[int]string{4: "QB12"})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{4: 11}, layout)
}

func TestParseQubitMapping_LabelWithoutDigits(t *testing.T) {
	_, err := ParseQubitMapping(map[int]string{0: "QB"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, `"QB"`)
}

func TestTranspileWithLayout_RemapsWithoutMutating(t *testing.T) {
	// GIVEN a circuit and the layout {0: 0, 1: 2}
	circ := &Circuit{
		Name:      "bell",
		NumQubits: 3,
		Instructions: []Instruction{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
		},
	}
	layout := map[int]int{0: 0, 1: 2}

	// WHEN the circuit is transpiled
	got := TranspileWithLayout(circ, layout)

	// THEN instructions are remapped and the original is untouched
	assert.Equal(t, []int{0}, got.Instructions[0].Qubits)
	assert.Equal(t, []int{0, 2}, got.Instructions[1].Qubits)
	assert.Equal(t, []int{0, 1}, circ.Instructions[1].Qubits)
}

func TestTranspileWithLayout_UnmappedIndicesPassThrough(t *testing.T) {
	circ := &Circuit{NumQubits: 3, Instructions: []Instruction{{Name: "cx", Qubits: []int{1, 2}}}}
	got := TranspileWithLayout(circ, map[int]int{1: 0})
	assert.Equal(t, []int{0, 2}, got.Instructions[0].Qubits)
}
