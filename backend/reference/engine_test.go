package reference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qpu-sim/qpu-sim/backend"
)

func bellCircuit() *backend.Circuit {
	return &backend.Circuit{
		Name:      "bell",
		NumQubits: 2,
		Instructions: []backend.Instruction{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
			{Name: "measure", Qubits: []int{0}},
			{Name: "measure", Qubits: []int{1}},
		},
	}
}

func TestEngine_BellStateCounts(t *testing.T) {
	e := New()
	job, err := e.RunCircuits([]*backend.Circuit{bellCircuit()}, backend.RunOptions{Shots: 300, Seed: 5})
	require.NoError(t, err)

	// reference jobs are complete the moment they are handed out
	assert.Equal(t, backend.JobDone, job.Status())

	res, err := job.Result(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	total := 0
	for outcome, n := range res.Results[0].Counts {
		assert.Contains(t, []string{"00", "11"}, outcome)
		total += n
	}
	assert.Equal(t, 300, total)
}

func TestEngine_DeterministicForSeed(t *testing.T) {
	e := New()
	run := func() map[string]int {
		job, err := e.RunCircuits([]*backend.Circuit{bellCircuit()}, backend.RunOptions{Shots: 100, Seed: 77})
		require.NoError(t, err)
		res, err := job.Result(context.Background())
		require.NoError(t, err)
		return res.Results[0].Counts
	}
	assert.Equal(t, run(), run())
}

func TestEngine_ErrorsSurfaceAtSubmission(t *testing.T) {
	// Unlike the asynchronous statevector engine, the reference engine runs
	// synchronously, so execution errors come straight back from RunCircuits.
	e := New()
	circ := &backend.Circuit{Name: "bad", NumQubits: 1, Instructions: []backend.Instruction{
		{Name: "frobnicate", Qubits: []int{0}},
	}}

	_, err := e.RunCircuits([]*backend.Circuit{circ}, backend.RunOptions{Shots: 1, Seed: 1})
	assert.ErrorContains(t, err, `unknown gate "frobnicate"`)
}

func TestEngine_EmptySubmissionRejected(t *testing.T) {
	e := New()
	_, err := e.RunCircuits(nil, backend.RunOptions{})
	assert.ErrorContains(t, err, "no circuits")
}

func TestEngine_XOnQubitZeroReadsRightmost(t *testing.T) {
	e := New()
	circ := &backend.Circuit{Name: "x0", NumQubits: 2, Instructions: []backend.Instruction{
		{Name: "x", Qubits: []int{0}},
	}}

	job, err := e.RunCircuits([]*backend.Circuit{circ}, backend.RunOptions{Shots: 12, Seed: 2})
	require.NoError(t, err)
	res, err := job.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"01": 12}, res.Results[0].Counts)
}

func TestEngine_CanceledContext(t *testing.T) {
	e := New()
	job, err := e.RunCircuits([]*backend.Circuit{bellCircuit()}, backend.RunOptions{Shots: 4, Seed: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = job.Result(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
