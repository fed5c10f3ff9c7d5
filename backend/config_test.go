package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_TestdataDevice(t *testing.T) {
	cfg, err := LoadConfiguration(filepath.Join("..", "testdata", "fake_athens.yaml"))
	require.NoError(t, err)

	assert.Equal(t, testConfig(), cfg)
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfiguration_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend_name: [unclosed"), 0o644))

	_, err := LoadConfiguration(path)
	assert.ErrorContains(t, err, "parsing backend config")
}

func TestConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr string
	}{
		{"valid", func(c *Configuration) {}, ""},
		{"no name", func(c *Configuration) { c.BackendName = "" }, "no backend_name"},
		{"zero qubits", func(c *Configuration) { c.NumQubits = 0 }, "n_qubits must be positive"},
		{"no basis gates", func(c *Configuration) { c.BasisGates = nil }, "basis_gates is empty"},
		{"coupling out of range", func(c *Configuration) { c.CouplingMap = [][2]int{{0, 5}} }, "out of range"},
		{"negative coupling index", func(c *Configuration) { c.CouplingMap = [][2]int{{-1, 0}} }, "out of range"},
		{"self-loop", func(c *Configuration) { c.CouplingMap = [][2]int{{2, 2}} }, "self-loop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfiguration_CouplingQubits(t *testing.T) {
	// GIVEN a coupling map that revisits qubits out of order
	cfg := testConfig()
	cfg.CouplingMap = [][2]int{{3, 1}, {1, 0}, {3, 0}}

	// WHEN the distinct qubits are computed
	got := cfg.CouplingQubits()

	// THEN the list is sorted and free of duplicates
	assert.Equal(t, []int{0, 1, 3}, got)
}

func TestConfiguration_CouplingQubits_EmptyMap(t *testing.T) {
	cfg := testConfig()
	cfg.CouplingMap = nil
	assert.Empty(t, cfg.CouplingQubits())
}

func TestConfiguration_SupportsGate(t *testing.T) {
	cfg := testConfig()
	assert.True(t, cfg.SupportsGate("cx"))
	assert.True(t, cfg.SupportsGate("u2"))
	// measure is implicitly supported by every device
	assert.True(t, cfg.SupportsGate("measure"))
	assert.False(t, cfg.SupportsGate("rzz"))
}
