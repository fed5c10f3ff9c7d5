// Package testutil provides shared test infrastructure for the fake
// backends. It holds the golden properties-document types and loader used by
// backend/ tests. The types mirror backend.Properties instead of importing
// it so that package backend's internal tests can use this package without
// an import cycle.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenParameter mirrors one calibration record of the golden document.
type GoldenParameter struct {
	Date  string  `json:"date"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// GoldenGate mirrors one gate record of the golden document.
type GoldenGate struct {
	Gate       string            `json:"gate"`
	Name       string            `json:"name"`
	Parameters []GoldenParameter `json:"parameters"`
	Qubits     []int             `json:"qubits"`
}

// GoldenProperties mirrors the expected properties document for the
// testdata device.
type GoldenProperties struct {
	BackendName    string              `json:"backend_name"`
	BackendVersion string              `json:"backend_version"`
	LastUpdateDate string              `json:"last_update_date"`
	Qubits         [][]GoldenParameter `json:"qubits"`
	Gates          []GoldenGate        `json:"gates"`
	General        []GoldenParameter   `json:"general"`
}

// LoadGoldenProperties loads the golden document from the testdata
// directory. The path is resolved relative to this source file:
// backend/internal/testutil/ → testdata/.
func LoadGoldenProperties(t *testing.T) *GoldenProperties {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_properties.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden properties: %v", err)
	}

	var props GoldenProperties
	if err := json.Unmarshal(data, &props); err != nil {
		t.Fatalf("Failed to parse golden properties: %v", err)
	}
	return &props
}
