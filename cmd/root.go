package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qpu-sim/qpu-sim/backend"

	// Engine registration. Dropping the statevector import degrades every
	// backend to the reference engine, which is how the fallback tier is
	// exercised from a real binary.
	_ "github.com/qpu-sim/qpu-sim/backend/reference"
	_ "github.com/qpu-sim/qpu-sim/backend/statevector"
)

var (
	// CLI flags shared by the subcommands
	configPath   string   // Path to the backend configuration YAML
	circuitPath  string   // Path to the circuit YAML
	shots        int      // Measurement repetitions (0 = engine default)
	seed         int64    // Sampling seed (0 = engine default)
	logLevel     string   // Log verbosity level
	qubitMapping []string // virtual=QB<n> entries, e.g. 0=QB1
	legacy       bool     // Submit through the legacy facade
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "qpu-sim",
	Short: "Fake quantum backends for testing job-submitting harnesses",
}

// runCmd builds a fake backend from a configuration file, submits one
// circuit, and prints the measurement counts.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a circuit on a fake backend",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := backend.LoadConfiguration(configPath)
		if err != nil {
			logrus.Fatalf("Loading backend config: %v", err)
		}
		circ, err := backend.LoadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Loading circuit: %v", err)
		}
		mapping, err := parseMappingFlags(qubitMapping)
		if err != nil {
			logrus.Fatalf("Parsing qubit mapping: %v", err)
		}

		var job backend.Job
		if legacy {
			if len(mapping) > 0 {
				logrus.Warnf("qubit mapping is ignored by the legacy facade")
			}
			b := backend.NewFakeLegacyBackend(cfg)
			job, err = b.Run(&backend.Qobj{
				Type:     backend.QobjQASM,
				Shots:    shots,
				Seed:     seed,
				Circuits: []*backend.Circuit{circ},
			})
		} else {
			b := backend.NewFakeBackend(cfg)
			job, err = b.Run(circ, backend.RunOptions{Shots: shots, Seed: seed, QubitMapping: mapping})
		}
		if err != nil {
			logrus.Fatalf("Submitting job: %v", err)
		}

		res, err := job.Result(context.Background())
		if err != nil {
			logrus.Fatalf("Job %s failed: %v", job.ID(), err)
		}
		printResult(res)
	},
}

// propertiesCmd prints the synthesized calibration document as JSON.
var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Print the backend's synthesized properties document",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := backend.LoadConfiguration(configPath)
		if err != nil {
			logrus.Fatalf("Loading backend config: %v", err)
		}
		props := backend.NewFakeBackend(cfg).Properties()
		data, err := json.MarshalIndent(props, "", "  ")
		if err != nil {
			logrus.Fatalf("Encoding properties: %v", err)
		}
		fmt.Println(string(data))
	},
}

// parseMappingFlags parses repeated virtual=label entries like "0=QB1" into
// the mapping RunOptions carries.
func parseMappingFlags(entries []string) (map[int]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	mapping := make(map[int]string, len(entries))
	for _, entry := range entries {
		virtual, label, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("mapping entry %q is not of the form virtual=QB<n>", entry)
		}
		v, err := strconv.Atoi(strings.TrimSpace(virtual))
		if err != nil {
			return nil, fmt.Errorf("mapping entry %q: %w", entry, err)
		}
		mapping[v] = strings.TrimSpace(label)
	}
	return mapping, nil
}

func printResult(res *backend.Result) {
	fmt.Printf("job %s on %s\n", res.JobID, res.BackendName)
	for _, exp := range res.Results {
		fmt.Printf("%s (%d shots):\n", exp.Name, exp.Shots)
		outcomes := make([]string, 0, len(exp.Counts))
		for outcome := range exp.Counts {
			outcomes = append(outcomes, outcome)
		}
		sort.Strings(outcomes)
		for _, outcome := range outcomes {
			fmt.Printf("  %s: %d\n", outcome, exp.Counts[outcome])
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to the backend configuration YAML")
	runCmd.Flags().StringVar(&circuitPath, "circuit", "", "Path to the circuit YAML")
	runCmd.Flags().IntVar(&shots, "shots", 0, "Measurement repetitions (0 = engine default)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Sampling seed (0 = engine default)")
	runCmd.Flags().StringVar(&logLevel, "log", "warning", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringSliceVar(&qubitMapping, "qubit-mapping", nil, "Virtual-to-device qubit mapping entries, e.g. 0=QB1,1=QB3")
	runCmd.Flags().BoolVar(&legacy, "legacy", false, "Submit through the legacy facade")

	propertiesCmd.Flags().StringVar(&configPath, "config", "", "Path to the backend configuration YAML")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(propertiesCmd)
}
