package backend

import "context"

// testConfig returns a 5-qubit linear device matching testdata/fake_athens.yaml.
func testConfig() *Configuration {
	return &Configuration{
		BackendName:    "fake_athens",
		BackendVersion: "1.0.0",
		NumQubits:      5,
		BasisGates:     []string{"id", "u1", "u2", "u3", "cx"},
		CouplingMap:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		Simulator:      true,
		Local:          true,
		MaxShots:       8192,
	}
}

// stubJob is a pre-completed job handle for engine test doubles.
type stubJob struct {
	id  string
	res *Result
}

func (j *stubJob) ID() string { return j.id }

func (j *stubJob) Status() JobStatus { return JobDone }

func (j *stubJob) Result(ctx context.Context) (*Result, error) {
	return j.res, nil
}

// recordingEngine is an Engine test double that records the last submission.
type recordingEngine struct {
	name          string
	circuitCalls  int
	lastCircuits  []*Circuit
	lastOpts      RunOptions
	scheduleCalls int
	lastSchedules []*Schedule
	lastModel     *SystemModel
}

func (e *recordingEngine) Name() string { return e.name }

func (e *recordingEngine) DefaultOptions() RunOptions {
	return RunOptions{Shots: 1024, Seed: 42}
}

func (e *recordingEngine) RunCircuits(circuits []*Circuit, opts RunOptions) (Job, error) {
	e.circuitCalls++
	e.lastCircuits = circuits
	e.lastOpts = opts
	return &stubJob{id: "stub-" + e.name, res: &Result{BackendName: e.name, Success: true}}, nil
}

// recordingPulseEngine extends recordingEngine with schedule support.
type recordingPulseEngine struct {
	recordingEngine
}

func (e *recordingPulseEngine) RunSchedules(schedules []*Schedule, model *SystemModel, opts RunOptions) (Job, error) {
	e.scheduleCalls++
	e.lastSchedules = schedules
	e.lastModel = model
	e.lastOpts = opts
	return &stubJob{id: "stub-pulse-" + e.name, res: &Result{BackendName: e.name, Success: true}}, nil
}

func advancedOnly() (*recordingPulseEngine, Engines) {
	adv := &recordingPulseEngine{recordingEngine{name: "advanced"}}
	return adv, Engines{Advanced: adv}
}

func referenceOnly() (*recordingEngine, Engines) {
	ref := &recordingEngine{name: "reference"}
	return ref, Engines{Reference: ref}
}
