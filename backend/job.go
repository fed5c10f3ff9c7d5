package backend

import (
	"context"
	"sync"
)

// JobStatus is the coarse lifecycle state of a submitted job.
type JobStatus string

const (
	JobInitializing JobStatus = "INITIALIZING"
	JobRunning      JobStatus = "RUNNING"
	JobDone         JobStatus = "DONE"
	JobError        JobStatus = "ERROR"
)

// Job is the asynchronous handle a backend returns from Run. Cancellation
// and timeout behavior beyond ctx on Result is whatever the producing engine
// provides; the fake backends add none of their own.
type Job interface {
	ID() string
	Status() JobStatus
	Result(ctx context.Context) (*Result, error)
}

// ExperimentResult holds the measurement outcome of one circuit or schedule.
type ExperimentResult struct {
	Name   string         `json:"name"`
	Shots  int            `json:"shots"`
	Counts map[string]int `json:"counts"`
}

// Result is the completed output of a job.
type Result struct {
	BackendName    string             `json:"backend_name"`
	BackendVersion string             `json:"backend_version"`
	JobID          string             `json:"job_id"`
	Success        bool               `json:"success"`
	Results        []ExperimentResult `json:"results"`
}

// LegacyJob satisfies the legacy job-polling interface. It either wraps a
// live engine job (full-featured path) or holds a deferred run function
// (fallback path) that executes at most once, synchronously, on the first
// Result call.
type LegacyJob struct {
	id    string
	inner Job

	mu     sync.Mutex
	status JobStatus
	once   sync.Once
	run    func() (*Result, error)
	res    *Result
	err    error
}

// wrapLegacyJob wraps a live engine job.
func wrapLegacyJob(inner Job) *LegacyJob {
	return &LegacyJob{id: inner.ID(), inner: inner}
}

// newDeferredLegacyJob builds a job whose run function is not invoked until
// the first Result call.
func newDeferredLegacyJob(id string, run func() (*Result, error)) *LegacyJob {
	return &LegacyJob{id: id, status: JobInitializing, run: run}
}

func (j *LegacyJob) ID() string { return j.id }

func (j *LegacyJob) Status() JobStatus {
	if j.inner != nil {
		return j.inner.Status()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Result blocks until the job completes. On the deferred path the simulation
// runs here, on the calling goroutine, the first time any caller asks.
func (j *LegacyJob) Result(ctx context.Context) (*Result, error) {
	if j.inner != nil {
		return j.inner.Result(ctx)
	}
	j.once.Do(func() {
		j.mu.Lock()
		j.status = JobRunning
		j.mu.Unlock()

		res, err := j.run()

		j.mu.Lock()
		j.res, j.err = res, err
		if err != nil {
			j.status = JobError
		} else {
			j.status = JobDone
		}
		j.mu.Unlock()
	})
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.res, j.err
}
