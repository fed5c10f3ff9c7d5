package statevector

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/qpu-sim/qpu-sim/backend"
)

// job is the asynchronous handle RunCircuits and RunSchedules return.
type job struct {
	id   string
	done chan struct{}

	mu     sync.Mutex
	status backend.JobStatus
	res    *backend.Result
	err    error
}

func newJob() *job {
	return &job{id: uuid.NewString(), done: make(chan struct{}), status: backend.JobRunning}
}

// complete runs the work function and publishes its outcome. Called exactly
// once, on the job's own goroutine.
func (j *job) complete(run func() (*backend.Result, error)) {
	res, err := run()
	j.mu.Lock()
	if err != nil {
		j.status = backend.JobError
	} else {
		j.status = backend.JobDone
		res.JobID = j.id
	}
	j.res, j.err = res, err
	j.mu.Unlock()
	close(j.done)
}

func (j *job) ID() string { return j.id }

func (j *job) Status() backend.JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Result blocks until the job finishes or ctx is done.
func (j *job) Result(ctx context.Context) (*backend.Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-j.done:
		j.mu.Lock()
		defer j.mu.Unlock()
		return j.res, j.err
	}
}
