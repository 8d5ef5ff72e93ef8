// Package executor runs batches of puzzle jobs on a bounded pool of
// goroutines.
package executor

import (
	"context"
	"runtime"
	"time"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Job is one puzzle to solve.
type Job struct {
	Name      string
	Key       registry.Key
	InputPath string
	// Expected is nil when there is no answer to check against.
	Expected *string
}

// Result is the outcome of a Job.
type Result struct {
	Job      Job
	Answer   string
	Err      error
	Duration time.Duration
	// Verified is true when the answer matches Job.Expected.
	Verified bool
}

// Mismatch reports whether the job produced an answer other than the
// expected one.
func (r Result) Mismatch() bool {
	return r.Err == nil && r.Job.Expected != nil && !r.Verified
}

// Executor solves jobs with the solvers of a registry.
type Executor struct {
	registry *registry.Registry
	workers  int

	// FailFast cancels the jobs that have not started once any job fails.
	FailFast bool
}

// New creates an executor running at most workers jobs at a time. A
// non-positive count means one worker per CPU.
func New(reg *registry.Registry, workers int) *Executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Executor{registry: reg, workers: workers}
}

// Run solves every job and returns the results in job order. Failures of
// individual jobs are recorded on their results; the returned error is
// reserved for problems with the batch itself, such as a job naming an
// unregistered solver or ctx being cancelled.
func (e *Executor) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	keys := make([]registry.Key, len(jobs))
	for i, j := range jobs {
		keys[i] = j.Key
	}
	if err := e.registry.Validate(ctx, keys...); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Debug("Executor started.", "jobs", len(jobs), "workers", e.workers, "fail_fast", e.FailFast)
	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = e.runJob(runCtx, job)
			if results[i].Err != nil && e.FailFast {
				cancel()
			}
			return nil
		})
	}
	_ = g.Wait()
	logger.Debug("Executor finished.", "jobs", len(jobs))

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
