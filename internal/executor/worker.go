package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/input"
)

// runJob reads the job's input and calls its solver. A panicking solver is
// turned into an error so the rest of the batch keeps running.
func (e *Executor) runJob(ctx context.Context, job Job) (res Result) {
	res.Job = job
	logger := ctxlog.FromContext(ctx).With("puzzle", job.Name, "key", job.Key.String())
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := ctx.Err(); err != nil {
		logger.Debug("Skipping puzzle, run cancelled.")
		res.Err = err
		return res
	}

	text, err := input.ReadFile(job.InputPath)
	if err != nil {
		res.Err = err
		return res
	}

	solve, _ := e.registry.Lookup(job.Key)
	logger.Info("▶️ Solving puzzle.")
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("solver %s panicked: %v", job.Key, r)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			logger.Error("Puzzle failed.", "error", res.Err)
			return
		}
		if job.Expected != nil {
			res.Verified = res.Answer == *job.Expected
		}
		logger.Info("✅ Finished puzzle.", "duration", res.Duration, "verified", res.Verified)
	}()

	res.Answer, res.Err = solve(ctx, text)
	return res
}
