package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/executor"
)

// ErrPuzzlesFailed is returned when a batch run had failing or mismatching
// puzzles. Every result is printed before it is returned.
var ErrPuzzlesFailed = errors.New("puzzles failed")

// Run executes the main application logic based on the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.logger.Debug("App.Run method finished.")

	switch a.config.Mode() {
	case ModeList:
		return a.list()
	case ModeManifest:
		return a.runManifest(ctx)
	default:
		return a.runSingle(ctx)
	}
}

func (a *App) list() error {
	for _, k := range a.registry.Keys() {
		if _, err := fmt.Fprintln(a.outW, k); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runSingle(ctx context.Context) error {
	results, err := executor.New(a.registry, 1).Run(ctx, []executor.Job{a.singleJob()})
	if err != nil {
		return err
	}
	res := results[0]
	if res.Err != nil {
		return res.Err
	}
	_, err = fmt.Fprintf(a.outW, "Result: %s\n", res.Answer)
	return err
}

func (a *App) runManifest(ctx context.Context) error {
	jobs, err := a.loadJobs(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Starting concurrent execution...", "puzzles", len(jobs))
	exec := executor.New(a.registry, a.config.WorkerCount)
	exec.FailFast = a.config.FailFast
	results, err := exec.Run(ctx, jobs)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.")

	failed, mismatched := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else if res.Mismatch() {
			mismatched++
		}
		if _, err := fmt.Fprintln(a.outW, formatResult(res)); err != nil {
			return err
		}
	}
	if failed > 0 || mismatched > 0 {
		return fmt.Errorf("%w: %d failed, %d mismatched of %d", ErrPuzzlesFailed, failed, mismatched, len(results))
	}
	return nil
}

// formatResult renders one line of the batch report.
func formatResult(res executor.Result) string {
	var verdict string
	switch {
	case res.Err != nil:
		verdict = "ERROR " + res.Err.Error()
	case res.Mismatch():
		verdict = fmt.Sprintf("MISMATCH want %s", *res.Job.Expected)
	case res.Verified:
		verdict = "OK"
	default:
		verdict = "UNCHECKED"
	}
	return fmt.Sprintf("%-24s %s  %-20s %s", res.Job.Name, res.Job.Key, res.Answer, verdict)
}
