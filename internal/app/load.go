package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/advent2023/internal/ctxlog"
	"github.com/specialistvlad/advent2023/internal/executor"
	"github.com/specialistvlad/advent2023/internal/manifest"
	"github.com/specialistvlad/advent2023/internal/registry"
)

// loadJobs turns the configured manifests into executor jobs.
func (a *App) loadJobs(ctx context.Context) ([]executor.Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifests...", "paths", a.config.ManifestPaths)

	m, err := manifest.Load(ctx, a.config.ManifestPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Info("Manifests loaded successfully.", "puzzles_found", len(m.Puzzles))

	jobs := make([]executor.Job, len(m.Puzzles))
	for i, p := range m.Puzzles {
		jobs[i] = executor.Job{
			Name:      p.Name,
			Key:       p.Key(),
			InputPath: p.Input,
			Expected:  p.Expected,
		}
	}
	return jobs, nil
}

// singleJob is the job for the day, part and input given on the command line.
func (a *App) singleJob() executor.Job {
	key := registry.Key{Day: a.config.Day, Part: a.config.Part}
	return executor.Job{
		Name:      key.String(),
		Key:       key,
		InputPath: a.config.InputPath,
	}
}
