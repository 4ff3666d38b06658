package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/graphio"
	"github.com/katalvlaran/mstgen/verify"
)

// Runner executes sweeps.
type Runner struct {
	// Dir receives the graph files and the manifest; created if missing.
	Dir string
	// Workers bounds parallel configurations; < 1 means GOMAXPROCS.
	Workers int
	// Seed makes the sweep reproducible; 0 means unseeded.
	Seed int64
	// FailFast aborts the sweep on the first failing configuration.
	FailFast bool
	// Verify re-checks every graph with verify.Check before writing it.
	Verify bool
	// Options are passed to builder.Generate for every configuration.
	// They must not include WithRand: a *rand.Rand cannot be shared.
	Options []builder.BuilderOption
	// Logger receives progress; nil means log.Default().
	Logger *log.Logger
}

// Run generates every configuration of grid and writes the manifest.
func (r *Runner) Run(ctx context.Context, grid Grid) (*Manifest, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("sweep: create %s: %w", r.Dir, err)
	}

	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := r.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := grid.Jobs()
	entries := make([]Entry, len(jobs))
	start := time.Now()
	logger.Info("Starting sweep", "configurations", len(jobs), "workers", workers, "dir", r.Dir)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			entry, err := r.runJob(job, logger)
			entries[i] = entry
			if err == nil {
				return nil
			}
			if r.FailFast {
				return fmt.Errorf("sweep: %s: %w", job, err)
			}
			logger.Warn("Skipping configuration", "size", job.Size, "density", job.Density, "err", err)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	m := &Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Seed:    r.Seed,
		Entries: entries,
	}
	if err := WriteManifest(r.Dir, m); err != nil {
		return nil, err
	}

	logger.Info("Sweep finished",
		"run_id", m.RunID,
		"written", len(entries)-m.Failed(),
		"failed", m.Failed(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return m, nil
}

// runJob generates, optionally verifies, and writes one configuration.
func (r *Runner) runJob(job Job, logger *log.Logger) (Entry, error) {
	entry := Entry{
		Path:     graphio.FileName(job.Size, job.Density),
		Vertices: job.Size,
		Density:  job.Density,
	}

	opts := slices.Clone(r.Options)
	if r.Seed != 0 {
		entry.Seed = jobSeed(r.Seed, job)
		opts = append(opts, builder.WithSeed(entry.Seed))
	}

	start := time.Now()
	g, err := builder.Generate(job.Size, job.Density, opts...)
	if err == nil && r.Verify {
		err = verify.Check(g)
	}
	if err == nil {
		err = graphio.WriteFile(filepath.Join(r.Dir, entry.Path), g)
	}
	if err != nil {
		entry.Error = err.Error()
		return entry, err
	}

	d := graphio.NewDiagnostics(g)
	entry.Edges = d.Edges
	entry.AchievedDensity = d.Achieved
	entry.ElapsedMS = float64(time.Since(start).Microseconds()) / 1000

	logger.Debug("Generated graph",
		"file", entry.Path,
		"edges", d.Edges,
		"requested_density", d.Requested,
		"achieved_density", d.Achieved)

	return entry, nil
}
