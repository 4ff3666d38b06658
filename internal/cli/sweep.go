package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/config"
	"github.com/katalvlaran/mstgen/graphio"
	"github.com/katalvlaran/mstgen/sweep"
)

func (c *CLI) sweepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate a grid of graphs over sizes and densities",
		Long: `Sweep generates one graph per (size, density) pair into --dir, named
random_<size>_<density>.txt, and records the run in manifest.json.

A failing configuration is logged and skipped unless --fail-fast is set;
the command still exits non-zero if any configuration failed.`,
		Example: `  mstgen sweep --sizes 10,100,1000 --densities 0.1,0.5,1 --dir graphs/random
  mstgen sweep --config bench.toml --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runSweep(cmd.Context(), cfg)
		},
	}

	d := config.Defaults()
	f := cmd.Flags()
	f.String("dir", d.Dir, "output directory")
	f.StringSlice("sizes", formatSizes(d.Sizes), "vertex counts")
	f.StringSlice("densities", formatDensities(d.Densities), "edge densities in [0, 1]")
	f.IntP("workers", "j", d.Workers, "parallel configurations (0 = GOMAXPROCS)")
	f.Bool("fail-fast", d.FailFast, "abort on the first failing configuration")
	f.Bool("verify", d.Verify, "check every graph before writing it")
	addSharedFlags(f)

	return cmd
}

func runSweep(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	grid := cfg.Grid()
	logger.Info("sweep", "configurations", len(grid.Jobs()), "dir", cfg.Dir, "seed", cfg.Seed)

	r := &sweep.Runner{
		Dir:      cfg.Dir,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		FailFast: cfg.FailFast,
		Verify:   cfg.Verify,
		Options:  cfg.BuilderOptions(false),
		Logger:   logger,
	}
	m, err := r.Run(ctx, grid)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Swept %d configurations into %s", len(m.Entries), cfg.Dir))
	if n := m.Failed(); n > 0 {
		return fmt.Errorf("%d of %d configurations failed (see %s)",
			n, len(m.Entries), filepath.Join(cfg.Dir, sweep.ManifestName))
	}

	return nil
}

func formatSizes(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = strconv.Itoa(n)
	}
	return out
}

func formatDensities(ds []float64) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = graphio.FormatDensity(d)
	}
	return out
}
