package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"falling-sand/internal/headless"
)

var defaultGravities = []float64{0, 0.005, 0.01, 0.02, 0.05, 0.1}

func newSweepCmd(resolve resolveFunc) *cobra.Command {
	var (
		opts      = headless.DefaultOptions()
		gravities []float64
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run headless pours over several gravity values",
		Long: `Run one independent headless pour per gravity value on a pool of worker
goroutines and compare the final statistics.

Examples:
  sand sweep
  sand sweep --gravities 0,0.01,0.1 --ticks 1000 --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd, resolve)
			if err != nil {
				return err
			}
			logger.Info("sweep", "runs", len(gravities), "workers", workers, "ticks", opts.Ticks)

			results, err := headless.Sweep(cmd.Context(), cfg.Sand, gravities, opts, workers)
			if err != nil {
				return err
			}
			return headless.WriteSweep(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().Float64SliceVar(&gravities, "gravities", defaultGravities, "gravity values to compare")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", opts.Ticks, "ticks to simulate per run")
	cmd.Flags().IntVar(&opts.PourTicks, "pour-ticks", opts.PourTicks, "ticks to keep pouring (0 = all)")
	return cmd
}
