package main

import (
	"github.com/spf13/cobra"

	"falling-sand/internal/headless"
	"falling-sand/internal/sims/sand"
)

func newRunCmd(resolve resolveFunc) *cobra.Command {
	opts := headless.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pour sand headlessly and report",
		Long: `Pour sand from a wandering spout for a number of ticks, then print the
final statistics and charts of the particle count and mean velocity.

Examples:
  sand run
  sand run --ticks 2000 --gravity 0.05
  sand run --config ./sand.yaml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHeadless(cmd, resolve, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Ticks, "ticks", opts.Ticks, "ticks to simulate")
	cmd.Flags().IntVar(&opts.PourTicks, "pour-ticks", opts.PourTicks, "ticks to keep pouring (0 = all)")
	cmd.Flags().IntVar(&opts.PourRow, "pour-row", opts.PourRow, "grid row the spout paints at")
	return cmd
}

func runHeadless(cmd *cobra.Command, resolve resolveFunc, opts headless.Options) error {
	cfg, logger, err := loadConfig(cmd, resolve)
	if err != nil {
		return err
	}
	sim := sand.New(cfg.Sand)
	logger.Info("run", "grid", sim.Size(), "gravity", cfg.Sand.Gravity, "seed", cfg.Sand.Seed, "ticks", opts.Ticks)

	res, err := headless.Run(cmd.Context(), sim, opts)
	if err != nil {
		return err
	}
	logger.Info("done", "particles", res.Final.Particles, "painted", res.Painted, "elapsed", res.Elapsed)
	return headless.WriteReport(cmd.OutOrStdout(), res)
}
