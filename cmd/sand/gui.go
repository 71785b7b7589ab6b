//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"falling-sand/internal/app"
	"falling-sand/internal/sims/sand"
)

func newGUICmd(resolve resolveFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Paint sand in a window",
		Long: `Open the sandbox window with the control panel on the right.

Controls:
  Left mouse - Paint sand
  Space      - Pause
  N          - Single step
  R          - Reset
  S          - Reset with a fresh seed
  1          - Toggle stats overlay
  Q/Esc      - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd, resolve)
		},
	}
}

func runGUI(cmd *cobra.Command, resolve resolveFunc) error {
	cfg, logger, err := loadConfig(cmd, resolve)
	if err != nil {
		return err
	}
	sim := sand.New(cfg.Sand)
	game := app.New(sim, cfg, logger)

	ebiten.SetWindowTitle("falling sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Sand.ViewportW+cfg.HUDWidth, cfg.Sand.ViewportH)
	logger.Info("gui", "grid", sim.Size(), "tps", cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
