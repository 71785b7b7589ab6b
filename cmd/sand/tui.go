package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"falling-sand/internal/app"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/tui"
)

func newTUICmd(resolve resolveFunc) *cobra.Command {
	var (
		fps     int
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Paint sand in the terminal",
		Long: `Run the sandbox in the terminal. Every character shows two pixels.

Controls:
  Mouse drag - Paint sand
  Space/P    - Pause
  N          - Single step
  R          - Reset
  +/-        - Gravity
  [/]        - Particle size
  Q/Ctrl+C   - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg, fps, logFile)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "redraw rate")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (the screen is in use)")
	return cmd
}

func runTUI(cfg *app.Config, fps int, logFile string) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := app.NewLogger(out, cfg.LogLevel)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sim := sand.New(cfg.Sand)
	logger.Info("tui", "terminal", []int{width, height}, "seed", cfg.Sand.Seed)
	return tui.Run(sim, tui.Options{TPS: cfg.TPS, FPS: fps, Width: width, Height: height}, logger)
}
