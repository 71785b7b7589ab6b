// sand is a falling-sand sandbox.
//
// Usage:
//
//	sand gui                 - Paint sand in a window (build with -tags ebiten)
//	sand tui                 - Paint sand in the terminal
//	sand run                 - Pour sand headlessly and chart the result
//	sand sweep               - Compare headless runs over several gravities
//	sand list                - List registered simulations
//
// Global flags:
//
//	--config <path>   - YAML file with base settings
//	--log-level <lvl> - debug, info, warn or error
//	--gravity, --cell-size, --seed, ... override the file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"falling-sand/internal/app"
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "sand",
		Short: "Falling-sand sandbox",
		Long: `Paint coloured sand and watch it fall.

Particles fall under accumulating gravity and slide diagonally when blocked.
Run it in a window, in the terminal, or headless for measurements.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	app.NewConfig().Bind(root.PersistentFlags())

	resolve := func(cmd *cobra.Command) (*app.Config, error) {
		return app.Resolve(cmd.Flags(), configPath)
	}
	root.AddCommand(newRunCmd(resolve))
	root.AddCommand(newSweepCmd(resolve))
	root.AddCommand(newTUICmd(resolve))
	root.AddCommand(newGUICmd(resolve))
	root.AddCommand(newListCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveFunc resolves defaults, the config file and command-line flags for
// the command being run.
type resolveFunc func(cmd *cobra.Command) (*app.Config, error)

// loadConfig resolves the configuration and builds the logger it asks for.
func loadConfig(cmd *cobra.Command, resolve resolveFunc) (*app.Config, *log.Logger, error) {
	cfg, err := resolve(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
