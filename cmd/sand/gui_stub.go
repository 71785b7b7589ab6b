//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newGUICmd(resolveFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Paint sand in a window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("the window build requires the ebiten tag: go run -tags ebiten ./cmd/sand gui")
		},
	}
}
