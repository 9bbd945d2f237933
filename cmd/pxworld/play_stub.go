//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPlayCmd(_ *worldOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "open the interactive window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the window requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/pxworld`")
		},
	}
}
