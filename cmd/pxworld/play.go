//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"pxworld/internal/app"
)

func newPlayCmd(world *worldOptions) *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "play",
		Short: "open the interactive window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := world.world()
			if err != nil {
				return err
			}
			game, err := app.New(w, cfg)
			if err != nil {
				return err
			}
			size := w.Size()
			ebiten.SetWindowTitle("pxworld")
			ebiten.SetTPS(60)
			ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
