package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"pxworld/internal/render"
)

func newSnapshotCmd(world *worldOptions) *cobra.Command {
	var (
		ticks int
		out   string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "step the world and write the frame as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := world.world()
			if err != nil {
				return err
			}
			for i := 0; i < ticks; i++ {
				w.Step()
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
			defer f.Close()
			if err := png.Encode(f, render.Frame(w)); err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s at tick %d\n", out, w.Tick())
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 50, "number of ticks to run before capturing")
	cmd.Flags().StringVar(&out, "out", "world.png", "output file")
	return cmd
}
