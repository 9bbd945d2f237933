package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"pxworld/internal/render"
	"pxworld/internal/sims/sand"
)

type runOptions struct {
	ticks int
	show  bool
	cols  int
	plot  bool
}

func newRunCmd(world *worldOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step the world headless and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := world.world()
			if err != nil {
				return err
			}
			return runWorld(cmd.OutOrStdout(), w, opts)
		},
	}
	cmd.Flags().IntVar(&opts.ticks, "ticks", 50, "number of ticks to run")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print a terminal preview of the final frame")
	cmd.Flags().IntVar(&opts.cols, "cols", 80, "preview width in terminal columns")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot moved pixels per tick")
	return cmd
}

func runWorld(out io.Writer, w *sand.World, opts *runOptions) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", opts.ticks)
	}
	moved := make([]float64, 0, opts.ticks)
	settled := -1
	for i := 0; i < opts.ticks; i++ {
		w.Step()
		stats := w.LastStats()
		moved = append(moved, float64(stats.Moved))
		if stats.Moved == 0 && settled < 0 {
			settled = int(w.Tick())
		}
	}

	fmt.Fprintln(out, w)
	if settled >= 0 {
		fmt.Fprintf(out, "settled at tick %d\n", settled)
	}
	counts := w.Count()
	materials := make([]sand.Material, 0, len(counts))
	for m := range counts {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i] < materials[j] })
	for _, m := range materials {
		fmt.Fprintf(out, "  %-10s %d\n", m, counts[m])
	}

	if opts.plot && len(moved) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(moved,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("moved pixels per tick")))
	}
	if opts.show {
		fmt.Fprint(out, render.Terminal(render.Frame(w), opts.cols))
	}
	return nil
}
