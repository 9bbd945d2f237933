package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pxworld/internal/sims/sand"
)

func newParamsCmd(world *worldOptions) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "params",
		Short: "print the world parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := world.world()
			if err != nil {
				return err
			}
			snap := w.Parameters()
			if asYAML {
				data, err := yaml.Marshal(snap)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, g := range snap.Groups {
				fmt.Fprintf(tw, "%s\n", g.Name)
				for _, p := range g.Params {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as yaml")
	return cmd
}

func newConfigCmd(world *worldOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "write the effective world config as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := world.config()
			if err != nil {
				return err
			}
			if out == "" {
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return sand.Save(out, cfg)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}
