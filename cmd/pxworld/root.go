package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxworld/internal/sims/sand"
)

// worldOptions are the flags shared by every command that builds a world.
type worldOptions struct {
	configFile string
	overrides  map[string]string
}

func newRootCmd() *cobra.Command {
	opts := &worldOptions{}
	root := &cobra.Command{
		Use:           "pxworld",
		Short:         "chunked falling-sand world",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "world config file (yaml)")
	root.PersistentFlags().StringToStringVar(&opts.overrides, "set", nil, "override config keys, e.g. --set w=128,h=128,seed=7")

	root.AddCommand(
		newRunCmd(opts),
		newSnapshotCmd(opts),
		newParamsCmd(opts),
		newConfigCmd(opts),
		newPlayCmd(opts),
	)
	return root
}

func (o *worldOptions) config() (sand.Config, error) {
	cfg := sand.DefaultConfig()
	if o.configFile != "" {
		loaded, err := sand.Load(o.configFile)
		if err != nil {
			return sand.Config{}, err
		}
		cfg = loaded
	}
	cfg = cfg.With(o.overrides)
	if err := cfg.Validate(); err != nil {
		return sand.Config{}, err
	}
	return cfg, nil
}

func (o *worldOptions) world() (*sand.World, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	w, err := sand.NewWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return w, nil
}
