// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringnet/lattice"
)

func newStatsCommand(root *rootFlags) *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node and edge counts of the expanded lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			o.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ds, err := loadDataset(cfg, logger)
			if err != nil {
				return err
			}
			g, err := lattice.Build(ds.Matrix, cfg.Weights(), cfg.WindowSize,
				lattice.WithWorkers(cfg.Workers),
				lattice.WithContext(cmd.Context()),
				lattice.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			return g.Stats().WriteTable(cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&o.window, "window", 0, "window size override")
	fs.IntVar(&o.workers, "workers", 1, "dimensions processed concurrently")

	return cmd
}
