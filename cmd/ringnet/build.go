// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringnet"
	"github.com/katalvlaran/ringnet/config"
	"github.com/katalvlaran/ringnet/graphio"
	"github.com/katalvlaran/ringnet/ring"
)

// overrides holds flag values that replace configuration fields when set.
type overrides struct {
	window    float64
	workers   int
	out       string
	format    string
	partition string
}

// apply copies every flag the user changed onto cfg.
func (o overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("window") {
		cfg.WindowSize = o.window
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}
	if fs.Changed("out") {
		cfg.Output.Graph = o.out
	}
	if fs.Changed("format") {
		cfg.Output.Format = o.format
	}
	if fs.Changed("partition") {
		cfg.Output.Partition = o.partition
	}
}

func newBuildCommand(root *rootFlags) *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the reduced ring network and write it out",
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
			rg, err := ringnet.ConstructNet(ds.Matrix, cfg.Weights(), cfg.WindowSize,
				ringnet.WithWorkers(cfg.Workers),
				ringnet.WithContext(cmd.Context()),
				ringnet.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			if err := writeGraph(cmd, cfg, rg, ds.Labels); err != nil {
				return fmt.Errorf("write graph: %w", err)
			}
			if cfg.Output.Partition != "" {
				if err := writePartition(cmd, cfg.Output.Partition, rg, ds.Labels); err != nil {
					return fmt.Errorf("write partition: %w", err)
				}
			}
			level.Info(logger).Log("msg", "done", "graph", outName(cfg.Output.Graph), "format", cfg.Output.Format)

			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&o.window, "window", 0, "window size override")
	fs.IntVar(&o.workers, "workers", 1, "dimensions processed concurrently")
	fs.StringVarP(&o.out, "out", "o", "", "graph output path, empty or - for stdout")
	fs.StringVar(&o.format, "format", config.FormatJSON, "graph output format: json or csv")
	fs.StringVar(&o.partition, "partition", "", "optional component partition CSV path")

	return cmd
}

func writeGraph(cmd *cobra.Command, cfg config.Config, rg *ring.ReducedGraph, labels []string) (err error) {
	w, closeFn, err := createOrStdout(cmd, cfg.Output.Graph)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	if cfg.Output.Format == config.FormatCSV {
		return graphio.WriteEdgeListCSV(w, rg)
	}

	return graphio.WriteJSON(w, rg, labels)
}

func writePartition(cmd *cobra.Command, path string, rg *ring.ReducedGraph, labels []string) (err error) {
	w, closeFn, err := createOrStdout(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	return graphio.WritePartitionCSV(w, rg.Components(), labels)
}

func outName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}

	return path
}
