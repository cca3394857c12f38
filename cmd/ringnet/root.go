// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringnet/config"
	"github.com/katalvlaran/ringnet/graphio"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "ringnet",
		Short:         "Build ring networks from multi-dimensional tables",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "ringnet.yaml", "path to the YAML configuration")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override: debug, info, warn or error")

	cmd.AddCommand(newBuildCommand(&flags), newStatsCommand(&flags))

	return cmd
}

// newLogger returns a logfmt logger on w filtered at lvl.
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "", "info":
		opt = level.AllowInfo()
	case "warn", "warning":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	return logger, nil
}

// setup loads the configuration and the logger for a subcommand run.
// The --log-level flag wins over the file value.
func setup(cmd *cobra.Command, flags *rootFlags) (config.Config, log.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger, nil
}

// loadDataset reads the CSV table named by cfg.
func loadDataset(cfg config.Config, logger log.Logger) (*graphio.Dataset, error) {
	f, err := os.Open(cfg.Input.Path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ds, err := graphio.ReadMatrixCSV(f, graphio.CSVOptions{
		Columns:     cfg.Columns(),
		LabelColumn: cfg.Input.LabelColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.Input.Path, err)
	}
	level.Debug(logger).Log("msg", "loaded table", "path", cfg.Input.Path, "rows", ds.Matrix.Rows(), "dimensions", ds.Matrix.Cols())

	return ds, nil
}

// createOrStdout opens path for writing, or returns stdout for an empty path.
func createOrStdout(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
