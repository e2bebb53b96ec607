package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/serieslab/internal/buildinfo"
	"github.com/aalvaropc/serieslab/internal/infra/config"
	"github.com/aalvaropc/serieslab/internal/infra/logger"
)

const configFile = "serieslab.yaml"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var noSave bool
	var format string

	cmd := &cobra.Command{
		Use:          "serieslab",
		Short:        "serieslab — Maclaurin convergence table for e^1.2",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := config.Load(filepath.Join(wd, configFile))
			if err != nil {
				return err
			}

			return runReport(cmd, wd, cfg, reportOptions{
				noSave: noSave,
				format: format,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .serieslab/logs/serieslab.log")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not save the report artifact under runs/")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return cmd
}
