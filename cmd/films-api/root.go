package main

import (
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/config"
	"github.com/SebasDosman/vortex-bird-test/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runtime carries what every subcommand needs once the root has loaded it
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}
	var logLevel string

	root := &cobra.Command{
		Use:   "films-api",
		Short: "Films ticket backend",
		Long: `films-api serves the films ticket HTTP API: account sign-in and sign-up,
the film catalogue and ticket purchases.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if logLevel != "" {
				cfg.Observability.LogLevel = logLevel
			}

			logger, err := observability.NewLogger(cfg.Observability)
			if err != nil {
				return err
			}

			rt.cfg = cfg
			rt.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (env: LOG_LEVEL)")

	root.AddCommand(newServeCmd(rt))
	root.AddCommand(newMigrateCmd(rt))
	return root
}
