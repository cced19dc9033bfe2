package main

import (
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/repositories/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  `Creates the users, films, purchases and purchase_details tables when they do not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := postgres.NewRepositoryFactory(rt.cfg, rt.logger)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer factory.Close()

			if err := factory.InitSchema(cmd.Context()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			rt.logger.Info("database schema is up to date")
			return nil
		},
	}
}
