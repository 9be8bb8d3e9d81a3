package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/ats-screener/internal/config"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users and history tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.InitDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return config.Migrate(cmd.Context(), db)
		},
	}
}
