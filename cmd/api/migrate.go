package main

import (
	"errors"

	pg "dairy-records/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes en DB_DSN",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.DBDSN == "" {
			return errors.New("DB_DSN is required")
		}
		return pg.Migrate(cmd.Context(), cfg.DBDSN, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
