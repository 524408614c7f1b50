package main

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded SQL migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer db.Close()

		return migration.NewRunner(log.Named("migration")).Run(ctx, db.SQLDB())
	},
}
