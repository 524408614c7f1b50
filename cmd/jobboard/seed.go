package main

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo employers, postings and seekers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer db.Close()

		if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
			if err := migration.NewRunner(log.Named("migration")).Run(ctx, db.SQLDB()); err != nil {
				return err
			}
		}

		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: log.Named("seeder")}
		if err := r.Run(ctx, db); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Demo data ready"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Seeker with skills:"), seeder.DemoSeekerUserID)
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Seeker without skills:"), seeder.DemoBlankSeekerUserID)
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("migrate", false, "apply migrations before seeding")
}
