package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/database/migration"
	"jobboard/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := app.NewContainer(cfg, log)
		if err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		defer func() {
			if err := container.Close(); err != nil {
				log.Warn("cleanup error", zap.Error(err))
			}
		}()

		if cfg.Database.AutoMigrate {
			if err := migration.NewRunner(log.Named("migration")).Run(cmd.Context(), container.DB.SQLDB()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		if cfg.Database.RunSeeders {
			r := seeder.Runner{Seeders: seeder.Defaults(), Logger: log.Named("seeder")}
			if err := r.Run(cmd.Context(), container.DB); err != nil {
				return err
			}
		}

		addr, err := app.ListenAddr(cfg.App.HTTPPort)
		if err != nil {
			return fmt.Errorf("invalid HTTP port: %w", err)
		}

		server := app.Bootstrap(container)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Fiber.Listen(addr)
		}()
		log.Info("http server started", zap.String("addr", addr), zap.String("env", cfg.App.Environment))

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		case sig := <-sigCh:
			log.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Fiber.ShutdownWithContext(ctx); err != nil {
				log.Error("shutdown error", zap.Error(err))
			}
		}
		return nil
	},
}
