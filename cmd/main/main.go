package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/container"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Probagno bathroom furniture storefront",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront and admin HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, app *container.Container) error {
			return app.Run(ctx)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import products from the legacy shop listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, app *container.Container) error {
			count, err := app.Import(ctx)
			if err != nil {
				return err
			}
			log.Infof("📦 Imported %d products", count)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in sample catalog to the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, app *container.Container) error {
			count, err := app.Catalog.Seed(ctx)
			if err != nil {
				return err
			}
			log.Infof("🌱 Seeded %d products", count)
			return nil
		})
	},
}

func withContainer(ctx context.Context, fn func(context.Context, *container.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	configureLogging(cfg.Log)
	log.Info("Configuration loaded successfully")

	app, err := container.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer app.Close()

	return fn(ctx, app)
}

func configureLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("⚠️ Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, importCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("Application exited with error: %v", err)
		stop()
		os.Exit(1)
	}
}
