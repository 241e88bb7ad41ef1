package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kagankarabayir/EV-Price-Estimator/app"
	"github.com/kagankarabayir/EV-Price-Estimator/config"
	"github.com/kagankarabayir/EV-Price-Estimator/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evvalue",
	Short: "EV resale valuation service",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

// loadConfig falls back to defaults when the default config file is absent, so
// the service can run without any configuration at all.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		logger.New("main").Infof("config file %s not found, using defaults", cfgPath)
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
