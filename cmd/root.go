package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskmarket.com/taskmarket/internal/configs"
	"taskmarket.com/taskmarket/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "taskmarket",
	Short:         "Task marketplace service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML file with configuration values")
}

// loadConfig reads .env, the optional config file and the environment, and
// installs the configured logger as the slog default.
func loadConfig() (config.Config, *slog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.New(level, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug(".env file not found, using environment variables")
	}
	return cfg, logger, nil
}
