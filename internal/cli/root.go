// Package cli defines the Cobra commands of the tictactoe binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Two-player tic-tac-toe service",
	Long: `Runs the tic-tac-toe HTTP and WebSocket API and offers a few
maintenance commands that work on the same storage.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yml (default ./config.yml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(usersCmd)
}

// initConfig loads the config file named by --config, or config.yml in the working directory.
func initConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(baseDir, "config.yml")
	}

	return config.Load(path)
}

// initLogger builds the JSON logger for the configured level.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
