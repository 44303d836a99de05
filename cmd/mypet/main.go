// Package main is the entry point for the mypet terminal game.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moorebrett0/mypet/internal/config"
)

var (
	configPath string
	logLevel   string

	// cfg is loaded once flags are parsed, before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mypet",
	Short: "A tiny virtual pet for your terminal",
	Long: `mypet keeps a virtual pet alive in your terminal. Feed it, play with it,
keep it clean and let it sleep, or watch it fade away as time passes.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mypet.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		if _, err := config.ParseLevel(logLevel); err != nil {
			return err
		}
		loaded.Log.Level = logLevel
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("config loaded", "path", configPath, "pet", cfg.Pet.Name, "step_interval", cfg.Clock.StepInterval)
	return nil
}
