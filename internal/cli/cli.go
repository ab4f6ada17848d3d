// Package cli holds the cobra wiring shared by the flatkit binaries:
// the --config and --verbose flags, config loading and the zap logger.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/config"
	"flatkit/internal/logging"
)

// Globals are the settings every binary resolves before running
type Globals struct {
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Logger *zap.Logger
}

// Bind registers --config and --verbose as persistent flags of root and
// installs the setup and teardown hooks.
func (g *Globals) Bind(root *cobra.Command) {
	root.PersistentFlags().StringVar(&g.ConfigPath, "config", config.Path(), "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "enable debug logging")

	root.SilenceUsage = true
	root.SilenceErrors = true

	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := g.Setup(); err != nil {
			return err
		}
		if next != nil {
			return next(cmd, args)
		}
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		g.Sync()
	}
}

// Setup loads the configuration and builds the logger
func (g *Globals) Setup() error {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return err
	}
	g.Config = cfg

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, g.Verbose)
	if err != nil {
		return err
	}
	g.Logger = logger
	g.Logger.Debug("configuration loaded", zap.String("config", g.ConfigPath))
	return nil
}

// Log returns the logger, or a no-op logger before Setup has run
func (g *Globals) Log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// Sync flushes buffered log entries
func (g *Globals) Sync() {
	if g.Logger != nil {
		_ = g.Logger.Sync()
	}
}

// StringFlag returns the flag value when it was given on the command
// line, else fallback.
func StringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// IntFlag is StringFlag for integers
func IntFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// Execute runs root and exits with status 1 on error
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
