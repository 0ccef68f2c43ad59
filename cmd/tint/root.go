// Package main provides the CLI entrypoint for tint.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tintd/tint/internal/config"
	"github.com/tintd/tint/internal/prefs"
	"github.com/tintd/tint/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themesDir  string
		prefsPath  string
	}
	logger *slog.Logger

	// themeStore is the store instance owned by the CLI process. It is
	// constructed and loaded exactly once per invocation.
	themeStore *store.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Editor and terminal color theme manager",
	Long: `tint manages editor/terminal color themes stored as JSON files in
your configuration directory.

Theme files are never modified in place: any attribute you change is
persisted as a per-theme override in a separate preferences file, and
can be reverted with 'tint reset'.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Resolve the themes directory: flag > config > default
		themesDir := globalOpts.themesDir
		if themesDir == "" {
			themesDir = cfg.Themes.Dir
		}
		if themesDir == "" {
			themesDir = config.ThemesDir()
		}

		prefsPath := globalOpts.prefsPath
		if prefsPath == "" {
			prefsPath = config.PrefsPath()
		}

		preferences, err := prefs.OpenFile(prefsPath)
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		themeStore = store.New(themesDir, preferences, logger)
		if err := themeStore.LoadThemes(); err != nil {
			return fmt.Errorf("failed to load themes: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/tint/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themesDir, "themes-dir", "",
		"Path to themes directory (default: ~/.config/tint/themes)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.prefsPath, "prefs", "",
		"Path to preferences file (default: ~/.config/tint/prefs.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
