package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gswrap-dev/gswrap/internal/config"
)

var (
	monitorsPath string
	profilesPath string
	verbose      bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "gswrap",
	Short: "Profile-based gamescope session launcher",
	Long: `gswrap runs games through gamescope using named profiles that define
complete, tested configurations for HDR, WSI, VRR, and other compositor
settings. Profiles are resolved against monitor definitions so resolution,
refresh rate, and adaptive sync follow the display automatically.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags, overridable via GSWRAP_MONITORS / GSWRAP_CONFIG.
	rootCmd.PersistentFlags().StringVarP(&monitorsPath, "monitors", "m", "",
		"path to monitors file (default "+config.DefaultMonitorsPath()+")")
	rootCmd.PersistentFlags().StringVarP(&profilesPath, "config", "c", "",
		"path to profiles file (default "+config.DefaultProfilesPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")

	viper.SetEnvPrefix("gswrap")
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("monitors", rootCmd.PersistentFlags().Lookup("monitors")))
	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// TextHandler for CLI friendliness.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// resolvedMonitorsPath returns the monitors document path: flag, then
// GSWRAP_MONITORS, then the default location.
func resolvedMonitorsPath() string {
	if path := viper.GetString("monitors"); path != "" {
		return path
	}
	return config.DefaultMonitorsPath()
}

// resolvedProfilesPath returns the profiles document path: flag, then
// GSWRAP_CONFIG, then the default location.
func resolvedProfilesPath() string {
	if path := viper.GetString("config"); path != "" {
		return path
	}
	return config.DefaultProfilesPath()
}

// loadConfig loads and validates both configuration documents.
func loadConfig() (*config.Config, error) {
	monitors := resolvedMonitorsPath()
	profiles := resolvedProfilesPath()
	slog.Debug("loading configuration", "monitors", monitors, "profiles", profiles)

	cfg, err := config.Load(monitors, profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s and %s: %w", monitors, profiles, err)
	}
	return cfg, nil
}
