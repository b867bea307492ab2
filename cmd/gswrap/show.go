package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gswrap-dev/gswrap/internal/output"
	"github.com/gswrap-dev/gswrap/internal/profile"
)

// showCmd prints every resolved setting of one profile.
var showCmd = &cobra.Command{
	Use:   "show PROFILE",
	Short: "Show detailed information about a profile",
	Long: `Display all resolved settings for a profile: the target monitor, the
merged gamescope options, the complete derived environment, and the
variables removed from it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runShow(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(name string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolved, err := profile.Resolve(cfg, name)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", name, err)
	}

	printer := output.New(os.Stdout)
	printer.Header("Profile: " + resolved.Name)

	printer.Section("Settings:")
	printer.KeyValue("  Monitor", resolved.MonitorName)
	printer.KeyValue("  Binary", resolved.Binary)
	printer.KeyValue("  HDR", strconv.FormatBool(resolved.UseHDR))
	printer.KeyValue("  WSI", strconv.FormatBool(resolved.UseWSI))

	printer.Section("Options:")
	for _, key := range resolved.SortedOptionKeys() {
		printer.KeyValue("  --"+key, resolved.Options[key].String())
	}

	printer.Section("Environment:")
	for _, v := range resolved.Environment() {
		printer.KeyValue("  "+v.Name, v.Value)
	}

	if len(resolved.UnsetVars) > 0 {
		printer.Section("Unset:")
		for _, entry := range resolved.UnsetVars {
			printer.Info("  " + entry)
		}
	}

	return nil
}
