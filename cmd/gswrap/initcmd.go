package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gswrap-dev/gswrap/internal/output"
	"github.com/gswrap-dev/gswrap/internal/templates"
)

var (
	initForce         bool
	initNoInteractive bool
)

// initCmd scaffolds the configuration documents with commented examples.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration files with examples",
	Long: `Create starter monitors.yaml and config.yaml files showing all available
options. Existing files are left alone unless --force is given or the
overwrite is confirmed interactively.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInit()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration files")
	initCmd.Flags().BoolVar(&initNoInteractive, "no-interactive", false, "disable interactive prompts")
}

func runInit() error {
	printer := output.New(os.Stdout)

	monitorsPath := resolvedMonitorsPath()
	profilesPath := resolvedProfilesPath()

	if err := writeScaffold(printer, monitorsPath, templates.Monitors()); err != nil {
		return err
	}
	if err := writeScaffold(printer, profilesPath, templates.Profiles()); err != nil {
		return err
	}

	printer.Section("\nConfiguration initialized! Next steps:")
	printer.Info("  1. Edit monitors.yaml to match your display(s)")
	printer.Info("  2. Edit config.yaml to create your profiles")
	printer.Info("  3. Run: gswrap run -- <your-game-command>")
	return nil
}

// writeScaffold writes one starter document, respecting existing files:
// skipped unless --force or a confirmed interactive overwrite, and left
// untouched when the content already matches.
func writeScaffold(printer *output.Printer, path, content string) error {
	existing, err := os.ReadFile(path)
	exists := err == nil

	if exists && !initForce {
		if !confirmOverwrite(path) {
			printer.Warn(fmt.Sprintf("Skipped %s (already exists, use --force to overwrite)", path))
			return nil
		}
	}
	if exists && string(existing) == content {
		printer.Info("Unchanged " + path)
		return nil
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		printer.Success("Created " + dir)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if exists {
		printer.Success("Overwrote " + path)
	} else {
		printer.Success("Created " + path)
	}
	return nil
}

// confirmOverwrite asks whether an existing file should be replaced.
// Always false when prompts are disabled.
func confirmOverwrite(path string) bool {
	if initNoInteractive {
		return false
	}
	overwrite := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(path))).
		Value(&overwrite).
		Run()
	if err != nil {
		return false
	}
	return overwrite
}
