package main

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	"github.com/gswrap-dev/gswrap/internal/output"
	"github.com/gswrap-dev/gswrap/internal/profile"
)

var listFilter string

// listCmd prints all profiles with their key settings.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all available profiles",
	Long: `Show each profile's name, target monitor, and key settings.

Filtering:
  --filter 'hdr'                    Profiles with HDR enabled
  --filter 'monitor == "tv"'        Profiles targeting the tv monitor
  --filter 'wsi && !hdr'            Boolean expressions over name, monitor,
                                    hdr, wsi, and binary`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFilter, "filter", "", "filter expression over profile fields")
}

func runList() error {
	var program *vm.Program
	if listFilter != "" {
		var err error
		program, err = profile.CompileFilter(listFilter)
		if err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printer := output.New(os.Stdout)
	printer.Header("Available profiles:")

	for _, name := range cfg.ProfileNames() {
		resolved, err := profile.Resolve(cfg, name)
		if err != nil {
			return fmt.Errorf("failed to resolve profile %q: %w", name, err)
		}
		if program != nil {
			match, err := profile.MatchesFilter(program, resolved)
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		summary := fmt.Sprintf("monitor=%s HDR=%t WSI=%t",
			resolved.MonitorName, resolved.UseHDR, resolved.UseWSI)
		printer.Summary(name, summary)
	}
	return nil
}
