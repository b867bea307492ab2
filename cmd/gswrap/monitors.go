package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gswrap-dev/gswrap/internal/config"
	"github.com/gswrap-dev/gswrap/internal/output"
)

// monitorsCmd lists the configured monitors and their capabilities.
var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List configured monitors",
	Long:  `Show the configured monitors with their resolution, refresh rate, and VRR/HDR capabilities.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMonitors()
	},
}

func init() {
	rootCmd.AddCommand(monitorsCmd)
}

func runMonitors() error {
	// Only the monitors document is needed; profiles may not exist yet.
	monitors, err := config.LoadMonitors(resolvedMonitorsPath())
	if err != nil {
		return err
	}

	printer := output.New(os.Stdout)
	printer.Header("Configured monitors:")

	for _, name := range monitors.Names() {
		monitor := monitors.Monitors[name]
		primaryMarker := ""
		if monitor.Primary {
			primaryMarker = " (primary)"
		}
		summary := fmt.Sprintf("%dx%d@%dHz VRR=%t HDR=%t%s",
			monitor.Width, monitor.Height, monitor.RefreshRate,
			monitor.VRR, monitor.HDR, primaryMarker)
		printer.Summary(name, summary)
	}
	return nil
}
