package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gswrap-dev/gswrap/internal/command"
	"github.com/gswrap-dev/gswrap/internal/output"
	"github.com/gswrap-dev/gswrap/internal/profile"
)

var (
	runProfile    string
	skipGamescope bool
)

// runCmd launches a command through gamescope with the selected profile.
var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND...",
	Short: "Run a command through gamescope with the selected profile",
	Long: `Resolve a profile and replace the gswrap process with gamescope wrapping
the given command. The profile determines HDR, WSI, and other gamescope
settings; use 'gswrap list' to see available profiles.

When GAMESCOPE_WAYLAND_DISPLAY is already set the session is treated as
already running inside a compositor and the command is executed directly.`,
	Example: `  gswrap run -- steam -gamepadui
  gswrap run --profile couch -- heroic`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runLaunch(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runProfile, "profile", "p", "default", "profile to use")
	runCmd.Flags().BoolVar(&skipGamescope, "skip-gamescope", false,
		"apply the profile environment but run the command without gamescope")
	// Everything after the first positional belongs to the child command.
	runCmd.Flags().SetInterspersed(false)
}

func runLaunch(childCmd []string) error {
	printer := output.New(os.Stdout)

	if insideGamescope() {
		printer.Warn("Already inside Gamescope, running command directly...")
		return command.ExecDirect(childCmd)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolved, err := profile.Resolve(cfg, runProfile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", runProfile, err)
	}

	printer.Profile(resolved.Name, resolved.MonitorName)
	env := resolved.Environment()
	printer.Environment(env)

	if skipGamescope {
		printer.Warn("Skipping gamescope, running command with profile environment...")
		return command.ExecDirectWithEnv(childCmd, env, resolved.UnsetVars)
	}

	cmd := command.Build(resolved, childCmd)
	printer.ExecLine(cmd)
	return command.Exec(cmd)
}

// insideGamescope reports whether this process already runs inside a
// gamescope session.
func insideGamescope() bool {
	return os.Getenv("GAMESCOPE_WAYLAND_DISPLAY") != ""
}
