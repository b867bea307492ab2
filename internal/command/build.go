// Package command constructs the gamescope command line from a resolved
// profile and performs the final process replacement.
package command

import (
	"strings"

	"github.com/gswrap-dev/gswrap/internal/config"
	"github.com/gswrap-dev/gswrap/internal/profile"
)

// hdrArgs force HDR output on regardless of what gamescope detects.
// Appended after the sorted option flags whenever HDR is enabled.
var hdrArgs = []string{"--hdr-enabled", "--hdr-debug-force-output", "--hdr-debug-force-support"}

// workaroundPrefix is inserted before the child command when the HDR
// workaround applies: the child must see DISABLE_HDR_WSI=1 while
// gamescope itself keeps ENABLE_HDR_WSI.
var workaroundPrefix = []string{"env", "DISABLE_HDR_WSI=1"}

// Command is a fully constructed gamescope invocation.
type Command struct {
	Binary string
	Args   []string
	Env    []profile.EnvVar
	// Unset names variables to remove from the inherited parent
	// environment.
	Unset           []string
	Child           []string
	NeedsWorkaround bool
}

// Build derives the gamescope invocation for a resolved profile wrapping
// childCmd.
func Build(p *profile.ResolvedProfile, childCmd []string) Command {
	args := buildArgs(p)
	if p.UseHDR {
		args = append(args, hdrArgs...)
	}

	return Command{
		Binary:          p.Binary,
		Args:            args,
		Env:             p.Environment(),
		Unset:           p.UnsetVars,
		Child:           childCmd,
		NeedsWorkaround: p.NeedsHDRWorkaround(),
	}
}

// buildArgs emits the merged options in lexicographic key order. True
// booleans become bare flags, false booleans are omitted, everything
// else becomes a flag with a value.
func buildArgs(p *profile.ResolvedProfile) []string {
	args := make([]string, 0, len(p.Options)*2)
	for _, key := range p.SortedOptionKeys() {
		value := p.Options[key]
		switch value.Kind() {
		case config.OptionBool:
			if value.Bool() {
				args = append(args, "--"+key)
			}
		default:
			args = append(args, "--"+key, value.String())
		}
	}
	return args
}

// Display renders the invocation as a single shell-like line for
// logging. Runs once per execution; clarity over allocation thrift.
func (c Command) Display() string {
	tokens := make([]string, 0, 2+len(c.Args)+len(workaroundPrefix)+len(c.Child))
	tokens = append(tokens, c.Binary)
	tokens = append(tokens, c.Args...)
	tokens = append(tokens, "--")
	if c.NeedsWorkaround {
		tokens = append(tokens, workaroundPrefix...)
	}
	tokens = append(tokens, c.Child...)
	return strings.Join(tokens, " ")
}
