// Package profile resolves named profiles against monitor definitions.
// Each profile is standalone (no inheritance). Resolution layers:
//  1. base environment variables (always applied)
//  2. base options derived from the monitor (resolution, refresh, VRR)
//  3. profile-specific options (override/extend base)
//  4. profile-specific environment (override/extend base)
//  5. conditional HDR/WSI environment variables
//  6. unset entries, which remove variables from every prior layer
package profile

import (
	"sort"

	"github.com/gswrap-dev/gswrap/internal/config"
)

// EnvVar is a single name=value pair of the derived environment.
type EnvVar struct {
	Name  string
	Value string
}

// baseEnvironment is always exported to the child, before profile and
// conditional layers. Kept sorted by name.
var baseEnvironment = []EnvVar{
	{"AMD_VULKAN_ICD", "RADV"},
	{"DISABLE_LAYER_AMD_SWITCHABLE_GRAPHICS_1", "1"},
	{"DISABLE_LAYER_NV_OPTIMUS_1", "1"},
	{"GAMESCOPE_WAYLAND_DISPLAY", "gamescope-0"},
	{"PROTON_ADD_CONFIG", "sdlinput,wayland"},
	{"PROTON_ENABLE_WAYLAND", "1"},
	{"RADV_PERFTEST", "aco"},
	{"SDL_VIDEODRIVER", "wayland"},
}

// ResolvedProfile is the fully merged, execution-ready view of a profile
// against its monitor. Immutable once constructed.
type ResolvedProfile struct {
	// Name is the profile name, for display.
	Name string

	// MonitorName is the resolved target monitor.
	MonitorName string

	// Binary is the gamescope executable path.
	Binary string

	// UseHDR reports whether HDR output is enabled.
	UseHDR bool

	// UseWSI reports whether the Gamescope WSI layer is enabled.
	UseWSI bool

	// Options is the merged gamescope option set (monitor-derived base
	// overlaid with profile options).
	Options map[string]config.OptionValue

	// UserEnv is the profile's environment, values already stringified.
	UserEnv map[string]string

	// UnsetVars lists names removed from the final environment. Order is
	// preserved for display only; removal is a set operation.
	UnsetVars []string
}

// Environment derives the complete child environment. Layers apply in a
// fixed order, each overwriting same-named entries from the previous
// ones; unset entries win over everything. The result is sorted by name,
// so identical inputs always produce the identical sequence.
func (p *ResolvedProfile) Environment() []EnvVar {
	env := make(map[string]string, len(baseEnvironment)+len(p.UserEnv)+4)
	for _, v := range baseEnvironment {
		env[v.Name] = v.Value
	}
	for name, value := range p.UserEnv {
		env[name] = value
	}
	if p.UseWSI {
		env["ENABLE_GAMESCOPE_WSI"] = "1"
	}
	if p.UseHDR {
		env["DXVK_HDR"] = "1"
		env["ENABLE_HDR_WSI"] = "1"
		env["PROTON_ENABLE_HDR"] = "1"
	}
	for _, name := range p.UnsetVars {
		delete(env, name)
	}

	sorted := make([]EnvVar, 0, len(env))
	for name, value := range env {
		sorted = append(sorted, EnvVar{Name: name, Value: value})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

// NeedsHDRWorkaround reports whether the child command must additionally
// receive DISABLE_HDR_WSI=1. Under the wayland backend with WSI and HDR
// both on, gamescope negotiates HDR incorrectly unless the child opts
// out of HDR WSI itself.
func (p *ResolvedProfile) NeedsHDRWorkaround() bool {
	backend, ok := p.Options["backend"]
	return ok && backend.String() == "wayland" && p.UseWSI && p.UseHDR
}

// SortedOptionKeys returns the merged option names in lexicographic
// order, the order they are emitted on the command line.
func (p *ResolvedProfile) SortedOptionKeys() []string {
	keys := make([]string, 0, len(p.Options))
	for key := range p.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
