package config

import (
	"path/filepath"
	"sort"
)

// DefaultBinary is the gamescope binary used when a profile does not
// name one.
const DefaultBinary = "gamescope"

// ProfileDef is a named launch configuration as written by the user.
// Profiles are standalone: there is no inheritance or composition
// between them.
type ProfileDef struct {
	// Monitor names the target display. Empty means "use the primary
	// monitor". Validated to exist at load time.
	Monitor string `yaml:"monitor"`

	// Binary is the gamescope executable path.
	Binary string `yaml:"binary"`

	// UseHDR overrides HDR output. Nil inherits the monitor's hdr flag.
	UseHDR *bool `yaml:"useHDR"`

	// UseWSI overrides the Gamescope WSI layer. Nil means enabled.
	UseWSI *bool `yaml:"useWSI"`

	// Options are gamescope command-line options layered over the
	// monitor-derived defaults.
	Options map[string]OptionValue `yaml:"options"`

	// Environment is exported to the child in addition to the base
	// environment.
	Environment map[string]EnvValue `yaml:"environment"`

	// Unset lists variable names removed from the final environment no
	// matter which layer introduced them. Duplicates are allowed;
	// removal is idempotent.
	Unset []string `yaml:"unset"`
}

// ProfilesConfig is the parsed profiles document.
type ProfilesConfig struct {
	Profiles map[string]ProfileDef `yaml:"profiles"`
}

// DefaultProfilesPath returns the default location of config.yaml.
func DefaultProfilesPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Profile returns the named profile definition.
func (c *ProfilesConfig) Profile(name string) (ProfileDef, error) {
	profile, ok := c.Profiles[name]
	if !ok {
		return ProfileDef{}, &NotFoundError{Kind: "profile", Name: name}
	}
	return profile, nil
}

// Names returns all profile names in lexicographic order.
func (c *ProfilesConfig) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
