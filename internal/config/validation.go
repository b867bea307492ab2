package config

import (
	"fmt"
	"sort"
	"strings"
)

// isValidEnvName reports whether name is a valid POSIX environment
// variable name: an ASCII letter or underscore followed by ASCII
// letters, digits, or underscores.
func isValidEnvName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validate runs the post-parse validation pass over all profiles and
// monitors. Every problem found is collected into one ValidationError so
// a broken config is reported in a single round trip.
func (c *Config) validate() error {
	var problems []string

	if problem := c.validatePrimaries(); problem != "" {
		problems = append(problems, problem)
	}

	// Deterministic report order regardless of map iteration.
	for _, name := range c.Profiles.Names() {
		profile := c.Profiles.Profiles[name]
		problems = append(problems, validateProfile(name, profile, &c.Monitors)...)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// validatePrimaries rejects configurations with more than one primary
// monitor. The default-monitor lookup must be unambiguous.
func (c *Config) validatePrimaries() string {
	var primaries []string
	for name, monitor := range c.Monitors.Monitors {
		if monitor.Primary {
			primaries = append(primaries, name)
		}
	}
	if len(primaries) <= 1 {
		return ""
	}
	sort.Strings(primaries)
	return fmt.Sprintf("multiple monitors flagged primary: %s (exactly one may be primary)",
		strings.Join(primaries, ", "))
}

// validateProfile checks one profile's environment variable names (set
// and unset) and its monitor reference. Invalid names within a profile
// are aggregated into a single problem naming every offender.
func validateProfile(name string, profile ProfileDef, monitors *MonitorsConfig) []string {
	var problems []string

	var invalid []string
	for _, key := range sortedKeys(profile.Environment) {
		if !isValidEnvName(key) {
			invalid = append(invalid, fmt.Sprintf("environment key %q", key))
		}
	}
	// Duplicate unset entries are deliberately left alone: removal is
	// idempotent, so they are harmless.
	for _, entry := range profile.Unset {
		if !isValidEnvName(entry) {
			invalid = append(invalid, fmt.Sprintf("unset entry %q", entry))
		}
	}
	if len(invalid) > 0 {
		problems = append(problems, fmt.Sprintf("profile %q: invalid environment variable names: %s",
			name, strings.Join(invalid, ", ")))
	}

	if profile.Monitor != "" {
		if _, ok := monitors.Monitors[profile.Monitor]; !ok {
			problems = append(problems, fmt.Sprintf("profile %q references unknown monitor %q",
				name, profile.Monitor))
		}
	}

	return problems
}

func sortedKeys(m map[string]EnvValue) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
