package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config combines both configuration documents.
type Config struct {
	Monitors MonitorsConfig
	Profiles ProfilesConfig
}

// Load reads and decodes both documents, then validates the result.
// The documents are parsed independently; cross-document checks (monitor
// references) run in the validation pass.
func Load(monitorsPath, profilesPath string) (*Config, error) {
	var cfg Config
	if err := loadDocument(monitorsPath, &cfg.Monitors); err != nil {
		return nil, err
	}
	if err := loadDocument(profilesPath, &cfg.Profiles); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMonitors reads and decodes only the monitors document. Used by
// commands that don't need profiles (and must work before any profile
// exists).
func LoadMonitors(path string) (*MonitorsConfig, error) {
	var monitors MonitorsConfig
	if err := loadDocument(path, &monitors); err != nil {
		return nil, err
	}
	return &monitors, nil
}

// loadDocument reads one YAML document into out. Decode failures become
// ParseErrors carrying the path, source location, and syntax hints.
func loadDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// Monitor returns the named monitor definition.
func (c *Config) Monitor(name string) (MonitorDef, error) {
	return c.Monitors.Monitor(name)
}

// DefaultMonitor returns the name and definition of the primary monitor.
func (c *Config) DefaultMonitor() (string, MonitorDef, error) {
	return c.Monitors.DefaultMonitor()
}

// Profile returns the named profile definition.
func (c *Config) Profile(name string) (ProfileDef, error) {
	return c.Profiles.Profile(name)
}

// ProfileNames returns all profile names in lexicographic order.
func (c *Config) ProfileNames() []string {
	return c.Profiles.Names()
}

// MonitorNames returns all monitor names in lexicographic order.
func (c *Config) MonitorNames() []string {
	return c.Monitors.Names()
}
