// Package config provides the gswrap configuration model: monitor and
// profile definitions loaded from two YAML documents, plus validation.
// Configuration is split across two files:
//   - monitors.yaml: display definitions with resolution and capabilities
//   - config.yaml:   profile definitions that reference monitors
package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
)

// MonitorDef describes a display's hardware capabilities. These values
// represent what the monitor CAN do; profiles decide what to enable.
type MonitorDef struct {
	Width       int
	Height      int
	RefreshRate int
	VRR         bool
	HDR         bool
	Primary     bool
}

// monitorDoc is the YAML shape of a monitor entry. refreshRate/refresh
// and primary/default are accepted as aliases.
type monitorDoc struct {
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	RefreshRate *int  `yaml:"refreshRate"`
	Refresh     *int  `yaml:"refresh"`
	VRR         bool  `yaml:"vrr"`
	HDR         bool  `yaml:"hdr"`
	Primary     *bool `yaml:"primary"`
	Default     *bool `yaml:"default"`
}

// UnmarshalYAML folds the alias fields into the canonical ones.
func (m *MonitorDef) UnmarshalYAML(data []byte) error {
	var doc monitorDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	*m = MonitorDef{
		Width:  doc.Width,
		Height: doc.Height,
		VRR:    doc.VRR,
		HDR:    doc.HDR,
	}
	switch {
	case doc.RefreshRate != nil:
		m.RefreshRate = *doc.RefreshRate
	case doc.Refresh != nil:
		m.RefreshRate = *doc.Refresh
	}
	switch {
	case doc.Primary != nil:
		m.Primary = *doc.Primary
	case doc.Default != nil:
		m.Primary = *doc.Default
	}
	return nil
}

// MonitorsConfig is the parsed monitors document.
type MonitorsConfig struct {
	Monitors map[string]MonitorDef `yaml:"monitors"`
}

// ConfigDir returns the gswrap configuration directory
// (typically ~/.config/gswrap).
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "gswrap")
}

// DefaultMonitorsPath returns the default location of monitors.yaml.
func DefaultMonitorsPath() string {
	return filepath.Join(ConfigDir(), "monitors.yaml")
}

// Monitor returns the named monitor definition.
func (c *MonitorsConfig) Monitor(name string) (MonitorDef, error) {
	monitor, ok := c.Monitors[name]
	if !ok {
		return MonitorDef{}, &NotFoundError{Kind: "monitor", Name: name}
	}
	return monitor, nil
}

// DefaultMonitor returns the monitor flagged primary. Load validation
// guarantees at most one; none at all is a NotFoundError.
func (c *MonitorsConfig) DefaultMonitor() (string, MonitorDef, error) {
	for name, monitor := range c.Monitors {
		if monitor.Primary {
			return name, monitor, nil
		}
	}
	return "", MonitorDef{}, &NotFoundError{Kind: "primary monitor"}
}

// Names returns all monitor names in lexicographic order.
func (c *MonitorsConfig) Names() []string {
	names := make([]string, 0, len(c.Monitors))
	for name := range c.Monitors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
