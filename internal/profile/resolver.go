package profile

import (
	"fmt"

	"github.com/gswrap-dev/gswrap/internal/config"
)

// Resolve combines the named profile with its monitor's derived defaults
// into a ResolvedProfile ready for command construction.
func Resolve(cfg *config.Config, name string) (*ResolvedProfile, error) {
	def, err := cfg.Profile(name)
	if err != nil {
		return nil, err
	}

	var monitorName string
	var monitor config.MonitorDef
	if def.Monitor != "" {
		// Existence was checked at load time, but the lookup can still
		// fail for configs assembled in code.
		monitor, err = cfg.Monitor(def.Monitor)
		if err != nil {
			return nil, err
		}
		monitorName = def.Monitor
	} else {
		monitorName, monitor, err = cfg.DefaultMonitor()
		if err != nil {
			return nil, fmt.Errorf("profile %q specifies no monitor: %w", name, err)
		}
	}

	options := baseOptions(monitor)
	for key, value := range def.Options {
		options[key] = value
	}

	userEnv := make(map[string]string, len(def.Environment))
	for key, value := range def.Environment {
		userEnv[key] = value.String()
	}

	binary := def.Binary
	if binary == "" {
		binary = config.DefaultBinary
	}

	useHDR := monitor.HDR
	if def.UseHDR != nil {
		useHDR = *def.UseHDR
	}
	useWSI := true
	if def.UseWSI != nil {
		useWSI = *def.UseWSI
	}

	return &ResolvedProfile{
		Name:        name,
		MonitorName: monitorName,
		Binary:      binary,
		UseHDR:      useHDR,
		UseWSI:      useWSI,
		Options:     options,
		UserEnv:     userEnv,
		UnsetVars:   def.Unset,
	}, nil
}

// baseOptions derives sensible gamescope defaults from the monitor
// definition. Profile options overlay these.
func baseOptions(monitor config.MonitorDef) map[string]config.OptionValue {
	opts := map[string]config.OptionValue{
		"backend":           config.StringOption("sdl"),
		"fade-out-duration": config.IntOption(200),
		"fullscreen":        config.BoolOption(true),
		"immediate-flips":   config.BoolOption(true),
		"nested-refresh":    config.IntOption(int64(monitor.RefreshRate)),
		"output-height":     config.IntOption(int64(monitor.Height)),
		"output-width":      config.IntOption(int64(monitor.Width)),
		"rt":                config.BoolOption(true),
	}
	if monitor.VRR {
		opts["adaptive-sync"] = config.BoolOption(true)
	}
	return opts
}
