// Package templates provides the embedded starter configuration
// documents written by `gswrap init`.
package templates

import (
	_ "embed"
)

//go:embed monitors.yaml
var monitors string

//go:embed config.yaml
var profiles string

// Monitors returns the starter monitors.yaml content, with every field
// documented.
func Monitors() string { return monitors }

// Profiles returns the starter config.yaml content, with every field
// documented.
func Profiles() string { return profiles }
