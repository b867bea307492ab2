package config

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseError reports a malformed configuration document. It carries the
// document path and, via the wrapped goccy error, the source location of
// the failure.
type ParseError struct {
	Path string
	Err  error
}

// yamlHints lists common YAML mistakes. Appended to every parse error so
// users editing config by hand get actionable guidance.
const yamlHints = `Hint: YAML is sensitive to indentation. Common issues:
  - Use spaces, not tabs
  - Ensure consistent indentation (2 spaces recommended)
  - Check for missing colons after keys
  - Wrap strings with special characters in quotes`

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s\n%s\n\n%s",
		e.Path, yaml.FormatError(e.Err, false, true), yamlHints)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError aggregates every problem found in a single validation
// pass over the loaded configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s",
		strings.Join(e.Problems, "\n  - "))
}

// NotFoundError reports a lookup of a profile or monitor that does not
// exist, or the absence of a primary monitor when one is required.
type NotFoundError struct {
	Kind string // "profile", "monitor", or "primary monitor"
	Name string // empty for the primary monitor case
}

func (e *NotFoundError) Error() string {
	if e.Kind == "primary monitor" {
		return "no primary monitor configured: set 'primary: true' on one monitor"
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
