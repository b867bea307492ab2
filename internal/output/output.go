// Package output renders gswrap's user-facing console output. Status
// and diagnostics go to the logger, not here.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gswrap-dev/gswrap/internal/command"
	"github.com/gswrap-dev/gswrap/internal/profile"
)

const prefix = "[gswrap]"

var (
	prefixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	notableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	monitorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Printer writes formatted output to a single destination.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Profile announces the selected profile and its monitor.
func (p *Printer) Profile(name, monitor string) {
	fmt.Fprintf(p.w, "%s Profile: %s (monitor: %s)\n",
		prefixStyle.Render(prefix), nameStyle.Render(name), monitorStyle.Render(monitor))
}

// Header prints a bold heading line.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.w, headerStyle.Render(text))
}

// Section prints a section heading.
func (p *Printer) Section(text string) {
	fmt.Fprintln(p.w, sectionStyle.Render(text))
}

// KeyValue prints a key=value line.
func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintf(p.w, "%s=%s\n", keyStyle.Render(key), value)
}

// Environment prints the derived environment block.
func (p *Printer) Environment(env []profile.EnvVar) {
	fmt.Fprintf(p.w, "%s Environment:\n", prefixStyle.Render(prefix))
	for _, v := range env {
		fmt.Fprintf(p.w, "    %s=%s\n", keyStyle.Render(v.Name), v.Value)
	}
}

// ExecLine prints the final invocation, with a notice when the HDR
// workaround is active.
func (p *Printer) ExecLine(cmd command.Command) {
	if cmd.NeedsWorkaround {
		fmt.Fprintf(p.w, "%s HDR workaround: %s for child\n",
			notableStyle.Render(prefix), keyStyle.Render("DISABLE_HDR_WSI=1"))
	}
	fmt.Fprintf(p.w, "%s Exec: %s\n", prefixStyle.Render(prefix), dimStyle.Render(cmd.Display()))
}

// Summary prints an indented name: summary line, used by list and
// monitors.
func (p *Printer) Summary(name, summary string) {
	fmt.Fprintf(p.w, "  %s: %s\n", nameStyle.Render(name), dimStyle.Render(summary))
}

// Warn prints a prefixed warning.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", warnStyle.Render(prefix), msg)
}

// Success prints a prefixed success line.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", successStyle.Render(prefix), msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, dimStyle.Render(msg))
}
