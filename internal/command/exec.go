package command

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"

	"github.com/gswrap-dev/gswrap/internal/profile"
)

// execFunc is the process-replacement primitive. Overridable in tests;
// syscall.Exec never returns on success.
var execFunc = syscall.Exec

// ExecError reports a failed process replacement: binary missing, not
// executable, or the exec call itself failing.
type ExecError struct {
	Binary string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Binary, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Exec replaces the current process with the gamescope invocation. The
// child environment is the inherited one with the command's variables
// applied on top and the unset names removed. Does not return on
// success.
func Exec(cmd Command) error {
	path, err := exec.LookPath(cmd.Binary)
	if err != nil {
		return &ExecError{Binary: cmd.Binary, Err: err}
	}

	argv := make([]string, 0, 2+len(cmd.Args)+len(workaroundPrefix)+len(cmd.Child))
	argv = append(argv, cmd.Binary)
	argv = append(argv, cmd.Args...)
	argv = append(argv, "--")
	if cmd.NeedsWorkaround {
		argv = append(argv, workaroundPrefix...)
	}
	argv = append(argv, cmd.Child...)

	envv := mergeEnviron(os.Environ(), cmd.Env, cmd.Unset)
	if err := execFunc(path, argv, envv); err != nil {
		return &ExecError{Binary: cmd.Binary, Err: err}
	}
	return nil
}

// ExecDirect replaces the current process with the child command as-is.
// Used when the session is already inside a compositor.
func ExecDirect(childCmd []string) error {
	if len(childCmd) == 0 {
		return fmt.Errorf("no command provided")
	}
	path, err := exec.LookPath(childCmd[0])
	if err != nil {
		return &ExecError{Binary: childCmd[0], Err: err}
	}
	if err := execFunc(path, childCmd, os.Environ()); err != nil {
		return &ExecError{Binary: childCmd[0], Err: err}
	}
	return nil
}

// ExecDirectWithEnv replaces the current process with the child command,
// skipping gamescope but keeping the full resolved environment (RADV,
// Wayland, HDR, WSI variables and unset entries).
func ExecDirectWithEnv(childCmd []string, env []profile.EnvVar, unset []string) error {
	if len(childCmd) == 0 {
		return fmt.Errorf("no command provided")
	}
	path, err := exec.LookPath(childCmd[0])
	if err != nil {
		return &ExecError{Binary: childCmd[0], Err: err}
	}
	envv := mergeEnviron(os.Environ(), env, unset)
	if err := execFunc(path, childCmd, envv); err != nil {
		return &ExecError{Binary: childCmd[0], Err: err}
	}
	return nil
}

// mergeEnviron overlays set onto the inherited environment and removes
// the unset names, no matter which source introduced them. The result is
// sorted so the exec'd environment is reproducible.
func mergeEnviron(inherited []string, set []profile.EnvVar, unset []string) []string {
	env := make(map[string]string, len(inherited)+len(set))
	for _, entry := range inherited {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		env[name] = value
	}
	for _, v := range set {
		env[v.Name] = v.Value
	}
	for _, name := range unset {
		delete(env, name)
	}

	merged := make([]string, 0, len(env))
	for name, value := range env {
		merged = append(merged, name+"="+value)
	}
	sort.Strings(merged)
	return merged
}
