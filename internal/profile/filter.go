package profile

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FilterEnv exposes a resolved profile's fields to `list --filter`
// expressions, e.g. `hdr && monitor == "main"`.
type FilterEnv struct {
	Name    string `expr:"name"`
	Monitor string `expr:"monitor"`
	HDR     bool   `expr:"hdr"`
	WSI     bool   `expr:"wsi"`
	Binary  string `expr:"binary"`
}

// CompileFilter compiles a boolean filter expression. Compilation errors
// surface before any profile is resolved.
func CompileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// MatchesFilter evaluates a compiled filter against a resolved profile.
func MatchesFilter(program *vm.Program, p *ResolvedProfile) (bool, error) {
	result, err := expr.Run(program, FilterEnv{
		Name:    p.Name,
		Monitor: p.MonitorName,
		HDR:     p.UseHDR,
		WSI:     p.UseWSI,
		Binary:  p.Binary,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating filter for profile %q: %w", p.Name, err)
	}
	match, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return a boolean")
	}
	return match, nil
}
