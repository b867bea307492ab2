package config

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// OptionKind identifies the variant held by an OptionValue.
type OptionKind int

const (
	// OptionBool is a boolean gamescope flag (emitted without a value).
	OptionBool OptionKind = iota
	// OptionInt is an integer-valued option.
	OptionInt
	// OptionString is a string-valued option.
	OptionString
)

// OptionValue is a gamescope option value: bool, integer, or string.
// The YAML scalar's native type decides the variant, so an unquoted
// `true` is a bool while `"true"` stays a string.
type OptionValue struct {
	kind OptionKind
	b    bool
	i    int64
	s    string
}

// BoolOption returns an OptionValue holding a bool.
func BoolOption(v bool) OptionValue { return OptionValue{kind: OptionBool, b: v} }

// IntOption returns an OptionValue holding an integer.
func IntOption(v int64) OptionValue { return OptionValue{kind: OptionInt, i: v} }

// StringOption returns an OptionValue holding a string.
func StringOption(v string) OptionValue { return OptionValue{kind: OptionString, s: v} }

// Kind returns the variant held by the value.
func (v OptionValue) Kind() OptionKind { return v.kind }

// Bool returns the boolean payload. Only meaningful when Kind is OptionBool.
func (v OptionValue) Bool() bool { return v.b }

// Int returns the integer payload. Only meaningful when Kind is OptionInt.
func (v OptionValue) Int() int64 { return v.i }

// String renders the value as it appears on the gamescope command line.
func (v OptionValue) String() string {
	switch v.kind {
	case OptionBool:
		return strconv.FormatBool(v.b)
	case OptionInt:
		return strconv.FormatInt(v.i, 10)
	default:
		return v.s
	}
}

// UnmarshalYAML decodes a scalar into the matching variant, trying bool,
// then integer, then string.
func (v *OptionValue) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case bool:
		*v = BoolOption(value)
	case int:
		*v = IntOption(int64(value))
	case int64:
		*v = IntOption(value)
	case uint64:
		*v = IntOption(int64(value))
	case string:
		*v = StringOption(value)
	default:
		return fmt.Errorf("option value must be a boolean, integer, or string, got %T", raw)
	}
	return nil
}

// EnvKind identifies the variant held by an EnvValue.
type EnvKind int

const (
	// EnvInt is an integer environment value.
	EnvInt EnvKind = iota
	// EnvString is a string environment value.
	EnvString
)

// EnvValue is a profile environment value: integer or string. Booleans
// are rejected so `SOME_FLAG: true` fails loudly instead of silently
// exporting "true".
type EnvValue struct {
	kind EnvKind
	i    int64
	s    string
}

// IntEnv returns an EnvValue holding an integer.
func IntEnv(v int64) EnvValue { return EnvValue{kind: EnvInt, i: v} }

// StringEnv returns an EnvValue holding a string.
func StringEnv(v string) EnvValue { return EnvValue{kind: EnvString, s: v} }

// Kind returns the variant held by the value.
func (v EnvValue) Kind() EnvKind { return v.kind }

// String renders the value as it is exported to the child environment.
func (v EnvValue) String() string {
	if v.kind == EnvInt {
		return strconv.FormatInt(v.i, 10)
	}
	return v.s
}

// UnmarshalYAML decodes a scalar into the matching variant, trying
// integer, then string.
func (v *EnvValue) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case int:
		*v = IntEnv(int64(value))
	case int64:
		*v = IntEnv(value)
	case uint64:
		*v = IntEnv(int64(value))
	case string:
		*v = StringEnv(value)
	default:
		return fmt.Errorf("environment value must be an integer or string, got %T", raw)
	}
	return nil
}
