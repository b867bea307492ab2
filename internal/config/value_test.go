package config

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionValue_DecodePriority(t *testing.T) {
	t.Parallel()

	doc := `
bare-bool: true
negative-bool: false
integer: 165
negative: -5
plain: sdl
quoted-bool: "true"
quoted-int: "42"
`
	var values map[string]OptionValue
	require.NoError(t, yaml.Unmarshal([]byte(doc), &values))

	assert.Equal(t, OptionBool, values["bare-bool"].Kind())
	assert.True(t, values["bare-bool"].Bool())
	assert.Equal(t, OptionBool, values["negative-bool"].Kind())
	assert.False(t, values["negative-bool"].Bool())

	assert.Equal(t, OptionInt, values["integer"].Kind())
	assert.Equal(t, int64(165), values["integer"].Int())
	assert.Equal(t, OptionInt, values["negative"].Kind())
	assert.Equal(t, int64(-5), values["negative"].Int())

	assert.Equal(t, OptionString, values["plain"].Kind())
	assert.Equal(t, "sdl", values["plain"].String())

	// Quoting pins the scalar to a string.
	assert.Equal(t, OptionString, values["quoted-bool"].Kind())
	assert.Equal(t, "true", values["quoted-bool"].String())
	assert.Equal(t, OptionString, values["quoted-int"].Kind())
	assert.Equal(t, "42", values["quoted-int"].String())
}

func TestOptionValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", BoolOption(true).String())
	assert.Equal(t, "false", BoolOption(false).String())
	assert.Equal(t, "200", IntOption(200).String())
	assert.Equal(t, "wayland", StringOption("wayland").String())
}

func TestOptionValue_RejectsNonScalar(t *testing.T) {
	t.Parallel()

	var values map[string]OptionValue
	err := yaml.Unmarshal([]byte("nested:\n  a: 1\n"), &values)
	require.Error(t, err)
}

func TestEnvValue_Decode(t *testing.T) {
	t.Parallel()

	doc := `
MANGOHUD: 1
PROTON_LOG_DIR: /tmp/proton
QUOTED: "1"
`
	var values map[string]EnvValue
	require.NoError(t, yaml.Unmarshal([]byte(doc), &values))

	assert.Equal(t, EnvInt, values["MANGOHUD"].Kind())
	assert.Equal(t, "1", values["MANGOHUD"].String())
	assert.Equal(t, EnvString, values["PROTON_LOG_DIR"].Kind())
	assert.Equal(t, "/tmp/proton", values["PROTON_LOG_DIR"].String())
	assert.Equal(t, EnvString, values["QUOTED"].Kind())
	assert.Equal(t, "1", values["QUOTED"].String())
}

func TestEnvValue_RejectsBool(t *testing.T) {
	t.Parallel()

	var values map[string]EnvValue
	err := yaml.Unmarshal([]byte("SOME_FLAG: true\n"), &values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer or string")
}
