package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gswrap-dev/gswrap/internal/output"
)

// setInitFlags pins the init command's package flags for one test and
// restores them afterwards.
func setInitFlags(t *testing.T, force bool) {
	t.Helper()
	prevForce, prevNoInteractive := initForce, initNoInteractive
	initForce = force
	initNoInteractive = true
	t.Cleanup(func() {
		initForce, initNoInteractive = prevForce, prevNoInteractive
	})
}

func TestWriteScaffold_CreatesFileAndDirectory(t *testing.T) {
	setInitFlags(t, false)

	path := filepath.Join(t.TempDir(), "nested", "monitors.yaml")
	var buf bytes.Buffer

	require.NoError(t, writeScaffold(output.New(&buf), path, "monitors: {}\n"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "monitors: {}\n", string(written))
	assert.Contains(t, buf.String(), "Created")
}

func TestWriteScaffold_SkipsExistingWithoutForce(t *testing.T) {
	setInitFlags(t, false)

	path := filepath.Join(t.TempDir(), "monitors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user edits\n"), 0o644))
	var buf bytes.Buffer

	require.NoError(t, writeScaffold(output.New(&buf), path, "monitors: {}\n"))

	// The user's file is untouched.
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user edits\n", string(written))
	assert.Contains(t, buf.String(), "Skipped")
	assert.Contains(t, buf.String(), "--force")
}

func TestWriteScaffold_ForceOverwrites(t *testing.T) {
	setInitFlags(t, true)

	path := filepath.Join(t.TempDir(), "monitors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user edits\n"), 0o644))
	var buf bytes.Buffer

	require.NoError(t, writeScaffold(output.New(&buf), path, "monitors: {}\n"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "monitors: {}\n", string(written))
	assert.Contains(t, buf.String(), "Overwrote")
}

func TestWriteScaffold_UnchangedContent(t *testing.T) {
	setInitFlags(t, true)

	path := filepath.Join(t.TempDir(), "monitors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monitors: {}\n"), 0o644))
	var buf bytes.Buffer

	require.NoError(t, writeScaffold(output.New(&buf), path, "monitors: {}\n"))

	assert.Contains(t, buf.String(), "Unchanged")
	assert.NotContains(t, buf.String(), "Overwrote")
}
