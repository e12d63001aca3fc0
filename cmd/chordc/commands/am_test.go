package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/errors"
)

func runAm(t *testing.T, run func(*cobra.Command, []string) error, setup func(*cobra.Command), args ...string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "am", RunE: run, SilenceErrors: true, SilenceUsage: true}
	if setup != nil {
		setup(cmd)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func withFormat(cmd *cobra.Command) { cmd.Flags().String("format", "toml", "") }
func withForce(cmd *cobra.Command)  { cmd.Flags().Bool("force", false, "") }

func TestAmInitSetShow(t *testing.T) {
	dir := keyboardDir(t)
	path := filepath.Join(dir, am.ConfigFileName)

	out, err := runAm(t, runAmInit, withForce)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote chordc.toml")
	assert.FileExists(t, path)

	_, err = runAm(t, runAmInit, withForce)
	assert.True(t, errors.IsConfigError(err))
	_, err = runAm(t, runAmInit, withForce, "--force")
	require.NoError(t, err)

	_, err = runAm(t, runAmSet, nil, "settings.path", "keyboard/settings.toml")
	require.NoError(t, err)
	_, err = runAm(t, runAmSet, nil, "watch.debounce_ms", "120")
	require.NoError(t, err)

	out, err = runAm(t, runAmShow, withFormat, "--format", "json")
	require.NoError(t, err)
	var shown am.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "keyboard/settings.toml", shown.Settings.Path)
	assert.Equal(t, 120, shown.Watch.DebounceMS)

	out, err = runAm(t, runAmShow, withFormat)
	require.NoError(t, err)
	assert.Contains(t, out, "[watch]")

	out, err = runAm(t, runAmShow, withFormat, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "debounce_ms: 120")

	_, err = runAm(t, runAmShow, withFormat, "--format", "xml")
	assert.True(t, errors.IsConfigError(err))

	out, err = runAm(t, runAmGet, nil, "watch.debounce_ms")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)

	_, err = runAm(t, runAmGet, nil, "watch.nope")
	assert.True(t, errors.IsLookupError(err))

	out, err = runAm(t, runAmValidate, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	out, err = runAm(t, runAmWhere, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Project config: "+path)
	assert.Contains(t, out, "watch.debounce_ms")
}

// runAmCommand runs the registered am command tree, flag parsing included
func runAmCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, stderr bytes.Buffer
	AmCmd.SetOut(&out)
	AmCmd.SetErr(&stderr)
	AmCmd.SetArgs(args)
	t.Cleanup(func() {
		AmCmd.SetOut(nil)
		AmCmd.SetErr(nil)
		AmCmd.SetArgs(nil)
	})
	_, err := AmCmd.ExecuteC()
	return out.String(), err
}

func TestAmSetRejectsInvalidValue(t *testing.T) {
	dir := keyboardDir(t)

	_, err := runAmCommand(t, "set", "watch.debounce_ms", "-5")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, errors.FlattenHints(err), ".back1")
	assert.FileExists(t, filepath.Join(dir, am.ConfigFileName))
}

func TestAmValidateMissingSettings(t *testing.T) {
	keyboardDir(t)

	// settings.toml is not in the working directory
	_, err := runAm(t, runAmValidate, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, int64(1), parseValue("1"))
	assert.Equal(t, "build/out", parseValue("build/out"))
}

func TestMain(m *testing.M) {
	// Commands print with colour; tests compare plain text
	pterm.DisableColor()
	os.Exit(m.Run())
}
