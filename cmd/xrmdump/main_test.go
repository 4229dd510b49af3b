// FILE: lixenwraith/xrmconfig/cmd/xrmdump/main_test.go

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	t.Setenv("XENVIRONMENT", "")
	t.Setenv(EnvArgs, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDumpDefaults(t *testing.T) {
	isolate(t)

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "rofi.lines:                15\n")
	assert.Contains(t, out, "rofi.combi-modi:           \n")
	assert.Contains(t, out, `rofi.sep:                  \x0A`+"\n")
	assert.NotContains(t, out, "rofi.fg:")
}

func TestDumpResourcesAndArgs(t *testing.T) {
	dir := isolate(t)
	base := writeFile(t, dir, "base.xresources", "rofi.lines: 10\nrofi.font: mono 10\n")
	override := writeFile(t, dir, "override.yaml", "rofi:\n  font: serif 11\n  combi-modi: window,run\n")

	out, _, err := execute(t, "-r", base, "-r", override, "--", "-lines", "3", "-sep", "|")
	require.NoError(t, err)
	assert.Contains(t, out, "rofi.lines:                3\n")
	assert.Contains(t, out, "rofi.font:                 serif 11\n")
	assert.Contains(t, out, "rofi.combi-modi:           window,run\n")
	assert.Contains(t, out, "rofi.sep:                  |\n")
}

func TestDumpEnvArgs(t *testing.T) {
	isolate(t)
	t.Setenv(EnvArgs, `-font 'sans bold 9' -case-sensitive`)

	out, _, err := execute(t, "--", "-lines", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "rofi.font:                 sans bold 9\n")
	assert.Contains(t, out, "rofi.case-sensitive:       true\n")
	assert.Contains(t, out, "rofi.lines:                4\n")
}

func TestDumpEnvArgsUnbalanced(t *testing.T) {
	isolate(t)
	t.Setenv(EnvArgs, `-font 'sans`)

	_, _, err := execute(t)
	assert.ErrorContains(t, err, EnvArgs)
}

func TestDumpPrefix(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "res", "dmenu.lines: 7\nrofi.lines: 2\n")

	out, _, err := execute(t, "--prefix", "dmenu", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "dmenu.lines:                7\n")
}

func TestDumpFormatFlag(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "launcher.conf", `{"rofi": {"padding": 12}}`)

	out, _, err := execute(t, "--format", "json", "-r", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rofi.padding:              12\n")

	_, _, err = execute(t, "--format", "ini", "-r", path)
	assert.Error(t, err)
}

func TestDumpVerboseLogging(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "res", "rofi.font: mono 10\n")

	t.Run("Text", func(t *testing.T) {
		_, errOut, err := execute(t, "-v", "-r", path, "--", "-font", "sans 8")
		require.NoError(t, err)
		assert.Contains(t, errOut, "Option set from resources")
		assert.Contains(t, errOut, "Released option value")
	})

	t.Run("JSON", func(t *testing.T) {
		_, errOut, err := execute(t, "-v", "--json", "-r", path)
		require.NoError(t, err)
		assert.Contains(t, errOut, `"msg":"Option set from resources"`)
	})

	t.Run("Quiet", func(t *testing.T) {
		_, errOut, err := execute(t, "-r", path)
		require.NoError(t, err)
		assert.Empty(t, errOut)
	})
}

func TestDumpBrokenResources(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "broken.toml", "rofi = [\n")

	_, _, err := execute(t, "-r", path)
	assert.Error(t, err)
}
