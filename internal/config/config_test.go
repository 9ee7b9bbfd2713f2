// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testingOnWindowsOrDarwin() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RHASK_FILE", "/tmp/other/rhaskfile.cue")
	t.Setenv("RHASK_VERBOSE", "true")
	t.Setenv("RHASK_NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other/rhaskfile.cue", cfg.File)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestConfigDirHonorsXDG(t *testing.T) {
	if testingOnWindowsOrDarwin() {
		t.Skip("XDG convention applies to Linux and others")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, AppName), dir)
}
