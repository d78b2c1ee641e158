// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zuliprc")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func strptr(s string) *string { return &s }

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, Option{Value: "zt_dark", Source: Default}, s.Theme)
	assert.Equal(t, Option{Value: "no_autohide", Source: Default}, s.Autohide)
	assert.Equal(t, Option{Value: "enabled", Source: Default}, s.Footlinks)
	assert.Equal(t, Option{Value: "256", Source: Default}, s.ColorDepth)
	assert.False(t, s.Explore)
}

func TestProvenanceString(t *testing.T) {
	assert.Equal(t, "specified on command line", FromCLI.String())
	assert.Equal(t, "specified in config file", FromConfig.String())
	assert.Equal(t, "specified with no config", Default.String())
}

func TestApplyFile_NoZtermSection(t *testing.T) {
	path := writeConfig(t, "[api]\nemail=me@example.com")

	s := Defaults()
	require.NoError(t, s.ApplyFile(path))

	assert.Equal(t, Default, s.Theme.Source)
	assert.Equal(t, Default, s.Autohide.Source)
}

func TestApplyFile_ZtermSection(t *testing.T) {
	path := writeConfig(t, `[api]
email=me@example.com

[zterm]
theme=gruvbox_dark
autohide=autohide
footlinks=disabled
color-depth=16
`)

	s := Defaults()
	require.NoError(t, s.ApplyFile(path))

	assert.Equal(t, Option{Value: "gruvbox_dark", Source: FromConfig}, s.Theme)
	assert.Equal(t, Option{Value: "autohide", Source: FromConfig}, s.Autohide)
	assert.Equal(t, Option{Value: "disabled", Source: FromConfig}, s.Footlinks)
	assert.Equal(t, Option{Value: "16", Source: FromConfig}, s.ColorDepth)
}

func TestApplyFile_PartialZtermSection(t *testing.T) {
	path := writeConfig(t, "[zterm]\ntheme=zt_light")

	s := Defaults()
	require.NoError(t, s.ApplyFile(path))

	assert.Equal(t, Option{Value: "zt_light", Source: FromConfig}, s.Theme)
	// Untouched settings keep their defaults.
	assert.Equal(t, Option{Value: "no_autohide", Source: Default}, s.Autohide)
	assert.Equal(t, Option{Value: "enabled", Source: Default}, s.Footlinks)
}

func TestApplyFile_Malformed(t *testing.T) {
	path := writeConfig(t, "theme zt_dark no sections")

	s := Defaults()
	err := s.ApplyFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestApplyFlags_Override(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.ApplyFile(writeConfig(t, "[zterm]\ntheme=zt_light\nautohide=autohide")))

	s.ApplyFlags(FlagOverrides{
		Theme:      strptr("zt_blue"),
		ColorDepth: strptr("24bit"),
		Explore:    true,
	})

	// Flags beat the config file; untouched fields keep file values.
	assert.Equal(t, Option{Value: "zt_blue", Source: FromCLI}, s.Theme)
	assert.Equal(t, Option{Value: "autohide", Source: FromConfig}, s.Autohide)
	assert.Equal(t, Option{Value: "24bit", Source: FromCLI}, s.ColorDepth)
	assert.True(t, s.Explore)
}

func TestApplyFlags_NilMeansUnset(t *testing.T) {
	s := Defaults()

	s.ApplyFlags(FlagOverrides{})

	assert.Equal(t, Default, s.Theme.Source)
	assert.Equal(t, Default, s.Autohide.Source)
	assert.Equal(t, Default, s.ColorDepth.Source)
}
