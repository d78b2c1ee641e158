// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DebugWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, Setup(true, path))
	slog.Debug("probe message", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe message")
}

func TestSetup_NoDebugWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, Setup(false, path))
	slog.Info("should be discarded")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStartProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cprofile.log")

	stop, err := StartProfile(path)
	require.NoError(t, err)
	stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestStartProfile_BadPath(t *testing.T) {
	_, err := StartProfile(filepath.Join(t.TempDir(), "missing", "cprofile.log"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create profile file")
}
