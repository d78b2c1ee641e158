// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging wires the debug log file and runtime profiling for the
// --debug and --profile flags.
//
// Log output only exists when debug mode is on; a normal run discards
// everything so the terminal session leaves no files behind.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Default file names, created in the working directory like the rest of
// the client's droppings.
const (
	DebugFile   = "debug.log"
	ProfileFile = "cprofile.log"
)

// Setup installs the default slog logger. With debug off everything is
// discarded; with debug on, text-format records go to path with size
// based rotation.
func Setup(debug bool, path string) error {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))
	slog.Debug("debug logging enabled", "file", path)
	return nil
}

// StartProfile begins a CPU profile written to path. The returned stop
// function flushes and closes the profile; defer it from main.
func StartProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create profile file %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start profiling: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
