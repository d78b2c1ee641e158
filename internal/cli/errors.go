// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - exit codes and startup error reporting.
//
// ERROR HANDLING: every startup failure goes through ExitWithError so
// the red formatting and exit codes stay consistent.

package cli

import (
	"fmt"
	"io"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a startup-level failure
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
)

// =============================================================================
// USAGE ERRORS
// =============================================================================

// UsageError is an argument parsing failure. It is reported on stderr
// and exits with ExitUsageError.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// =============================================================================
// ERROR REPORTING
// =============================================================================

// ExitWithError prints the message in red to out, optionally followed by
// a plain helper line, and returns the exit code for the caller to pass
// to os.Exit. Startup errors go to stdout so they interleave correctly
// with the diagnostics already printed there.
func ExitWithError(out io.Writer, message, helperText string, code int) int {
	fmt.Fprintln(out, InColor(ColorRed, message))
	if helperText != "" {
		fmt.Fprintln(out, helperText)
	}
	return code
}
