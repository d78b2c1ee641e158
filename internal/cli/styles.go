// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - colored output for the startup sequence.
//
// The diagnostics printed before the TUI starts use fixed bright ANSI
// codes rather than lipgloss styles: their exact byte sequences are part
// of the startup output contract and must not vary with the detected
// terminal profile.

package cli

// Color names accepted by InColor.
const (
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorCyan   = "cyan"
)

const colorReset = "\033[0m"

var colorCodes = map[string]string{
	ColorRed:    "\033[91m",
	ColorGreen:  "\033[92m",
	ColorYellow: "\033[93m",
	ColorBlue:   "\033[94m",
	ColorPurple: "\033[95m",
	ColorCyan:   "\033[96m",
}

// InColor wraps text in the bright ANSI code for the named color. An
// unknown color name returns the text unchanged.
func InColor(color, text string) string {
	code, ok := colorCodes[color]
	if !ok {
		return text
	}
	return code + text + colorReset
}
