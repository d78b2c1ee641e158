// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection and interactive prompts.
//
// USABILITY: TTY detection for proper terminal handling

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTTY returns true if stdin is a terminal.
// Use this to determine if interactive prompts are possible.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var inputReader = bufio.NewReader(os.Stdin)

// StyledInput prints the prompt in blue and reads one line of input.
func StyledInput(prompt string) (string, error) {
	fmt.Print(InColor(ColorBlue, prompt))
	line, err := inputReader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword reads sensitive input without echoing.
// Uses golang.org/x/term for secure cross-platform input.
func PromptPassword(prompt string) (string, error) {
	fmt.Print(InColor(ColorBlue, prompt))
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(passBytes)), nil
}
