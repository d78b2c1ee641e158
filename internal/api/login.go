// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// login.go - login identifier label resolution and interactive login.

package api

import "context"

// Login identifier labels, chosen from the realm's authentication settings.
const (
	LabelEmail           = "Email"
	LabelEmailOrUsername = "Email or Username"
	LabelUsername        = "Username"
)

// ResolveLabel maps a realm's authentication settings to the label shown
// when asking the user for their login identifier.
//
// When the realm requires email-format usernames the label is always
// "Email", regardless of whether email authentication is enabled.
func ResolveLabel(settings ServerSettings) string {
	if settings.RequireEmailFormatUsernames {
		return LabelEmail
	}
	if settings.EmailAuthEnabled {
		return LabelEmailOrUsername
	}
	return LabelUsername
}

// PromptFunc asks the user a question and returns their answer.
// It is injected so the login flow can be tested without a terminal.
type PromptFunc func(prompt string) (string, error)

// GetLoginID fetches the realm's settings, resolves the identifier label,
// and prompts the user for their login identifier with it.
func GetLoginID(ctx context.Context, client *Client, prompt PromptFunc) (string, error) {
	settings, err := client.GetServerSettings(ctx)
	if err != nil {
		return "", err
	}
	return prompt(ResolveLabel(settings) + ": ")
}
