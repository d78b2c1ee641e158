// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// controller.go - session controller connecting credentials to the chat UI.

package api

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/zulip-tui/internal/config"
	"github.com/morganforge/zulip-tui/internal/ui/chat"
	"github.com/morganforge/zulip-tui/internal/ui/styles"
	"github.com/morganforge/zulip-tui/internal/zuliprc"
)

// Controller owns a connected session: the authenticated client plus the
// resolved settings the chat UI is built from.
type Controller struct {
	client   *Client
	creds    zuliprc.Credentials
	settings config.Settings
	theme    *styles.Theme
}

// NewController verifies the server is reachable and builds a session
// controller. A *ServerConnectionFailure is returned when the server
// cannot be contacted, so the caller can report it and exit cleanly
// instead of entering the UI.
func NewController(ctx context.Context, creds zuliprc.Credentials, settings config.Settings, theme *styles.Theme) (*Controller, error) {
	client := NewClient(creds.ServerURL)

	// RELIABILITY: probe the server before any terminal takeover so a dead
	// connection surfaces as a plain error line, not a broken UI.
	if _, err := client.GetServerSettings(ctx); err != nil {
		return nil, &ServerConnectionFailure{Detail: err.Error(), Cause: err}
	}

	return &Controller{
		client:   client,
		creds:    creds,
		settings: settings,
		theme:    theme,
	}, nil
}

// Client returns the authenticated API client for the session.
func (c *Controller) Client() *Client {
	return c.client
}

// Run enters the chat interface and blocks until the user quits.
func (c *Controller) Run() error {
	model := chat.New(chat.Config{
		ServerURL:  c.creds.ServerURL,
		LoginID:    c.creds.LoginID,
		Theme:      c.theme,
		Autohide:   c.settings.Autohide.Value == config.AutohideOn,
		Footlinks:  c.settings.Footlinks.Value == config.FootlinksEnabled,
		ColorDepth: c.settings.ColorDepth.Value,
		Explore:    c.settings.Explore,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
