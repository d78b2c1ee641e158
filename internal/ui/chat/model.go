// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat view the bootstrap hands a
// connected session to.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/morganforge/zulip-tui/internal/ui/styles"
)

// Config carries everything the bootstrap resolved for the session.
type Config struct {
	ServerURL string
	LoginID   string
	Theme     *styles.Theme

	Autohide   bool
	Footlinks  bool
	ColorDepth string

	// Explore disables anything that would write back to the server.
	Explore bool
}

// Model is the Bubble Tea model for the chat view.
type Model struct {
	config Config
	theme  *styles.Theme

	width  int
	height int
	ready  bool

	// Sidebar visibility, driven by the autohide setting.
	sidebarVisible bool

	viewport viewport.Model
	input    textinput.Model
}

// New builds the chat model from the resolved session configuration.
func New(config Config) Model {
	input := textinput.New()
	input.Placeholder = "Message"
	input.Focus()

	return Model{
		config:         config,
		theme:          config.Theme,
		sidebarVisible: !config.Autohide,
		input:          input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting to " + m.config.ServerURL + "..."
	}

	var b strings.Builder
	title := m.config.ServerURL
	if m.config.Explore {
		title += " (explore mode)"
	}
	// Narrow terminals get a truncated title rather than a wrapped one.
	title = runewidth.Truncate(title, m.width, "…")
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render(fmt.Sprintf(" %s ", m.config.LoginID)))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	return b.String()
}
