// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme.go - rendering theme built from a resolved ThemeSpec.

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components the chat interface renders with.
// It is built once from the resolved theme spec and the negotiated color
// depth, then shared read-only by the UI.
type Theme struct {
	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// BASE STYLES
	// ==========================================================================

	Default  lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Title    lipgloss.Style
	Bar      lipgloss.Style
	Footer   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	MsgSelected lipgloss.Style
	MsgMention  lipgloss.Style
	MsgLink     lipgloss.Style
	MsgQuote    lipgloss.Style
	MsgCode     lipgloss.Style
	MsgBold     lipgloss.Style
	MsgTime     lipgloss.Style

	// ==========================================================================
	// SIDEBAR AND PRESENCE STYLES
	// ==========================================================================

	Name        lipgloss.Style
	Unread      lipgloss.Style
	UnreadCount lipgloss.Style
	Starred     lipgloss.Style
	UserActive  lipgloss.Style
	UserIdle    lipgloss.Style
	UserOffline lipgloss.Style

	// ==========================================================================
	// ERROR STYLES
	// ==========================================================================

	ErrorArea   lipgloss.Style
	SearchError lipgloss.Style
}

// NewTheme builds a rendering theme from a theme spec. The colorDepth
// comes from the resolved settings ("16", "256" or "24bit") and caps the
// detected terminal profile so a user can force a smaller palette.
func NewTheme(spec ThemeSpec, colorDepth string) *Theme {
	profile := termenv.ColorProfile()
	profile = capProfile(profile, colorDepth)

	t := &Theme{
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}

	style := func(key string) lipgloss.Style {
		s := lipgloss.NewStyle()
		def, ok := spec[key]
		if !ok {
			return s
		}
		if def.Foreground != "" {
			s = s.Foreground(lipgloss.Color(def.Foreground))
		}
		if def.Background != "" {
			s = s.Background(lipgloss.Color(def.Background))
		}
		return s
	}

	t.Default = style("default")
	t.Selected = style("selected")
	t.Header = style("header").Bold(true)
	t.Title = style("title").Bold(true)
	t.Bar = style("bar")
	t.Footer = style("footer")

	t.MsgSelected = style("msg_selected")
	t.MsgMention = style("msg_mention").Bold(true)
	t.MsgLink = style("msg_link").Underline(true)
	t.MsgQuote = style("msg_quote").Italic(true)
	t.MsgCode = style("msg_code")
	t.MsgBold = style("msg_bold").Bold(true)
	t.MsgTime = style("msg_time")

	t.Name = style("name")
	t.Unread = style("unread")
	t.UnreadCount = style("unread_count").Bold(true)
	t.Starred = style("starred")
	t.UserActive = style("user_active")
	t.UserIdle = style("user_idle")
	t.UserOffline = style("user_offline")

	t.ErrorArea = style("area:error")
	t.SearchError = style("search_error")

	return t
}

// capProfile limits the detected terminal profile to the color depth the
// user asked for. Detection only ever narrows, never widens: forcing
// "24bit" on a 256-color terminal still yields ANSI256.
func capProfile(detected termenv.Profile, colorDepth string) termenv.Profile {
	var requested termenv.Profile
	switch colorDepth {
	case "1":
		requested = termenv.Ascii
	case "16":
		requested = termenv.ANSI
	case "256":
		requested = termenv.ANSI256
	case "24bit":
		requested = termenv.TrueColor
	default:
		return detected
	}
	// Larger Profile values mean fewer colors in termenv's ordering.
	if requested > detected {
		return requested
	}
	return detected
}

// SetSize records the current terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
