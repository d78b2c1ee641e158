// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the Zulip TUI.

# Theme Registry (registry.go)

Themes are named sets of style definitions held in a Registry that is
built explicitly at startup rather than living in package globals, so
user themes loaded from themes.toml can be registered before the
bootstrap classifies and resolves the requested theme:

	registry := styles.BuiltinRegistry()
	styles.LoadUserThemes(path, registry)
	res := styles.Resolve("zt_dark", registry)

A theme that does not cover every style key the renderer requires is
still usable; resolution flags it as incomplete and suggests complete
alternatives.

# Builtin Themes (builtin.go)

Four themes ship with the application, in registry order:

	zt_dark      - default dark theme
	gruvbox_dark - gruvbox palette on dark
	zt_light     - light terminal theme
	zt_blue      - dark blue background theme

# Rendering Theme (theme.go)

The Theme struct turns a resolved ThemeSpec into Lip Gloss styles and
detects the terminal's color capability at construction:

	theme := styles.NewTheme(spec, colorDepth)
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}
*/
package styles
