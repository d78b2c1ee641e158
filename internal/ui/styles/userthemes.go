// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// userthemes.go - loading extra themes from the user's themes.toml.

package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// UserThemesFileName is looked for next to the zuliprc file.
const UserThemesFileName = "themes.toml"

// userThemeFile mirrors the on-disk layout:
//
//	[my_theme.default]
//	fg = "#EBDBB2"
//	bg = "#282828"
//
// Top-level tables are theme names; nested tables are style keys.
type userStyleDef struct {
	Fg string `toml:"fg"`
	Bg string `toml:"bg"`
}

// LoadUserThemes reads a themes.toml file and registers every theme it
// defines. A missing file is not an error; user themes are optional.
// Registered names shadow builtin themes of the same name, which lets a
// user restyle a shipped theme without renaming it.
func LoadUserThemes(path string, r *Registry) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var raw map[string]map[string]userStyleDef
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
	}

	// TOML table order is not preserved by the map decode, so sort names
	// for a stable registration order.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := make(ThemeSpec, len(raw[name]))
		for key, def := range raw[name] {
			spec[key] = StyleDef{Foreground: def.Fg, Background: def.Bg}
		}
		r.Register(name, spec)
	}
	return nil
}
