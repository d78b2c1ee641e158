// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - layered settings with provenance tracking.

package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/morganforge/zulip-tui/internal/ui/styles"
)

// =============================================================================
// PROVENANCE
// =============================================================================

// Provenance records which layer a setting's value came from.
type Provenance int

const (
	// Default is the shipped value, used when no other layer set one.
	Default Provenance = iota
	// FromConfig means the [zterm] section of the zuliprc file.
	FromConfig
	// FromCLI means a command-line flag.
	FromCLI
)

// String returns the phrasing used in the startup diagnostics.
func (p Provenance) String() string {
	switch p {
	case FromCLI:
		return "specified on command line"
	case FromConfig:
		return "specified in config file"
	default:
		return "specified with no config"
	}
}

// =============================================================================
// SETTINGS
// =============================================================================

// Setting values for the enumerated options.
const (
	AutohideOn  = "autohide"
	AutohideOff = "no_autohide"

	FootlinksEnabled  = "enabled"
	FootlinksDisabled = "disabled"
)

// ValidColorDepths are the depths the --color-depth flag accepts.
var ValidColorDepths = []string{"1", "16", "256", "24bit"}

// Option is a single setting value plus where it came from.
type Option struct {
	Value  string
	Source Provenance
}

// Set overwrites the option. Later layers call this in precedence order,
// so the last Set wins.
func (o *Option) Set(value string, source Provenance) {
	o.Value = value
	o.Source = source
}

// Settings is the resolved presentation configuration handed to the
// session. Built once during bootstrap, immutable afterward.
type Settings struct {
	Theme      Option
	Autohide   Option
	Footlinks  Option
	ColorDepth Option

	// Explore opens the session read-only; nothing is marked read.
	Explore bool
}

// Defaults returns the shipped configuration.
func Defaults() Settings {
	return Settings{
		Theme:      Option{Value: styles.DefaultTheme, Source: Default},
		Autohide:   Option{Value: AutohideOff, Source: Default},
		Footlinks:  Option{Value: FootlinksEnabled, Source: Default},
		ColorDepth: Option{Value: "256", Source: Default},
	}
}

// =============================================================================
// CONFIG FILE LAYER
// =============================================================================

// zterm settings recognized in the config file. Unknown keys are ignored
// so newer config files keep working with older binaries.
const ztermSection = "zterm"

// ApplyFile layers the [zterm] section of the zuliprc file onto the
// settings. A file without a [zterm] section leaves them untouched.
// The [api] section is handled separately by the credentials loader;
// permission checks have already happened by the time this runs.
func (s *Settings) ApplyFile(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	section, err := cfg.GetSection(ztermSection)
	if err != nil {
		return nil
	}

	if section.HasKey("theme") {
		s.Theme.Set(section.Key("theme").String(), FromConfig)
	}
	if section.HasKey("autohide") {
		s.Autohide.Set(section.Key("autohide").String(), FromConfig)
	}
	if section.HasKey("footlinks") {
		s.Footlinks.Set(section.Key("footlinks").String(), FromConfig)
	}
	if section.HasKey("color-depth") {
		s.ColorDepth.Set(section.Key("color-depth").String(), FromConfig)
	}
	return nil
}

// =============================================================================
// FLAG LAYER
// =============================================================================

// FlagOverrides carries the settings-relevant command-line flags. Nil
// pointers mean the flag was not given. Footlinks has no flag; it is
// config-file only.
type FlagOverrides struct {
	Theme      *string
	Autohide   *string
	ColorDepth *string
	Explore    bool
}

// ApplyFlags layers command-line flags onto the settings. Flags are the
// final layer and always win.
func (s *Settings) ApplyFlags(flags FlagOverrides) {
	if flags.Theme != nil {
		s.Theme.Set(*flags.Theme, FromCLI)
	}
	if flags.Autohide != nil {
		s.Autohide.Set(*flags.Autohide, FromCLI)
	}
	if flags.ColorDepth != nil {
		s.ColorDepth.Set(*flags.ColorDepth, FromCLI)
	}
	s.Explore = flags.Explore
}
