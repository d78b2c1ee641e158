// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - command-line argument parsing for the startup sequence.

package cli

import (
	"fmt"
	"strings"

	"github.com/morganforge/zulip-tui/internal/config"
)

// Args holds the parsed command-line arguments. Pointer fields are nil
// when their flag was not given, so the settings layers can tell "unset"
// from an explicit value.
type Args struct {
	Theme      *string
	ColorDepth *string
	Autohide   *string // config.AutohideOn or config.AutohideOff

	ConfigFile string

	ListThemes bool
	Debug      bool
	Profile    bool
	Explore    bool
	Version    bool
	Help       bool
}

const usageText = `usage: zulip-term [-h] [--theme THEME] [--list-themes]
                  [--config-file CONFIG_FILE] [--autohide | --no-autohide]
                  [-e] [-d] [--profile] [--color-depth {1,16,256,24bit}]
                  [-v]

Zulip Terminal - a terminal client for Zulip chat

optional arguments:
  --theme THEME, -t THEME
                        choose color theme (default: zt_dark)
  --list-themes         list all the color themes and exit
  --config-file CONFIG_FILE, -c CONFIG_FILE
                        config file used for the client (default: ~/zuliprc)
  --autohide            autohide list of users and streams
  --no-autohide         don't autohide list of users and streams
  -e, --explore         open in explore mode (changes are not sent to server)
  -d, --debug           enable debug logging to debug.log
  --profile             profile runtime to cprofile.log
  --color-depth {1,16,256,24bit}
                        force the color depth (default: 256)
  -v, --version         show version information and exit
  -h, --help            show this help message and exit
`

// Usage returns the help text shown for -h/--help and argument errors.
func Usage() string {
	return usageText
}

// ParseArgs parses argv (without the program name). A *UsageError is
// returned for unknown flags, missing values, invalid choices, and the
// autohide flag conflict; the caller reports it on stderr and exits 2.
func ParseArgs(argv []string) (*Args, error) {
	args := &Args{}

	// Remembered so the conflict error names the second flag against the
	// first, whichever order they were given in.
	firstAutohideFlag := ""

	setAutohide := func(flag, value string) error {
		if firstAutohideFlag != "" && firstAutohideFlag != flag {
			return &UsageError{Message: fmt.Sprintf(
				"error: argument %s: not allowed with argument %s", flag, firstAutohideFlag)}
		}
		firstAutohideFlag = flag
		v := value
		args.Autohide = &v
		return nil
	}

	i := 0
	next := func(flag string) (string, error) {
		if i+1 >= len(argv) {
			return "", &UsageError{Message: fmt.Sprintf("error: argument %s: expected one argument", flag)}
		}
		i++
		return argv[i], nil
	}

	for ; i < len(argv); i++ {
		arg := argv[i]

		// Split --flag=value.
		flag, inline := arg, ""
		hasInline := false
		if strings.HasPrefix(arg, "--") && strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			flag, inline = parts[0], parts[1]
			hasInline = true
		}

		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			return next(flag)
		}

		switch flag {
		case "--theme", "-t":
			v, err := value()
			if err != nil {
				return nil, err
			}
			args.Theme = &v
		case "--color-depth":
			v, err := value()
			if err != nil {
				return nil, err
			}
			if !validColorDepth(v) {
				return nil, &UsageError{Message: fmt.Sprintf(
					"error: argument --color-depth: invalid choice: '%s' (choose from %s)",
					v, quotedChoices(config.ValidColorDepths))}
			}
			args.ColorDepth = &v
		case "--config-file", "-c":
			v, err := value()
			if err != nil {
				return nil, err
			}
			args.ConfigFile = v
		case "--autohide":
			if err := setAutohide("--autohide", config.AutohideOn); err != nil {
				return nil, err
			}
		case "--no-autohide":
			if err := setAutohide("--no-autohide", config.AutohideOff); err != nil {
				return nil, err
			}
		case "--list-themes":
			args.ListThemes = true
		case "--debug", "-d":
			args.Debug = true
		case "--profile":
			args.Profile = true
		case "--explore", "-e":
			args.Explore = true
		case "--version", "-v":
			args.Version = true
		case "--help", "-h":
			args.Help = true
		default:
			return nil, &UsageError{Message: fmt.Sprintf("error: unrecognized arguments: %s", arg)}
		}
	}

	return args, nil
}

func validColorDepth(v string) bool {
	for _, depth := range config.ValidColorDepths {
		if v == depth {
			return true
		}
	}
	return false
}

func quotedChoices(choices []string) string {
	quoted := make([]string, len(choices))
	for i, c := range choices {
		quoted[i] = "'" + c + "'"
	}
	return strings.Join(quoted, ", ")
}
