// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// run.go - the startup sequence: flags to connected session.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/morganforge/zulip-tui/internal/api"
	"github.com/morganforge/zulip-tui/internal/config"
	"github.com/morganforge/zulip-tui/internal/logging"
	"github.com/morganforge/zulip-tui/internal/ui/styles"
	"github.com/morganforge/zulip-tui/internal/zuliprc"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Hooks for tests; the defaults talk to the real terminal and server.
var (
	styledInput    = StyledInput
	promptPassword = PromptPassword
	newController  = defaultNewController
)

// sessionRunner is the part of the session controller the startup
// sequence needs after construction succeeds.
type sessionRunner interface {
	Run() error
}

func defaultNewController(ctx context.Context, creds zuliprc.Credentials, settings config.Settings, theme *styles.Theme) (sessionRunner, error) {
	return api.NewController(ctx, creds, settings, theme)
}

// Main runs the startup sequence against the real terminal and returns
// the process exit code.
func Main(argv []string) int {
	return Run(argv, os.Stdout, os.Stderr)
}

// Run is the full startup sequence. It writes diagnostics and errors to
// the given writers and returns the exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	args, err := ParseArgs(argv)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitUsageError
	}

	if args.Help {
		fmt.Fprint(stdout, Usage())
		return ExitSuccess
	}
	if args.Version {
		fmt.Fprintln(stdout, "Zulip Terminal "+Version)
		return ExitSuccess
	}

	configFile := args.ConfigFile
	if configFile == "" {
		defaultPath, err := zuliprc.DefaultPath()
		if err != nil {
			return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
		}
		configFile = defaultPath
	}

	// User themes can shadow builtins, so they load before any listing,
	// validation or classification happens.
	registry := styles.BuiltinRegistry()
	themesFile := filepath.Join(filepath.Dir(configFile), styles.UserThemesFileName)
	if err := styles.LoadUserThemes(themesFile, registry); err != nil {
		return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}

	if args.ListThemes {
		printThemeList(stdout, registry)
		return ExitSuccess
	}

	if args.Theme != nil {
		if _, known := registry.Get(*args.Theme); !known {
			return ExitWithError(stdout,
				fmt.Sprintf("Invalid theme '%s' was specified.", *args.Theme),
				availableThemesText(registry), ExitGeneralError)
		}
	}

	if args.Profile {
		stop, err := logging.StartProfile(logging.ProfileFile)
		if err != nil {
			return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
		}
		defer stop()
	}
	if err := logging.Setup(args.Debug, logging.DebugFile); err != nil {
		return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}

	creds, code := ensureCredentials(stdout, configFile)
	if code != ExitSuccess {
		return code
	}

	settings := config.Defaults()
	if err := settings.ApplyFile(configFile); err != nil {
		return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}
	settings.ApplyFlags(config.FlagOverrides{
		Theme:      args.Theme,
		Autohide:   args.Autohide,
		ColorDepth: args.ColorDepth,
		Explore:    args.Explore,
	})

	resolution := styles.Resolve(settings.Theme.Value, registry)
	printDiagnostics(stdout, settings, resolution)

	slog.Info("starting session",
		"server", creds.ServerURL,
		"theme", settings.Theme.Value,
		"explore", settings.Explore)

	theme := styles.NewTheme(resolution.Spec, settings.ColorDepth.Value)
	controller, err := newController(context.Background(), creds, settings, theme)
	if err != nil {
		var connErr *api.ServerConnectionFailure
		if errors.As(err, &connErr) {
			fmt.Fprintln(stdout, InColor(ColorRed,
				fmt.Sprintf("\nError connecting to Zulip server: %s.", connErr.Detail)))
			return ExitGeneralError
		}
		return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}

	if err := controller.Run(); err != nil {
		return ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}
	return ExitSuccess
}

// =============================================================================
// CREDENTIALS
// =============================================================================

// ensureCredentials loads the zuliprc file, walking the first-run login
// flow when it does not exist yet. The returned code is ExitSuccess when
// credentials are available.
func ensureCredentials(stdout io.Writer, path string) (zuliprc.Credentials, int) {
	creds, err := zuliprc.Load(path)
	if err == nil {
		return creds, ExitSuccess
	}

	switch zuliprc.KindOf(err) {
	case zuliprc.ErrKindNotFound:
		return firstRunLogin(stdout, path)
	case zuliprc.ErrKindInsecurePermissions:
		fe := err.(*zuliprc.FileError)
		printInsecurePermissions(stdout, path, fe.CurrentMode)
		return creds, ExitGeneralError
	default:
		return creds, ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}
}

// firstRunLogin previously stored no credentials: ask for the server,
// the login identifier the server wants, and the password, then store
// the fetched API key at path.
func firstRunLogin(stdout io.Writer, path string) (zuliprc.Credentials, int) {
	var creds zuliprc.Credentials

	fmt.Fprintln(stdout, InColor(ColorRed, fmt.Sprintf("zuliprc file was not found at %s", path)))
	fmt.Fprintln(stdout, "Please enter your credentials to login into your Zulip organization.")

	serverURL, err := styledInput("Zulip URL: ")
	if err != nil {
		return creds, ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}
	serverURL = normalizeServerURL(serverURL)

	ctx := context.Background()
	client := api.NewClient(serverURL)

	loginID, err := api.GetLoginID(ctx, client, styledInput)
	if err != nil {
		fmt.Fprintln(stdout, InColor(ColorRed,
			fmt.Sprintf("\nError connecting to Zulip server: %s.", err.Error())))
		return creds, ExitGeneralError
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return creds, ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}

	apiKey, err := client.FetchAPIKey(ctx, loginID, password)
	if err != nil {
		if errors.Is(err, api.ErrAuthFailed) {
			return creds, ExitWithError(stdout, "\nIncorrect Email(or Username) or Password!\n", "", ExitGeneralError)
		}
		fmt.Fprintln(stdout, InColor(ColorRed,
			fmt.Sprintf("\nError connecting to Zulip server: %s.", err.Error())))
		return creds, ExitGeneralError
	}

	creds = zuliprc.Credentials{LoginID: loginID, APIKey: apiKey, ServerURL: serverURL}
	if err := zuliprc.Create(path, creds); err != nil {
		return creds, ExitWithError(stdout, err.Error(), "", ExitGeneralError)
	}
	fmt.Fprintf(stdout, "Generated API key saved at %s\n", path)

	return creds, ExitSuccess
}

// normalizeServerURL fills in the scheme the way a browser address bar
// would: localhost gets plain http, everything else defaults to https.
func normalizeServerURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if strings.HasPrefix(serverURL, "localhost") {
		serverURL = "http://" + serverURL
	} else if !strings.HasPrefix(serverURL, "http") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// printDiagnostics reports each resolved setting and where it came from,
// with theme warnings directly under the theme line.
func printDiagnostics(stdout io.Writer, settings config.Settings, resolution styles.Resolution) {
	fmt.Fprintln(stdout, "Loading with:")
	fmt.Fprintf(stdout, "   theme '%s' %s.\n", settings.Theme.Value, settings.Theme.Source)
	if len(resolution.Warnings) > 0 {
		fmt.Fprintln(stdout, InColor(ColorYellow, strings.Join(resolution.Warnings, "\n")))
	}
	fmt.Fprintf(stdout, "   autohide setting '%s' %s.\n", settings.Autohide.Value, settings.Autohide.Source)
	fmt.Fprintf(stdout, "   footlinks setting '%s' %s.\n", settings.Footlinks.Value, settings.Footlinks.Source)
	fmt.Fprintf(stdout, "   color depth setting '%s' %s.\n", settings.ColorDepth.Value, settings.ColorDepth.Source)
}

func printThemeList(stdout io.Writer, registry *styles.Registry) {
	complete, _ := styles.Classify(registry)
	completeSet := make(map[string]bool, len(complete))
	for _, name := range complete {
		completeSet[name] = true
	}

	fmt.Fprintln(stdout, "The following themes are available:")
	for _, name := range registry.Names() {
		suffix := ""
		if !completeSet[name] {
			suffix = " [incomplete]"
		}
		fmt.Fprintf(stdout, "  %s%s\n", name, suffix)
	}
}

func availableThemesText(registry *styles.Registry) string {
	return "The following themes are available: " + strings.Join(registry.Names(), ", ") + "."
}

// printInsecurePermissions explains how to lock the zuliprc file down.
// The whole block is red; credentials in a group or world accessible
// file should be treated as leaked.
func printInsecurePermissions(stdout io.Writer, path, currentMode string) {
	fmt.Fprintln(stdout, InColor(ColorRed,
		"ERROR: Please ensure your zuliprc is NOT publicly accessible:\n"+
			"  "+path+"\n"+
			"(it currently has permissions '"+currentMode+"')\n"+
			"This can often be achieved with a command such as:\n"+
			"  chmod og-rwx "+path+"\n"+
			"Consider regenerating the [api] part of your zuliprc to ensure your account is secure."))
}
