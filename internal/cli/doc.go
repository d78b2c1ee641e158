// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements the startup sequence of the Zulip TUI.

It parses command-line arguments, locates and validates the zuliprc
credentials file, walks a first-run login flow when no credentials
exist, resolves presentation settings from flags and config, prints the
"Loading with:" diagnostics, and finally hands a connected session
controller to the chat interface.

Exit codes:

	0 - clean exit, including --version, --help and --list-themes
	1 - any startup failure (insecure zuliprc, create failure,
	    connection failure)
	2 - argument errors, including the --autohide/--no-autohide conflict
*/
package cli
