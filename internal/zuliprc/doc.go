// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package zuliprc manages the on-disk zuliprc credentials file.
//
// The zuliprc file holds the server URL, login identifier, and API key
// used to authenticate without re-prompting. Because the API key grants
// full account access, the file is treated like a private key: it is
// created with owner-only permissions in a single exclusive operation,
// and it is refused outright (never silently repaired) if its permission
// bits grant any group or other access.
//
// SECURITY: A zuliprc readable by other users may have been tampered
// with or leaked; its contents must never be trusted. Load checks
// permission bits before reading a single byte.
package zuliprc
