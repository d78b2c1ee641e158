// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for talking to a Zulip server.
//
// It covers the small surface the bootstrap needs before a session starts:
// fetching the server's authentication settings, resolving the login
// identifier label from them, and exchanging a login identifier plus
// password for an API key. The full messaging API is driven by the session
// controller once a connection is established.
package api
