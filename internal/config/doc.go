// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves presentation settings from layered sources.
//
// Each setting carries its provenance so the startup diagnostics can say
// where a value came from. Precedence is fixed: command-line flags beat
// the [zterm] section of the zuliprc file, which beats the shipped
// defaults.
package config
