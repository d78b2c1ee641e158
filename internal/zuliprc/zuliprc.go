// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// zuliprc.go - Reading and writing the zuliprc credentials file.
//
// File format (fixed layout, plain text):
//
//	[api]
//	email=<login id>
//	key=<api key>
//	site=<server url>
//
// No blank lines, no trailing newline. The same file may additionally
// carry a [zterm] section with presentation settings; that section is
// read by the config package and ignored here.

package zuliprc

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// DefaultFileName is the zuliprc file name under the home directory.
const DefaultFileName = "zuliprc"

// apiSection is the section holding the credential keys.
const apiSection = "api"

// Credentials is one stored identity. All three fields are non-empty
// once persisted by Create; a record loaded from disk may have empty
// fields (the bootstrap decides whether that is usable).
type Credentials struct {
	LoginID   string
	APIKey    string
	ServerURL string
}

// DefaultPath returns the default zuliprc location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the credentials from path.
//
// Failure kinds:
//   - ErrKindNotFound: no file at path (first-run condition)
//   - ErrKindInsecurePermissions: group/other bits set; CurrentMode is
//     populated and the contents are NOT read
//   - ErrKindMalformed: unparsable contents or missing [api] section
func Load(path string) (Credentials, error) {
	ok, mode, err := CheckPermissions(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, &FileError{Kind: ErrKindNotFound, Path: path, Cause: err}
		}
		return Credentials{}, &FileError{Kind: ErrKindIO, Path: path, Cause: err}
	}
	if !ok {
		// SECURITY: refuse to read a file other users could have written.
		return Credentials{}, &FileError{Kind: ErrKindInsecurePermissions, Path: path, CurrentMode: mode}
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return Credentials{}, &FileError{Kind: ErrKindMalformed, Path: path, Cause: err}
	}
	if !cfg.HasSection(apiSection) {
		return Credentials{}, &FileError{
			Kind:  ErrKindMalformed,
			Path:  path,
			Cause: fmt.Errorf("missing [%s] section", apiSection),
		}
	}

	sec := cfg.Section(apiSection)
	return Credentials{
		LoginID:   sec.Key("email").String(),
		APIKey:    sec.Key("key").String(),
		ServerURL: sec.Key("site").String(),
	}, nil
}

// Create persists creds at path with the fixed [api] layout, going
// through SecureCreate so the file never exists with permissions wider
// than 0600. The creation errors (AlreadyExists, PermissionDenied,
// PathNotFound) propagate unchanged; their Error strings are the
// user-facing messages.
func Create(path string, creds Credentials) error {
	f, err := SecureCreate(path)
	if err != nil {
		return err
	}

	contents := fmt.Sprintf("[api]\nemail=%s\nkey=%s\nsite=%s",
		creds.LoginID, creds.APIKey, creds.ServerURL)

	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		os.Remove(path)
		return &FileError{Kind: ErrKindIO, Path: path, Cause: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &FileError{Kind: ErrKindIO, Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Kind: ErrKindIO, Path: path, Cause: err}
	}
	return nil
}
