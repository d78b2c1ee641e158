// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// permissions.go - Permission-bit inspection and secure file creation.
//
// SECURITY: Permission bits are fixed at creation time, never afterwards.
//
// Creating a file and then chmod'ing it leaves a window during which the
// file exists with the process umask's (possibly world-readable) mode.
// SecureCreate eliminates that window by passing 0600 directly to the
// exclusive open call, so there is no instant at which the credentials
// file is broader than owner read/write.

package zuliprc

import (
	"errors"
	"io/fs"
	"os"
)

// secureMode is the only acceptable permission set for a zuliprc file:
// owner read/write, nothing for group or other.
const secureMode os.FileMode = 0o600

// groupOtherBits masks every permission bit outside the owner triplet.
const groupOtherBits os.FileMode = 0o077

// CheckPermissions stats path and reports whether its permission bits are
// acceptable. ok is true iff no group or other bit is set. currentMode is
// the symbolic mode string (e.g. "-rw-rw-r--") for use in diagnostics.
// The file contents are not touched.
func CheckPermissions(path string) (ok bool, currentMode string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, "", err
	}
	mode := info.Mode()
	return mode.Perm()&groupOtherBits == 0, mode.String(), nil
}

// SecureCreate creates path exclusively with owner-only read/write
// permissions. An existing file is a distinct, recoverable condition
// (ErrKindAlreadyExists) and is never overwritten; two processes racing
// on the same path are safe because exactly one open can succeed.
//
// The caller owns the returned handle and must close it.
func SecureCreate(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, secureMode)
	if err != nil {
		return nil, &FileError{Kind: createErrorKind(err), Path: path, Cause: err}
	}
	return f, nil
}

// createErrorKind maps an exclusive-create failure to its error kind.
func createErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrExist):
		return ErrKindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrKindPermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		// The open itself targeted a new file, so a not-exist error can
		// only mean a missing ancestor directory.
		return ErrKindPathNotFound
	default:
		return ErrKindIO
	}
}
