// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Discriminated error kinds for zuliprc file operations.
//
// ERROR HANDLING: Errors must not be silently ignored
//
// Every filesystem failure mode gets its own kind so that callers can
// match exhaustively instead of probing error strings. The bootstrap
// layer terminates on the first error it sees, so each kind maps to
// exactly one user-facing message.

package zuliprc

import "fmt"

// ErrorKind categorizes zuliprc file errors for handling.
type ErrorKind int

const (
	// ErrKindNotFound means no zuliprc exists at the path.
	// This is the recoverable first-run condition, not a failure.
	ErrKindNotFound ErrorKind = iota
	// ErrKindAlreadyExists means exclusive creation found an existing file.
	ErrKindAlreadyExists
	// ErrKindPermissionDenied means the target directory was not writable.
	ErrKindPermissionDenied
	// ErrKindPathNotFound means an ancestor directory is missing.
	ErrKindPathNotFound
	// ErrKindInsecurePermissions means the file grants group/other access.
	ErrKindInsecurePermissions
	// ErrKindMalformed means the file contents could not be parsed.
	ErrKindMalformed
	// ErrKindIO covers any other filesystem failure.
	ErrKindIO
)

// String returns the kind name used in user-facing error lines.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "NotFound"
	case ErrKindAlreadyExists:
		return "AlreadyExists"
	case ErrKindPermissionDenied:
		return "PermissionDenied"
	case ErrKindPathNotFound:
		return "PathNotFound"
	case ErrKindInsecurePermissions:
		return "InsecurePermissions"
	case ErrKindMalformed:
		return "Malformed"
	default:
		return "IOError"
	}
}

// FileError is the error type for all zuliprc file operations.
type FileError struct {
	Kind ErrorKind

	// Path is the zuliprc path the operation targeted.
	Path string

	// CurrentMode holds the symbolic permission string (e.g. "-rw-rw-r--")
	// when Kind is ErrKindInsecurePermissions.
	CurrentMode string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case ErrKindNotFound:
		return fmt.Sprintf("zuliprc not found at %s", e.Path)
	case ErrKindAlreadyExists:
		return fmt.Sprintf("zuliprc already exists at %s", e.Path)
	case ErrKindInsecurePermissions:
		return fmt.Sprintf("zuliprc at %s has insecure permissions %s", e.Path, e.CurrentMode)
	case ErrKindMalformed:
		if e.Cause != nil {
			return fmt.Sprintf("unable to parse zuliprc at %s: %v", e.Path, e.Cause)
		}
		return fmt.Sprintf("unable to parse zuliprc at %s", e.Path)
	default:
		// Creation failures share one format so the bootstrap can print
		// them verbatim: "<Kind>: zuliprc could not be created at <path>".
		return fmt.Sprintf("%s: zuliprc could not be created at %s", e.Kind, e.Path)
	}
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of err if it is a *FileError, or ErrKindIO.
func KindOf(err error) ErrorKind {
	if fe, ok := err.(*FileError); ok {
		return fe.Kind
	}
	return ErrKindIO
}

// IsNotFound reports whether err is a zuliprc-missing error.
func IsNotFound(err error) bool {
	fe, ok := err.(*FileError)
	return ok && fe.Kind == ErrKindNotFound
}
