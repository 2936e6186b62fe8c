package workspace

import (
	"errors"
	"fmt"
)

// Error kind codes surfaced in results.
const (
	CodeNotFound         = "not_found"
	CodeInvalidArgument  = "invalid_argument"
	CodeAlreadyExists    = "already_exists"
	CodePermissionDenied = "permission_denied"
	CodeDecodeError      = "decode_error"
	CodeIOError          = "io_error"
)

// Coder is implemented by errors that carry a stable kind code.
type Coder interface {
	error
	Code() string
}

// CodeOf returns the kind code of err, or CodeIOError for unclassified
// failures.
func CodeOf(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeIOError
}

// NotFoundError indicates the referenced file or directory is absent.
type NotFoundError struct {
	Path string
	Kind string // "file", "directory", or "path"
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case "directory":
		return fmt.Sprintf("directory '%s' does not exist in workspace", e.Path)
	case "file":
		return "file not found"
	default:
		return fmt.Sprintf("'%s' not found in workspace", e.Path)
	}
}

func (e *NotFoundError) Code() string { return CodeNotFound }

// WrongTypeError indicates the path exists but is the wrong kind of entry.
type WrongTypeError struct {
	Path    string
	Message string
}

func (e *WrongTypeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("'%s' is not the expected entry type", e.Path)
}

func (e *WrongTypeError) Code() string { return CodeInvalidArgument }

// AlreadyExistsError indicates a create target is already present.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("'%s' already exists", e.Path)
}

func (e *AlreadyExistsError) Code() string { return CodeAlreadyExists }

// OutsideWorkspaceError indicates a path escapes the workspace boundary.
type OutsideWorkspaceError struct {
	Path string
}

func (e *OutsideWorkspaceError) Error() string {
	return fmt.Sprintf("path '%s' is outside the workspace", e.Path)
}

func (e *OutsideWorkspaceError) Code() string { return CodePermissionDenied }

// RootDeletionError guards the workspace root against deletion.
type RootDeletionError struct{}

func (e *RootDeletionError) Error() string {
	return "cannot delete workspace root"
}

func (e *RootDeletionError) Code() string { return CodePermissionDenied }

// DecodeError indicates file content is not valid UTF-8 text.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file '%s' is not valid UTF-8 text", e.Path)
}

func (e *DecodeError) Code() string { return CodeDecodeError }

// IOError wraps an unclassified filesystem failure.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *IOError) Unwrap() error { return e.Cause }

func (e *IOError) Code() string { return CodeIOError }
