package search

import (
	"errors"
	"fmt"
)

// Kind classifies a search failure
type Kind int

const (
	KindGeneric Kind = iota
	KindNotFound
	KindNotAFile
	KindPermissionDenied
	KindExternalToolFailure
	KindTimeout
)

var kindNames = map[Kind]string{
	KindGeneric:             "generic",
	KindNotFound:            "not_found",
	KindNotAFile:            "not_a_file",
	KindPermissionDenied:    "permission_denied",
	KindExternalToolFailure: "external_tool_failure",
	KindTimeout:             "timeout",
}

// String returns the snake_case name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindGeneric]
}

// Error is returned by every search operation. Its message is the
// user-facing text shown by the tools.
type Error struct {
	Kind   Kind
	Path   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("Error: file does not exist - %s", e.Path)
	case KindNotAFile:
		return fmt.Sprintf("Error: not a valid file - %s", e.Path)
	case KindPermissionDenied:
		return fmt.Sprintf("Error: permission denied reading file - %s", e.Path)
	case KindExternalToolFailure:
		return fmt.Sprintf("strings command failed: %s", e.detail())
	case KindTimeout:
		return fmt.Sprintf("Error: strings command timed out after %s", e.Detail)
	default:
		return fmt.Sprintf("Search failed: %s", e.detail())
	}
}

func (e *Error) detail() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindGeneric if err is not a search error
func KindOf(err error) Kind {
	var searchErr *Error
	if errors.As(err, &searchErr) {
		return searchErr.Kind
	}
	return KindGeneric
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func genericError(format string, args ...any) *Error {
	return &Error{Kind: KindGeneric, Detail: fmt.Sprintf(format, args...)}
}
