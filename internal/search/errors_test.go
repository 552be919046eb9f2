package search

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "Not found",
			err:      &Error{Kind: KindNotFound, Path: "/data/x.bin"},
			expected: "Error: file does not exist - /data/x.bin",
		},
		{
			name:     "Not a file",
			err:      &Error{Kind: KindNotAFile, Path: "/data"},
			expected: "Error: not a valid file - /data",
		},
		{
			name:     "Permission denied",
			err:      &Error{Kind: KindPermissionDenied, Path: "/root/secret"},
			expected: "Error: permission denied reading file - /root/secret",
		},
		{
			name:     "External tool failure",
			err:      &Error{Kind: KindExternalToolFailure, Detail: "strings: bad"},
			expected: "strings command failed: strings: bad",
		},
		{
			name:     "Timeout",
			err:      &Error{Kind: KindTimeout, Detail: "30s"},
			expected: "Error: strings command timed out after 30s",
		},
		{
			name:     "Generic with wrapped error",
			err:      &Error{Kind: KindGeneric, Err: errors.New("disk on fire")},
			expected: "Search failed: disk on fire",
		},
		{
			name:     "Generic without detail",
			err:      &Error{Kind: KindGeneric},
			expected: "Search failed: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &Error{Kind: KindTimeout})
	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.Equal(t, KindGeneric, KindOf(errors.New("plain")))
	assert.Equal(t, KindGeneric, KindOf(nil))
}

func TestErrorUnwrap(t *testing.T) {
	err := newError(KindNotFound, "/x", os.ErrNotExist)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "permission_denied", KindPermissionDenied.String())
	assert.Equal(t, "external_tool_failure", KindExternalToolFailure.String())
	assert.Equal(t, "generic", Kind(99).String())
}
