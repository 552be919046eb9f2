package search

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for strings
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-strings")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExecExtractorSplitsOutput(t *testing.T) {
	script := writeScript(t, `printf 'one\r\ntwo\rthree\n'`)
	target := writeFile(t, "a.bin", []byte("x"))

	lines, err := NewExecExtractor(script, time.Second*5).Extract(context.Background(), target, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestExecExtractorPassesArguments(t *testing.T) {
	script := writeScript(t, `echo "$1 $2 $3"`)
	target := writeFile(t, "a.bin", []byte("x"))

	lines, err := NewExecExtractor(script, time.Second*5).Extract(context.Background(), target, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"-n 7 " + target}, lines)
}

func TestExecExtractorNonZeroExit(t *testing.T) {
	script := writeScript(t, "echo 'fake-strings: bad input' >&2\nexit 1")
	target := writeFile(t, "a.bin", []byte("x"))

	_, err := NewExecExtractor(script, time.Second*5).Extract(context.Background(), target, 4)
	require.Error(t, err)
	assert.Equal(t, KindExternalToolFailure, KindOf(err))
	assert.Equal(t, "strings command failed: fake-strings: bad input\n", err.Error())
}

func TestExecExtractorTimeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5")
	target := writeFile(t, "a.bin", []byte("x"))

	start := time.Now()
	_, err := NewExecExtractor(script, 100*time.Millisecond).Extract(context.Background(), target, 4)
	require.Error(t, err)

	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Equal(t, "Error: strings command timed out after 100ms", err.Error())
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecExtractorMissingBinary(t *testing.T) {
	target := writeFile(t, "a.bin", []byte("x"))

	tests := []struct {
		name string
		path string
	}{
		{name: "Not on PATH", path: "definitely-not-a-real-strings-binary"},
		{name: "Absolute path", path: filepath.Join(t.TempDir(), "missing-strings")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExecExtractor(tt.path, time.Second).Extract(context.Background(), target, 4)
			require.Error(t, err)
			assert.Equal(t, KindExternalToolFailure, KindOf(err))
			assert.Contains(t, err.Error(), "not found")
		})
	}
}

func TestExecExtractorDefaults(t *testing.T) {
	extractor := NewExecExtractor("", 0)
	assert.Equal(t, "strings", extractor.stringsPath)
	assert.Equal(t, 30*time.Second, extractor.timeout)
}

func TestExecExtractorWithRealStrings(t *testing.T) {
	stringsPath, err := exec.LookPath("strings")
	if err != nil {
		t.Skip("strings binary not available")
	}

	content := []byte("\x00\x01\x02hello world\x00\x03\x04FLAG{binary}\x00ab\x00")
	target := writeFile(t, "sample.bin", content)

	report, err := NewStringsSearcher(NewExecExtractor(stringsPath, 10*time.Second), 2).
		Search(context.Background(), target, "FLAG", 4)
	require.NoError(t, err)

	require.Len(t, report.LineMatches, 1)
	assert.Equal(t, "FLAG{binary}", report.LineMatches[0].MatchedLine)
	assert.Equal(t, []string{"hello world"}, report.LineMatches[0].ContextBefore)
}
