package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strconv"
	"time"

	"github.com/averycrespi/misc-mcp/pkg/types"
)

const (
	defaultStringsPath    = "strings"
	defaultStringsTimeout = 30 * time.Second
	// Bounds how long output pipes are drained after the process is killed
	waitDelay = time.Second
)

var _ types.StringsExtractor = &ExecExtractor{}

// ExecExtractor runs an external strings binary to extract printable runs
type ExecExtractor struct {
	stringsPath string
	timeout     time.Duration
}

// NewExecExtractor creates an extractor for the given binary and timeout
func NewExecExtractor(stringsPath string, timeout time.Duration) *ExecExtractor {
	if stringsPath == "" {
		stringsPath = defaultStringsPath
	}
	if timeout <= 0 {
		timeout = defaultStringsTimeout
	}

	slog.Debug("Creating strings extractor", "strings_path", stringsPath, "timeout", timeout)

	return &ExecExtractor{
		stringsPath: stringsPath,
		timeout:     timeout,
	}
}

// Extract runs `<strings> -n <minLength> <filePath>` and returns its output lines
func (e *ExecExtractor) Extract(ctx context.Context, filePath string, minLength int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.stringsPath, "-n", strconv.Itoa(minLength), filePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	slog.Debug("Running strings command", "args", cmd.Args)

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Error("Strings command timed out", "file_path", filePath, "timeout", e.timeout)
		return nil, &Error{Kind: KindTimeout, Path: filePath, Detail: e.timeout.String(), Err: ctx.Err()}
	}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			slog.Debug("Strings command exited with error",
				"exit_code", exitErr.ExitCode(),
				"stderr", stderr.String())
			return nil, &Error{Kind: KindExternalToolFailure, Path: filePath, Detail: stderr.String(), Err: err}
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return nil, &Error{
				Kind:   KindExternalToolFailure,
				Path:   filePath,
				Detail: fmt.Sprintf("executable %q not found", e.stringsPath),
				Err:    err,
			}
		default:
			return nil, newError(KindGeneric, filePath, fmt.Errorf("failed to run strings command: %w", err))
		}
	}

	lines := splitLines(stdout.String())
	slog.Debug("Strings command completed", "file_path", filePath, "lines", len(lines))

	return lines, nil
}
