// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// DefaultMaxCaptureBytes caps how much of a command's stdout or stderr is
// retained. Output beyond the cap is discarded and a truncation marker is
// appended, so pathological output cannot grow memory without bound.
const DefaultMaxCaptureBytes = 10 * 1024 * 1024

// TruncationMarker is appended to captured output that exceeded the cap.
const TruncationMarker = "\n... [output truncated]"

// boundedBuffer collects writes up to a byte limit and drops the rest.
type boundedBuffer struct {
	buf       strings.Builder
	limit     int
	truncated bool
}

func newBoundedBuffer(limit int) *boundedBuffer {
	return &boundedBuffer{limit: limit}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	remaining := b.limit - b.buf.Len()
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		b.buf.Write(p[:remaining])
		b.truncated = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *boundedBuffer) String() string {
	if b.truncated {
		return b.buf.String() + TruncationMarker
	}
	return b.buf.String()
}

var _ io.Writer = (*boundedBuffer)(nil)

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir      string
	maxCaptureBytes int
}

// NewCommandRunner creates a new CommandRunner for the given working directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{
		workingDir:      workingDir,
		maxCaptureBytes: DefaultMaxCaptureBytes,
	}
}

// SetWorkingDir sets the working directory for the runner.
func (r *CommandRunner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

// GetWorkingDir returns the current working directory setting for the runner.
func (r *CommandRunner) GetWorkingDir() string {
	return r.workingDir
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// runInternal is the internal implementation that handles timeouts and capture
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	limit := r.maxCaptureBytes
	if limit <= 0 {
		limit = DefaultMaxCaptureBytes
	}
	stdout := newBoundedBuffer(limit)
	stderr := newBoundedBuffer(limit)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", cherryboterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", cherryboterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
