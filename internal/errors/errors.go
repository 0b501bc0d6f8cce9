// Package errors provides sentinel errors and custom error types for the cherrybot application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrConflict indicates that replaying a commit hit a textual conflict
	ErrConflict = errors.New("cherry-pick conflict")

	// ErrReplayFailed indicates that replaying a commit failed for a non-conflict reason
	ErrReplayFailed = errors.New("cherry-pick failed")

	// ErrNothingToCommit indicates that finalizing a replayed commit found an empty diff
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrValidation indicates invalid or missing caller input
	ErrValidation = errors.New("invalid input")
)

// ValidationError represents a missing or malformed caller-supplied option
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError represents a textual conflict while replaying a commit
type ConflictError struct {
	Commit string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict while cherry-picking commit %s, manual resolution required", e.Commit)
}

// Is returns true if the target error is ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError creates a new ConflictError
func NewConflictError(commit string) *ConflictError {
	return &ConflictError{Commit: commit}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Output returns the combined captured output of the failed command,
// stderr first since git writes its diagnostics there.
func (e *GitCommandError) Output() string {
	switch {
	case e.Stderr != "" && e.Stdout != "":
		return e.Stderr + "\n" + e.Stdout
	case e.Stderr != "":
		return e.Stderr
	default:
		return e.Stdout
	}
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
