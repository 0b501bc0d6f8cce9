// Package replay implements the commit-replay engine: it applies an ordered
// list of commits onto the current branch one at a time and reports a single
// terminal outcome describing how far it got and why it stopped.
package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
	"cherrybot.dev/cherrybot/internal/git"
)

// Status is the terminal state of a replay run.
type Status string

const (
	// StatusSuccess means every commit in the input list was applied.
	StatusSuccess Status = "success"

	// StatusConflict means a commit hit a textual conflict. The in-progress
	// apply was aborted and no further commits were attempted.
	StatusConflict Status = "conflict"

	// StatusFailed means a commit failed to apply or finalize for a
	// non-conflict reason.
	StatusFailed Status = "failed"
)

// Outcome is the result of attempting to replay an ordered commit list.
// AppliedCommits is always a prefix of the input order: the engine never
// reorders, skips or retries a commit. StoppedAtCommit and Diagnostic are
// set iff Status is not StatusSuccess.
type Outcome struct {
	Status          Status
	AppliedCommits  []string
	StoppedAtCommit string
	Diagnostic      string
}

func successOutcome(applied []string) Outcome {
	return Outcome{
		Status:         StatusSuccess,
		AppliedCommits: applied,
	}
}

func conflictOutcome(applied []string, stoppedAt string) Outcome {
	return Outcome{
		Status:          StatusConflict,
		AppliedCommits:  applied,
		StoppedAtCommit: stoppedAt,
		Diagnostic:      cherryboterrors.NewConflictError(stoppedAt).Error(),
	}
}

func failedOutcome(applied []string, stoppedAt, diagnostic string) Outcome {
	if diagnostic == "" {
		diagnostic = fmt.Sprintf("cherry-pick of commit %s failed", stoppedAt)
	}
	return Outcome{
		Status:          StatusFailed,
		AppliedCommits:  applied,
		StoppedAtCommit: stoppedAt,
		Diagnostic:      diagnostic,
	}
}

// Err converts a non-success outcome into the matching typed error.
// Returns nil for StatusSuccess.
func (o Outcome) Err() error {
	switch o.Status {
	case StatusConflict:
		return cherryboterrors.NewConflictError(o.StoppedAtCommit)
	case StatusFailed:
		return fmt.Errorf("%w: %s", cherryboterrors.ErrReplayFailed, o.Diagnostic)
	default:
		return nil
	}
}

// CommitMessage is the message recorded for each replayed commit. It names
// the original commit rather than copying its message, so replayed history
// is traceable back to its source.
func CommitMessage(commitRef string) string {
	return fmt.Sprintf("Cherry-pick %s", commitRef)
}

// Replay applies commits in order onto the current branch. The working tree
// must already be positioned on a freshly created branch at the target
// branch's tip; Replay does not create branches.
//
// The run is strictly sequential and stops at the first failure. A textual
// conflict aborts the in-progress apply so the tree ends clean; any other
// apply or finalize failure terminates with the captured git output as the
// diagnostic. A finalize that finds nothing to commit is tolerated: the
// change was already present in the target history, which counts as applied.
func Replay(ctx context.Context, commits []string, runner git.Runner) Outcome {
	applied := make([]string, 0, len(commits))

	for _, commitRef := range commits {
		log.Info("cherry-picking commit", "commit", commitRef)

		if err := runner.CherryPickNoCommit(ctx, commitRef); err != nil {
			return classifyApplyFailure(ctx, runner, applied, commitRef, err)
		}

		err := runner.CommitStaged(ctx, CommitMessage(commitRef))
		switch {
		case err == nil:
			applied = append(applied, commitRef)
		case errors.Is(err, cherryboterrors.ErrNothingToCommit):
			// The change is already a no-op against the target history.
			log.Info("commit already applied, skipping commit record", "commit", commitRef)
			applied = append(applied, commitRef)
		default:
			return failedOutcome(applied, commitRef, err.Error())
		}
	}

	return successOutcome(applied)
}

// classifyApplyFailure distinguishes a textual conflict from any other apply
// failure. Conflicts trigger a best-effort abort so the working tree is
// restored before the run terminates.
func classifyApplyFailure(ctx context.Context, runner git.Runner, applied []string, commitRef string, applyErr error) Outcome {
	entries, statusErr := runner.StatusEntries(ctx)
	if statusErr != nil {
		log.Warn("could not read working tree status after failed apply", "err", statusErr)
		return failedOutcome(applied, commitRef, diagnosticFromError(applyErr))
	}

	if git.HasConflictMarkers(entries) {
		if abortErr := runner.CherryPickAbort(ctx); abortErr != nil {
			log.Warn("failed to abort in-progress cherry-pick", "err", abortErr)
		}
		return conflictOutcome(applied, commitRef)
	}

	return failedOutcome(applied, commitRef, diagnosticFromError(applyErr))
}

// diagnosticFromError prefers the captured git output over the wrapped error
// chain, since that is what a human needs to diagnose the failure.
func diagnosticFromError(err error) string {
	var cmdErr *cherryboterrors.GitCommandError
	if errors.As(err, &cmdErr) {
		if output := cmdErr.Output(); output != "" {
			return output
		}
	}
	return err.Error()
}
