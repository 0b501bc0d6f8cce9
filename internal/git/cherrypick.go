package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
)

// CherryPickNoCommit applies a commit's change set to the working tree and
// index without creating a commit record, so the caller can inspect the
// result before finalizing.
func (r *realRunner) CherryPickNoCommit(ctx context.Context, commitRef string) error {
	_, err := r.runner.Run(ctx, "cherry-pick", "-n", commitRef)
	return err
}

// CommitStaged finalizes the staged change set into a commit record.
// Returns ErrNothingToCommit when the staged diff is empty, which happens
// when the replayed change is already present in the target history.
func (r *realRunner) CommitStaged(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "commit", "-m", message)
	if err == nil {
		return nil
	}

	var cmdErr *cherryboterrors.GitCommandError
	if errors.As(err, &cmdErr) {
		output := cmdErr.Output()
		if strings.Contains(output, "nothing to commit") || strings.Contains(output, "nothing added to commit") {
			return cherryboterrors.ErrNothingToCommit
		}
	}
	return fmt.Errorf("failed to commit staged changes: %w", err)
}

// CherryPickAbort aborts an in-progress cherry-pick, restoring the working
// tree to its pre-apply state. Best-effort: callers log failures rather than
// escalating them.
func (r *realRunner) CherryPickAbort(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "cherry-pick", "--abort")
	if err != nil {
		return fmt.Errorf("cherry-pick abort failed: %w", err)
	}
	return nil
}
