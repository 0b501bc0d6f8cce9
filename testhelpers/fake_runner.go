package testhelpers

import (
	"context"
	"errors"
	"fmt"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
	"cherrybot.dev/cherrybot/internal/git"
)

// FakeRunner is a scripted git.Runner for tests that do not need a real
// repository. Per-commit behavior is configured up front; every call is
// recorded.
type FakeRunner struct {
	// ConflictCommits apply with conflict markers left in the tree.
	ConflictCommits map[string]bool
	// FailCommits apply with a non-conflict failure and the given output.
	FailCommits map[string]string
	// EmptyCommits finalize to "nothing to commit".
	EmptyCommits map[string]bool
	// FinalizeFailCommits fail at the finalize step with the given output.
	FinalizeFailCommits map[string]string
	// Subjects maps commit refs to subject lines for CommitSubject.
	Subjects map[string]string

	// Error injection for infrastructure steps.
	FetchErr error
	PushErr  error

	// Recorded state.
	Applied         []string
	CommitMessages  []string
	AbortCalls      int
	FetchedBranches []string
	Checkouts       []string
	CreatedBranches []string
	PushedBranches  []string
	IdentityName    string
	IdentityEmail   string

	workingDir string
	staged     string
	inConflict bool
}

var _ git.Runner = (*FakeRunner)(nil)

func (f *FakeRunner) ConfigureIdentity(_ context.Context, name, email string) error {
	f.IdentityName = name
	f.IdentityEmail = email
	return nil
}

func (f *FakeRunner) Fetch(_ context.Context, remote, branchName string) error {
	if f.FetchErr != nil {
		return f.FetchErr
	}
	f.FetchedBranches = append(f.FetchedBranches, remote+"/"+branchName)
	return nil
}

func (f *FakeRunner) CheckoutRemote(_ context.Context, remote, branchName string) error {
	f.Checkouts = append(f.Checkouts, remote+"/"+branchName)
	return nil
}

func (f *FakeRunner) CreateAndCheckoutBranch(_ context.Context, branchName string) error {
	f.CreatedBranches = append(f.CreatedBranches, branchName)
	return nil
}

func (f *FakeRunner) Push(_ context.Context, _, branchName string) error {
	if f.PushErr != nil {
		return f.PushErr
	}
	f.PushedBranches = append(f.PushedBranches, branchName)
	return nil
}

func (f *FakeRunner) CherryPickNoCommit(_ context.Context, commitRef string) error {
	if f.ConflictCommits[commitRef] {
		f.inConflict = true
		return cherryboterrors.NewGitCommandError("git", []string{"cherry-pick", "-n", commitRef},
			"", fmt.Sprintf("error: could not apply %s", commitRef), errors.New("exit status 1"))
	}
	if output, ok := f.FailCommits[commitRef]; ok {
		return cherryboterrors.NewGitCommandError("git", []string{"cherry-pick", "-n", commitRef},
			"", output, errors.New("exit status 128"))
	}
	f.staged = commitRef
	return nil
}

func (f *FakeRunner) CommitStaged(_ context.Context, message string) error {
	if f.EmptyCommits[f.staged] {
		return cherryboterrors.ErrNothingToCommit
	}
	if output, ok := f.FinalizeFailCommits[f.staged]; ok {
		return errors.New(output)
	}
	f.Applied = append(f.Applied, f.staged)
	f.CommitMessages = append(f.CommitMessages, message)
	return nil
}

func (f *FakeRunner) CherryPickAbort(_ context.Context) error {
	f.AbortCalls++
	f.inConflict = false
	return nil
}

func (f *FakeRunner) StatusEntries(_ context.Context) ([]git.StatusEntry, error) {
	if f.inConflict {
		return []git.StatusEntry{{Code: "UU", Path: "conflicted.txt"}}, nil
	}
	return nil, nil
}

func (f *FakeRunner) CommitSubject(_ context.Context, commitRef string) (string, error) {
	if subject, ok := f.Subjects[commitRef]; ok {
		return subject, nil
	}
	return "", fmt.Errorf("unknown commit %s", commitRef)
}

func (f *FakeRunner) SetWorkingDir(dir string) { f.workingDir = dir }
func (f *FakeRunner) GetWorkingDir() string    { return f.workingDir }
