package git

import "context"

// Runner defines the repository operations consumed by the replay engine
// and the backport action. This allows the engine to be used with both real
// git and mock implementations.
type Runner interface {
	// Identity and remote state
	ConfigureIdentity(ctx context.Context, name, email string) error
	Fetch(ctx context.Context, remote, branchName string) error
	CheckoutRemote(ctx context.Context, remote, branchName string) error

	// Branch management
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error
	Push(ctx context.Context, remote, branchName string) error

	// Replay operations
	CherryPickNoCommit(ctx context.Context, commitRef string) error
	CommitStaged(ctx context.Context, message string) error
	CherryPickAbort(ctx context.Context) error
	StatusEntries(ctx context.Context) ([]StatusEntry, error)

	// Commit information
	CommitSubject(ctx context.Context, commitRef string) (string, error)

	// Runner state
	SetWorkingDir(dir string)
	GetWorkingDir() string
}

// NewRealRunner returns a standard implementation of Runner that shells out
// to git in the current working directory.
func NewRealRunner() Runner {
	return &realRunner{runner: NewCommandRunner("")}
}

// NewRealRunnerWithDir returns a standard implementation of Runner that
// shells out to git in a specific directory.
func NewRealRunnerWithDir(dir string) Runner {
	return &realRunner{runner: NewCommandRunner(dir)}
}

// realRunner implements Runner on top of CommandRunner and go-git.
type realRunner struct {
	runner *CommandRunner
}

func (r *realRunner) SetWorkingDir(dir string) {
	r.runner.SetWorkingDir(dir)
}

func (r *realRunner) GetWorkingDir() string {
	return r.runner.GetWorkingDir()
}
