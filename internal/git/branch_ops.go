package git

import (
	"context"
	"fmt"
)

// ConfigureIdentity sets the committer identity used for replayed commits.
func (r *realRunner) ConfigureIdentity(ctx context.Context, name, email string) error {
	if _, err := r.runner.Run(ctx, "config", "user.name", name); err != nil {
		return fmt.Errorf("failed to set user.name: %w", err)
	}
	if _, err := r.runner.Run(ctx, "config", "user.email", email); err != nil {
		return fmt.Errorf("failed to set user.email: %w", err)
	}
	return nil
}

// Fetch fetches a single branch from the remote.
func (r *realRunner) Fetch(ctx context.Context, remote, branchName string) error {
	_, err := r.runner.Run(ctx, "fetch", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w", branchName, remote, err)
	}
	return nil
}

// CheckoutRemote checks out a local branch positioned at the remote tip of
// branchName, resetting the local branch if it already exists.
func (r *realRunner) CheckoutRemote(ctx context.Context, remote, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", "-B", branchName, remote+"/"+branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout %s/%s: %w", remote, branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch at HEAD.
func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// Push publishes a branch to the remote and sets its upstream.
func (r *realRunner) Push(ctx context.Context, remote, branchName string) error {
	_, err := r.runner.Run(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}
