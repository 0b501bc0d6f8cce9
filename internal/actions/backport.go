// Package actions contains the top-level operations the CLI invokes.
package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"cherrybot.dev/cherrybot/internal/branchutil"
	"cherrybot.dev/cherrybot/internal/config"
	"cherrybot.dev/cherrybot/internal/git"
	"cherrybot.dev/cherrybot/internal/github"
	"cherrybot.dev/cherrybot/internal/output"
	"cherrybot.dev/cherrybot/internal/replay"
)

// BackportOptions wires the collaborators for a backport run.
type BackportOptions struct {
	Config   *config.Config
	Runner   git.Runner
	Client   github.Client
	Reporter *output.Reporter
}

// BackportResult is what a run produced, possibly partially: BranchName and
// Outcome are populated as soon as they are known, so they are available for
// inspection even when the run returns an error.
type BackportResult struct {
	BranchName string
	Outcome    replay.Outcome
	PR         *github.PullRequestInfo
}

// Backport replays the configured commits onto a fresh branch cut from the
// target branch's remote tip and, when the replay fully succeeds, pushes the
// branch and opens a pull request. On conflict or failure the run stops
// without pushing: the local branch is left as-is for manual inspection.
func Backport(ctx context.Context, opts BackportOptions) (*BackportResult, error) {
	cfg := opts.Config
	result := &BackportResult{}

	if err := cfg.Validate(); err != nil {
		return result, err
	}

	owner, repo, err := cfg.OwnerRepo()
	if err != nil {
		return result, err
	}
	commits := cfg.ParseCommits()

	if err := opts.Runner.ConfigureIdentity(ctx, cfg.AuthorName, cfg.AuthorEmail); err != nil {
		return result, err
	}

	log.Info("fetching target branch", "remote", cfg.Remote, "branch", cfg.TargetBranch)
	if err := opts.Runner.Fetch(ctx, cfg.Remote, cfg.TargetBranch); err != nil {
		return result, err
	}
	if err := opts.Runner.CheckoutRemote(ctx, cfg.Remote, cfg.TargetBranch); err != nil {
		return result, err
	}

	branchName := branchutil.Name(cfg.BranchName, cfg.TargetBranch, commits)
	if err := opts.Runner.CreateAndCheckoutBranch(ctx, branchName); err != nil {
		return result, err
	}
	result.BranchName = branchName
	opts.Reporter.Set(output.KeyBranchName, branchName)

	outcome := replay.Replay(ctx, commits, opts.Runner)
	result.Outcome = outcome
	opts.Reporter.Set(output.KeyStatus, string(outcome.Status))

	if outcome.Status != replay.StatusSuccess {
		log.Error("replay stopped", "status", outcome.Status, "commit", outcome.StoppedAtCommit)
		return result, outcome.Err()
	}

	if cfg.DryRun {
		log.Info("dry run, skipping push and pull request", "branch", branchName)
		return result, nil
	}

	log.Info("pushing branch", "branch", branchName)
	if err := opts.Runner.Push(ctx, cfg.Remote, branchName); err != nil {
		return result, err
	}

	title, body := github.ComposePR(ctx, cfg.Title, cfg.Body, cfg.TargetBranch,
		outcome.AppliedCommits, opts.Runner.CommitSubject)

	pr, err := opts.Client.CreatePullRequest(ctx, owner, repo, github.CreatePROptions{
		Title: title,
		Body:  body,
		Head:  branchName,
		Base:  cfg.TargetBranch,
		Draft: cfg.Draft,
	})
	if err != nil {
		return result, err
	}
	result.PR = pr
	opts.Reporter.Set(output.KeyPRURL, pr.HTMLURL)
	opts.Reporter.Set(output.KeyPRNumber, strconv.Itoa(pr.Number))
	log.Info("pull request created", "number", pr.Number, "url", pr.HTMLURL)

	if len(cfg.Labels) > 0 {
		if err := opts.Client.AddLabels(ctx, owner, repo, pr.Number, cfg.Labels); err != nil {
			return result, fmt.Errorf("pull request %d created but labels not attached: %w", pr.Number, err)
		}
	}

	return result, nil
}
