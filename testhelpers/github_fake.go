package testhelpers

import (
	"context"
	"fmt"

	"cherrybot.dev/cherrybot/internal/github"
)

// LabelCall records one AddLabels invocation.
type LabelCall struct {
	Owner    string
	Repo     string
	PRNumber int
	Labels   []string
}

// FakeGitHubClient is an in-memory github.Client that records calls.
type FakeGitHubClient struct {
	CreateErr error

	CreatedPRs []github.CreatePROptions
	LabelCalls []LabelCall

	nextNumber int
}

var _ github.Client = (*FakeGitHubClient)(nil)

// CreatePullRequest records the options and returns a synthetic PR.
func (c *FakeGitHubClient) CreatePullRequest(_ context.Context, owner, repo string, opts github.CreatePROptions) (*github.PullRequestInfo, error) {
	if c.CreateErr != nil {
		return nil, c.CreateErr
	}

	c.nextNumber++
	c.CreatedPRs = append(c.CreatedPRs, opts)

	return &github.PullRequestInfo{
		Number:  c.nextNumber,
		HTMLURL: fmt.Sprintf("https://github.com/%s/%s/pull/%d", owner, repo, c.nextNumber),
		Title:   opts.Title,
		Base:    opts.Base,
		Head:    opts.Head,
		Draft:   opts.Draft,
	}, nil
}

// AddLabels records the call.
func (c *FakeGitHubClient) AddLabels(_ context.Context, owner, repo string, prNumber int, labels []string) error {
	c.LabelCalls = append(c.LabelCalls, LabelCall{
		Owner:    owner,
		Repo:     repo,
		PRNumber: prNumber,
		Labels:   append([]string(nil), labels...),
	})
	return nil
}
