// Package github provides the hosting-platform client used to open review
// requests for replayed branches, and the composer that builds their
// title and body.
package github

import "context"

// PullRequestInfo contains information about a created pull request.
// This is a simplified struct to avoid coupling callers to the go-github
// library.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	Base    string
	Head    string
	Draft   bool
}

// CreatePROptions contains options for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client is an interface for the GitHub API interactions cherrybot needs
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error)

	// AddLabels attaches labels to a pull request in a single call,
	// preserving the given order
	AddLabels(ctx context.Context, owner, repo string, prNumber int, labels []string) error
}
