// Package config assembles the caller-facing configuration from flags,
// the ambient CI environment and an optional repo-local defaults file.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
)

// Default bot identity used for replayed commits when the caller does not
// supply one.
const (
	DefaultAuthorName  = "cherrybot"
	DefaultAuthorEmail = "cherrybot@users.noreply.github.com"
	DefaultRemote      = "origin"
)

// Config holds every recognized option for a run. Flag values override
// environment values, which override the defaults file.
type Config struct {
	// Commits is the ordered, comma-separated list of commit refs to replay.
	Commits string `env:"CHERRYBOT_COMMITS"`

	// TargetBranch is the branch the commits are replayed onto.
	TargetBranch string `env:"CHERRYBOT_TARGET_BRANCH"`

	// BranchName is an explicit replay branch name. When empty a unique
	// name is synthesized.
	BranchName string `env:"CHERRYBOT_BRANCH_NAME"`

	// Title and Body override the generated pull request title and body.
	Title string `env:"CHERRYBOT_PR_TITLE"`
	Body  string `env:"CHERRYBOT_PR_BODY"`

	// Token is the hosting-platform access token. It is a secret: it must
	// never be echoed or logged.
	Token string `env:"GITHUB_TOKEN"`

	// Repository is the "owner/name" identifier, defaulting to the value
	// the CI environment provides.
	Repository string `env:"GITHUB_REPOSITORY"`

	AuthorName  string `env:"CHERRYBOT_AUTHOR_NAME"`
	AuthorEmail string `env:"CHERRYBOT_AUTHOR_EMAIL"`

	Remote string `env:"CHERRYBOT_REMOTE"`

	// Draft opens the pull request as a draft.
	Draft bool `env:"CHERRYBOT_DRAFT"`

	// Labels are attached to the pull request after creation, in order.
	Labels []string `env:"CHERRYBOT_LABELS"`

	// DryRun runs the replay but skips the push and pull request.
	DryRun bool `env:"CHERRYBOT_DRY_RUN"`

	// OutputFile is where result fields are appended as key=value lines.
	// Defaults to the file the CI environment designates.
	OutputFile string `env:"GITHUB_OUTPUT"`

	// LogFile enables an additional rotating file log when set.
	LogFile string `env:"CHERRYBOT_LOG_FILE"`
}

// FromEnv builds a Config from the ambient environment and the repo-local
// defaults file (when present), applying the built-in defaults last.
func FromEnv(repoDir string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := applyDefaultsFile(cfg, repoDir); err != nil {
		return nil, err
	}

	if cfg.AuthorName == "" {
		cfg.AuthorName = DefaultAuthorName
	}
	if cfg.AuthorEmail == "" {
		cfg.AuthorEmail = DefaultAuthorEmail
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}

	return cfg, nil
}

// Validate checks the required options. It runs before any repository
// mutation so a bad invocation creates nothing.
func (c *Config) Validate() error {
	if len(c.ParseCommits()) == 0 {
		return cherryboterrors.NewValidationError("commits", "at least one commit is required")
	}
	if strings.TrimSpace(c.TargetBranch) == "" {
		return cherryboterrors.NewValidationError("target-branch", "a target branch is required")
	}
	if strings.TrimSpace(c.Repository) == "" {
		return cherryboterrors.NewValidationError("repository", "a repository in owner/name form is required")
	}
	if _, _, err := c.OwnerRepo(); err != nil {
		return err
	}
	if !c.DryRun && c.Token == "" {
		return cherryboterrors.NewValidationError("token", "an access token is required")
	}
	return nil
}

// ParseCommits splits the comma-separated commit list, trimming whitespace
// and dropping empty entries. Order is preserved and duplicates are kept:
// replaying a duplicate is accepted caller behavior, not validated away.
func (c *Config) ParseCommits() []string {
	var commits []string
	for _, part := range strings.Split(c.Commits, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			commits = append(commits, trimmed)
		}
	}
	return commits
}

// OwnerRepo splits the repository identifier into owner and name.
func (c *Config) OwnerRepo() (owner, repo string, err error) {
	owner, repo, found := strings.Cut(c.Repository, "/")
	if !found || owner == "" || repo == "" {
		return "", "", cherryboterrors.NewValidationError("repository", fmt.Sprintf("%q is not in owner/name form", c.Repository))
	}
	return owner, repo, nil
}

// Redact masks the access token wherever it appears in s, so diagnostics
// and command echoes can be logged safely.
func (c *Config) Redact(s string) string {
	if c.Token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.Token, "***")
}
