// Package testhelpers provides throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize with a fixed default branch and without reading global
	// config, so tests behave the same on every machine.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewBareGitRepo initializes a bare repository, usable as a test remote.
func NewBareGitRepo(dir string) error {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", "--bare", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to init bare repo: %w", err)
	}
	return nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	_, err := r.RunGitWithOutput(args...)
	return err
}

// RunGitWithOutput executes a git command and returns its trimmed stdout.
func (r *GitRepo) RunGitWithOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %v failed: %s: %w", args, string(out), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CreateChange writes content to a file without committing.
func (r *GitRepo) CreateChange(content, fileName string) error {
	return os.WriteFile(filepath.Join(r.Dir, fileName+".txt"), []byte(content+"\n"), 0o644)
}

// CreateChangeAndCommit writes content to a file, stages it and commits it
// with the content as the commit message.
func (r *GitRepo) CreateChangeAndCommit(content, fileName string) error {
	if err := r.CreateChange(content, fileName); err != nil {
		return err
	}
	if err := r.RunGit("add", "-A"); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", content)
}

// CreateAndCheckoutBranch creates and checks out a new branch at HEAD.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.RunGit("checkout", "-b", name)
}

// CheckoutBranch checks out an existing branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGit("checkout", name)
}

// HeadSHA returns the full SHA of HEAD.
func (r *GitRepo) HeadSHA() (string, error) {
	return r.RunGitWithOutput("rev-parse", "HEAD")
}

// CurrentBranch returns the name of the checked-out branch.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitWithOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// CommitMessages returns the subjects of all commits on the current branch,
// newest first.
func (r *GitRepo) CommitMessages() ([]string, error) {
	out, err := r.RunGitWithOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
