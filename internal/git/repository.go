package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CommitSubject returns the subject line (first line of the message) of a
// commit. It reads the object directly through go-git when the repository
// can be opened, and falls back to `git log` otherwise (e.g. unusual
// worktree layouts go-git does not resolve).
func (r *realRunner) CommitSubject(ctx context.Context, commitRef string) (string, error) {
	if subject, err := r.commitSubjectFromObjectStore(commitRef); err == nil {
		return subject, nil
	}

	subject, err := r.runner.Run(ctx, "log", "-1", "--format=%s", commitRef)
	if err != nil {
		return "", fmt.Errorf("failed to read subject of commit %s: %w", commitRef, err)
	}
	return subject, nil
}

func (r *realRunner) commitSubjectFromObjectStore(commitRef string) (string, error) {
	path := r.runner.GetWorkingDir()
	if path == "" {
		path = "."
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(commitRef))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", commitRef, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", commitRef, err)
	}

	subject, _, _ := strings.Cut(commit.Message, "\n")
	return strings.TrimSpace(subject), nil
}
