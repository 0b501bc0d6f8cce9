package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene is a test fixture holding a throwaway git repository, and
// optionally a bare remote it is cloned from.
type Scene struct {
	Dir       string
	Repo      *GitRepo
	RemoteDir string
}

// SceneSetup is a function type for seeding a scene with history.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a temp directory. Cleanup is handled by
// t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("scene setup failed: %v", err)
		}
	}
	return scene
}

// NewSceneWithRemote creates a repository wired to a bare "origin" remote,
// with the initial history pushed to it. Used by tests that exercise fetch,
// remote checkout and push.
func NewSceneWithRemote(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	base := t.TempDir()
	remoteDir := filepath.Join(base, "remote.git")
	if err := NewBareGitRepo(remoteDir); err != nil {
		t.Fatalf("failed to create bare remote: %v", err)
	}

	workDir := filepath.Join(base, "work")
	repo, err := NewGitRepo(workDir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}
	if err := repo.RunGit("remote", "add", "origin", remoteDir); err != nil {
		t.Fatalf("failed to add remote: %v", err)
	}

	scene := &Scene{Dir: workDir, Repo: repo, RemoteDir: remoteDir}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("scene setup failed: %v", err)
		}
	}
	return scene
}

// PushAll pushes every local branch to the remote.
func (s *Scene) PushAll() error {
	return s.Repo.RunGit("push", "origin", "--all")
}
