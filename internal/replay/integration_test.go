package replay_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"cherrybot.dev/cherrybot/internal/git"
	"cherrybot.dev/cherrybot/internal/replay"
	"cherrybot.dev/cherrybot/testhelpers"
)

// These tests run the engine against a real repository through the real
// runner, covering the apply/finalize/abort plumbing end to end.

func TestReplayAgainstRealRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("replays two commits from a source branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("base", "base")
		})
		runner := git.NewRealRunnerWithDir(scene.Dir)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("source"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("first fix", "first"))
		firstSHA, err := scene.Repo.HeadSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("second fix", "second"))
		secondSHA, err := scene.Repo.HeadSHA()
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CheckoutBranch("main"))
		require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "replay"))

		outcome := replay.Replay(ctx, []string{firstSHA, secondSHA}, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, []string{firstSHA, secondSHA}, outcome.AppliedCommits)

		messages, err := scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Cherry-pick "+secondSHA, messages[0])
		require.Equal(t, "Cherry-pick "+firstSHA, messages[1])
	})

	t.Run("conflicting commit ends the run with a clean tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("base", "conflict")
		})
		runner := git.NewRealRunnerWithDir(scene.Dir)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("source"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("clean fix", "clean"))
		cleanSHA, err := scene.Repo.HeadSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("source version", "conflict"))
		conflictSHA, err := scene.Repo.HeadSHA()
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CheckoutBranch("main"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("main version", "conflict"))
		require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "replay"))

		outcome := replay.Replay(ctx, []string{cleanSHA, conflictSHA}, runner)

		require.Equal(t, replay.StatusConflict, outcome.Status)
		require.Equal(t, []string{cleanSHA}, outcome.AppliedCommits)
		require.Equal(t, conflictSHA, outcome.StoppedAtCommit)

		// The abort restored the tree: the clean fix commit is still on the
		// branch and nothing is left staged.
		entries, err := runner.StatusEntries(ctx)
		require.NoError(t, err)
		require.False(t, git.HasConflictMarkers(entries))

		messages, err := scene.Repo.CommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Cherry-pick "+cleanSHA, messages[0])
	})

	t.Run("already-applied commit is tolerated", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("one", "shared")
		})
		runner := git.NewRealRunnerWithDir(scene.Dir)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("source"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("two", "shared"))
		sha, err := scene.Repo.HeadSHA()
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CheckoutBranch("main"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("two", "shared"))
		require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "replay"))

		outcome := replay.Replay(ctx, []string{sha}, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, []string{sha}, outcome.AppliedCommits)
	})
}
