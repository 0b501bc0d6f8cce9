package replay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
	"cherrybot.dev/cherrybot/internal/replay"
	"cherrybot.dev/cherrybot/testhelpers"
)

func TestReplay(t *testing.T) {
	ctx := context.Background()

	t.Run("applies all commits in order", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{}
		commits := []string{"abc1234", "def5678", "ghi9012"}

		outcome := replay.Replay(ctx, commits, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, commits, outcome.AppliedCommits)
		require.Empty(t, outcome.StoppedAtCommit)
		require.Empty(t, outcome.Diagnostic)
		require.NoError(t, outcome.Err())
		require.Equal(t, commits, runner.Applied)
	})

	t.Run("records engine-generated commit messages", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{}

		outcome := replay.Replay(ctx, []string{"abc1234"}, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, []string{"Cherry-pick abc1234"}, runner.CommitMessages)
	})

	t.Run("stops at first conflict and aborts once", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			ConflictCommits: map[string]bool{"def5678": true},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "def5678", "ghi9012"}, runner)

		require.Equal(t, replay.StatusConflict, outcome.Status)
		require.Equal(t, []string{"abc1234"}, outcome.AppliedCommits)
		require.Equal(t, "def5678", outcome.StoppedAtCommit)
		require.Contains(t, outcome.Diagnostic, "def5678")
		require.Equal(t, 1, runner.AbortCalls)
		// ghi9012 was never attempted
		require.Equal(t, []string{"abc1234"}, runner.Applied)
	})

	t.Run("conflict on the first commit applies nothing", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			ConflictCommits: map[string]bool{"abc1234": true},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "def5678"}, runner)

		require.Equal(t, replay.StatusConflict, outcome.Status)
		require.Empty(t, outcome.AppliedCommits)
		require.Equal(t, "abc1234", outcome.StoppedAtCommit)
		require.Equal(t, 1, runner.AbortCalls)
	})

	t.Run("non-conflict apply failure reports failed with captured output", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			FailCommits: map[string]string{"badc0de": "fatal: bad revision 'badc0de'"},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "badc0de"}, runner)

		require.Equal(t, replay.StatusFailed, outcome.Status)
		require.Equal(t, []string{"abc1234"}, outcome.AppliedCommits)
		require.Equal(t, "badc0de", outcome.StoppedAtCommit)
		require.Contains(t, outcome.Diagnostic, "bad revision")
		require.Zero(t, runner.AbortCalls)
	})

	t.Run("nothing to commit is tolerated as applied", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			EmptyCommits: map[string]bool{"abc1234": true},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "def5678"}, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, []string{"abc1234", "def5678"}, outcome.AppliedCommits)
		// only def5678 produced a commit record
		require.Equal(t, []string{"def5678"}, runner.Applied)
	})

	t.Run("finalize failure reports failed and excludes the commit", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			FinalizeFailCommits: map[string]string{"def5678": "commit hook rejected"},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "def5678"}, runner)

		require.Equal(t, replay.StatusFailed, outcome.Status)
		require.Equal(t, []string{"abc1234"}, outcome.AppliedCommits)
		require.Equal(t, "def5678", outcome.StoppedAtCommit)
		require.Contains(t, outcome.Diagnostic, "commit hook rejected")
	})

	t.Run("duplicate commits are replayed in order", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			EmptyCommits: map[string]bool{},
		}

		outcome := replay.Replay(ctx, []string{"abc1234", "abc1234"}, runner)

		require.Equal(t, replay.StatusSuccess, outcome.Status)
		require.Equal(t, []string{"abc1234", "abc1234"}, outcome.AppliedCommits)
	})
}

func TestOutcomeErr(t *testing.T) {
	t.Run("conflict outcome maps to ErrConflict", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			ConflictCommits: map[string]bool{"abc1234": true},
		}
		outcome := replay.Replay(context.Background(), []string{"abc1234"}, runner)

		err := outcome.Err()
		require.Error(t, err)
		require.True(t, errors.Is(err, cherryboterrors.ErrConflict))
		require.Contains(t, err.Error(), "abc1234")
	})

	t.Run("failed outcome maps to ErrReplayFailed", func(t *testing.T) {
		runner := &testhelpers.FakeRunner{
			FailCommits: map[string]string{"abc1234": "fatal: bad object"},
		}
		outcome := replay.Replay(context.Background(), []string{"abc1234"}, runner)

		err := outcome.Err()
		require.True(t, errors.Is(err, cherryboterrors.ErrReplayFailed))
	})
}
