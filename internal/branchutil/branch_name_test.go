package branchutil_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cherrybot.dev/cherrybot/internal/branchutil"
)

func TestName(t *testing.T) {
	t.Run("explicit name is a pure passthrough", func(t *testing.T) {
		first := branchutil.Name("my-branch", "release/1.0", []string{"abc1234def"})
		second := branchutil.Name("my-branch", "release/1.0", []string{"abc1234def"})

		require.Equal(t, "my-branch", first)
		require.Equal(t, first, second)
	})

	t.Run("generated name matches the expected pattern", func(t *testing.T) {
		name := branchutil.Name("", "release/1.0", []string{"abc1234def5678"})

		require.Regexp(t, regexp.MustCompile(`^cherrypick/release-1\.0/abc1234-\d+$`), name)
	})

	t.Run("slashes in the target branch are flattened", func(t *testing.T) {
		name := branchutil.Name("", "release/2.x/hotfix", []string{"abc1234def"})

		require.Regexp(t, `^cherrypick/release-2\.x-hotfix/`, name)
	})

	t.Run("short refs are used as-is", func(t *testing.T) {
		name := branchutil.Name("", "main", []string{"ab12"})

		require.Regexp(t, `^cherrypick/main/ab12-\d+$`, name)
	})

	t.Run("names are distinct across calls separated in time", func(t *testing.T) {
		first := branchutil.Name("", "main", []string{"abc1234def"})
		time.Sleep(2 * time.Millisecond)
		second := branchutil.Name("", "main", []string{"abc1234def"})

		require.NotEqual(t, first, second)
	})
}

func TestShortRef(t *testing.T) {
	require.Equal(t, "abc1234", branchutil.ShortRef("abc1234def5678"))
	require.Equal(t, "ab12", branchutil.ShortRef("ab12"))
}
