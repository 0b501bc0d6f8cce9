// Package branchutil derives names for replay branches.
package branchutil

import (
	"fmt"
	"strings"
	"time"
)

// ShortRefLength is the abbreviated hash length used in branch names and
// review request bodies.
const ShortRefLength = 7

// ShortRef abbreviates a commit ref to its first seven characters.
func ShortRef(commitRef string) string {
	if len(commitRef) <= ShortRefLength {
		return commitRef
	}
	return commitRef[:ShortRefLength]
}

// Name returns the branch to replay onto. An explicit name is returned
// verbatim; the caller owns collision handling for it. Otherwise a name is
// synthesized from the target branch and first commit, suffixed with the
// current time in milliseconds so concurrent runs against the same
// target/commit pair never collide.
func Name(explicitName, targetBranch string, commits []string) string {
	if explicitName != "" {
		return explicitName
	}
	return fmt.Sprintf("cherrypick/%s/%s-%d",
		strings.ReplaceAll(targetBranch, "/", "-"),
		ShortRef(commits[0]),
		time.Now().UnixMilli(),
	)
}
