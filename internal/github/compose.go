package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"cherrybot.dev/cherrybot/internal/branchutil"
)

// attributionFooter is appended to every generated pull request body.
const attributionFooter = "---\n*This pull request was opened automatically by cherrybot.*"

// SubjectLookup resolves a commit ref to its subject line.
type SubjectLookup func(ctx context.Context, commitRef string) (string, error)

// ComposePR builds the title and body for a review request covering the
// applied commits. Caller-provided title or body are used verbatim; otherwise
// both are generated. The generated body lists the applied commits in replay
// order, never reordered or deduplicated. One subject lookup is performed per
// applied commit; a failed lookup falls back to the abbreviated hash so the
// commit line is never dropped.
func ComposePR(ctx context.Context, providedTitle, providedBody, targetBranch string, applied []string, lookup SubjectLookup) (title, body string) {
	subjects := make([]string, len(applied))
	for i, commitRef := range applied {
		subject, err := lookup(ctx, commitRef)
		if err != nil || subject == "" {
			log.Warn("could not resolve commit subject", "commit", commitRef, "err", err)
			subject = branchutil.ShortRef(commitRef)
		}
		subjects[i] = subject
	}

	title = providedTitle
	if title == "" {
		if len(applied) == 1 {
			title = "Cherry-pick: " + subjects[0]
		} else {
			title = fmt.Sprintf("Cherry-pick %d commits to %s", len(applied), targetBranch)
		}
	}

	body = providedBody
	if body == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "Cherry-picked the following commits onto `%s`:\n\n", targetBranch)
		for i, commitRef := range applied {
			fmt.Fprintf(&b, "- %s %s\n", branchutil.ShortRef(commitRef), subjects[i])
		}
		b.WriteString("\n")
		b.WriteString(attributionFooter)
		body = b.String()
	}

	return title, body
}
