package git

import (
	"context"
	"fmt"
	"strings"
)

// StatusEntry is a single line of `git status --porcelain`: a two-letter
// status code and the path it applies to.
type StatusEntry struct {
	Code string
	Path string
}

// conflictCodes are the porcelain codes that indicate both sides of a merge
// touched the same path. This is a documented heuristic: it covers the
// both-modified, both-added and both-deleted states, which are the ones git
// reports for cherry-pick conflicts in practice. AU/UA/DU/UD states are not
// matched here.
var conflictCodes = map[string]bool{
	"UU": true,
	"AA": true,
	"DD": true,
}

// StatusEntries returns the porcelain status of the working tree.
func (r *realRunner) StatusEntries(ctx context.Context) ([]StatusEntry, error) {
	output, err := r.runner.RunRaw(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to read working tree status: %w", err)
	}
	return parseStatusEntries(output), nil
}

// parseStatusEntries parses `git status --porcelain` output. Each line is
// "XY path" where XY is the two-letter status code.
func parseStatusEntries(output string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		entries = append(entries, StatusEntry{
			Code: line[:2],
			Path: strings.TrimSpace(line[3:]),
		})
	}
	return entries
}

// HasConflictMarkers reports whether any status entry carries a conflict
// code.
func HasConflictMarkers(entries []StatusEntry) bool {
	for _, entry := range entries {
		if conflictCodes[entry.Code] {
			return true
		}
	}
	return false
}
