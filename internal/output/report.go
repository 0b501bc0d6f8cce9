// Package output emits the caller-visible result contract and the console
// summary for a run.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Result field keys. These are the stable names automation consumes.
const (
	KeyBranchName = "branch-name"
	KeyStatus     = "cherry-pick-status"
	KeyPRURL      = "pr-url"
	KeyPRNumber   = "pr-number"
)

// Reporter writes result fields as they become known. Fields are appended
// to the output file immediately, not batched at the end of the run, so the
// branch name and replay status stay observable even when a later step
// (push, pull request creation) fails.
type Reporter struct {
	outputFile string
	fields     map[string]string
	order      []string
}

// NewReporter creates a Reporter. An empty outputFile disables file output;
// fields are still logged and retained for the summary.
func NewReporter(outputFile string) *Reporter {
	return &Reporter{
		outputFile: outputFile,
		fields:     make(map[string]string),
	}
}

// Set records a result field and appends it to the output file.
func (r *Reporter) Set(key, value string) {
	if _, seen := r.fields[key]; !seen {
		r.order = append(r.order, key)
	}
	r.fields[key] = value
	log.Info("result", "key", key, "value", value)

	if r.outputFile == "" {
		return
	}
	f, err := os.OpenFile(r.outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("could not open output file", "path", r.outputFile, "err", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
		log.Warn("could not write output file", "path", r.outputFile, "err", err)
	}
}

// Get returns a recorded field value, or the empty string.
func (r *Reporter) Get(key string) string {
	return r.fields[key]
}

// Fields returns the recorded fields in the order they were first set.
func (r *Reporter) Fields() []string {
	return append([]string(nil), r.order...)
}
