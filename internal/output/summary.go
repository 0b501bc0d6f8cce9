package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorRed    = lipgloss.Color("#FF0000")

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	summaryLabelStyle = lipgloss.NewStyle().Bold(true)
)

// Summary holds the fields shown in the end-of-run console block.
type Summary struct {
	Status       string
	Branch       string
	TargetBranch string
	AppliedCount int
	PRURL        string
	DryRun       bool
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case "success":
		return colorGreen
	case "conflict":
		return colorYellow
	default:
		return colorRed
	}
}

// PrintSummary writes the styled run summary to stdout. Styling degrades to
// plain text automatically when stdout is not a terminal.
func PrintSummary(s Summary) {
	FprintSummary(os.Stdout, s, isatty.IsTerminal(os.Stdout.Fd()))
}

// FprintSummary renders the summary to w. When styled is false the block is
// rendered without color, which keeps CI logs readable.
func FprintSummary(w io.Writer, s Summary, styled bool) {
	statusStyle := lipgloss.NewStyle().Bold(true)
	if styled {
		statusStyle = statusStyle.Foreground(statusColor(s.Status))
	}

	var lines []string
	status := s.Status
	if s.DryRun {
		status += " (dry run)"
	}
	lines = append(lines, summaryLabelStyle.Render("status  ")+statusStyle.Render(status))
	lines = append(lines, summaryLabelStyle.Render("branch  ")+s.Branch)
	lines = append(lines, summaryLabelStyle.Render("target  ")+s.TargetBranch)
	lines = append(lines, summaryLabelStyle.Render("applied ")+fmt.Sprintf("%d", s.AppliedCount))
	if s.PRURL != "" {
		lines = append(lines, summaryLabelStyle.Render("pr      ")+s.PRURL)
	}

	fmt.Fprintln(w, summaryBoxStyle.Render(strings.Join(lines, "\n")))
}
