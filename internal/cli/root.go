// Package cli wires the cobra command surface for cherrybot.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"cherrybot.dev/cherrybot/internal/actions"
	"cherrybot.dev/cherrybot/internal/config"
	cherryboterrors "cherrybot.dev/cherrybot/internal/errors"
	"cherrybot.dev/cherrybot/internal/git"
	"cherrybot.dev/cherrybot/internal/github"
	"cherrybot.dev/cherrybot/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		commits      string
		targetBranch string
		branchName   string
		title        string
		body         string
		repository   string
		authorName   string
		authorEmail  string
		remote       string
		draft        bool
		labels       []string
		dryRun       bool
		outputFile   string
		logFile      string
	)

	rootCmd := &cobra.Command{
		Use:   "cherrybot",
		Short: "Cherry-pick an ordered list of commits onto a branch and open a pull request",
		Long: `Cherrybot replays an ordered list of commits onto a fresh branch cut from a
target branch and, when every commit applies cleanly, pushes the branch and
opens a pull request summarizing what was replayed.

A conflict stops the run before anything is pushed; the local branch is left
in place for manual resolution. The branch name and replay status are always
reported, even when the run fails.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv(".")
			if err != nil {
				return err
			}

			// Flags override environment and the defaults file.
			flagOverride := func(name string, apply func()) {
				if cmd.Flags().Changed(name) {
					apply()
				}
			}
			flagOverride("commits", func() { cfg.Commits = commits })
			flagOverride("target-branch", func() { cfg.TargetBranch = targetBranch })
			flagOverride("branch-name", func() { cfg.BranchName = branchName })
			flagOverride("title", func() { cfg.Title = title })
			flagOverride("body", func() { cfg.Body = body })
			flagOverride("repository", func() { cfg.Repository = repository })
			flagOverride("author-name", func() { cfg.AuthorName = authorName })
			flagOverride("author-email", func() { cfg.AuthorEmail = authorEmail })
			flagOverride("remote", func() { cfg.Remote = remote })
			flagOverride("draft", func() { cfg.Draft = draft })
			flagOverride("label", func() { cfg.Labels = labels })
			flagOverride("dry-run", func() { cfg.DryRun = dryRun })
			flagOverride("output-file", func() { cfg.OutputFile = outputFile })
			flagOverride("log-file", func() { cfg.LogFile = logFile })

			setupLogging(cfg.LogFile)

			ctx := cmd.Context()
			opts := actions.BackportOptions{
				Config:   cfg,
				Runner:   git.NewRealRunner(),
				Client:   github.NewRealClient(ctx, cfg.Token),
				Reporter: output.NewReporter(cfg.OutputFile),
			}

			result, err := actions.Backport(ctx, opts)

			if result.BranchName != "" {
				summary := output.Summary{
					Status:       string(result.Outcome.Status),
					Branch:       result.BranchName,
					TargetBranch: cfg.TargetBranch,
					AppliedCount: len(result.Outcome.AppliedCommits),
					DryRun:       cfg.DryRun,
				}
				if result.PR != nil {
					summary.PRURL = result.PR.HTMLURL
				}
				output.PrintSummary(summary)
			}

			if err != nil {
				// The token must never surface in error text.
				redacted := errors.New(cfg.Redact(err.Error()))
				if errors.Is(err, cherryboterrors.ErrConflict) {
					return fmt.Errorf("%v\nresolve the conflict on branch %s and open the pull request manually", redacted, result.BranchName)
				}
				return redacted
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&commits, "commits", "", "ordered, comma-separated list of commits to cherry-pick (required)")
	flags.StringVar(&targetBranch, "target-branch", "", "branch to cherry-pick onto (required)")
	flags.StringVar(&branchName, "branch-name", "", "explicit name for the new branch (default: generated)")
	flags.StringVar(&title, "title", "", "pull request title (default: generated)")
	flags.StringVar(&body, "body", "", "pull request body (default: generated)")
	flags.StringVar(&repository, "repository", "", "repository in owner/name form (default: $GITHUB_REPOSITORY)")
	flags.StringVar(&authorName, "author-name", "", "committer name for replayed commits")
	flags.StringVar(&authorEmail, "author-email", "", "committer email for replayed commits")
	flags.StringVar(&remote, "remote", "", "git remote to fetch from and push to (default: origin)")
	flags.BoolVar(&draft, "draft", false, "open the pull request as a draft")
	flags.StringSliceVar(&labels, "label", nil, "label to attach to the pull request (repeatable)")
	flags.BoolVar(&dryRun, "dry-run", false, "replay the commits but skip the push and pull request")
	flags.StringVar(&outputFile, "output-file", "", "file to append result fields to (default: $GITHUB_OUTPUT)")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file, with rotation")

	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// setupLogging configures the default logger: colored text on a terminal,
// logfmt when piped, plus an optional rotating file log.
func setupLogging(logFile string) {
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	formatter := log.LogfmtFormatter
	if isatty.IsTerminal(os.Stderr.Fd()) && logFile == "" {
		formatter = log.TextFormatter
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Formatter:       formatter,
	}))
}
