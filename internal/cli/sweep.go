package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prsweep/sweepctl/internal/config"
	"github.com/prsweep/sweepctl/internal/ghoutput"
	"github.com/prsweep/sweepctl/internal/sweep"
)

// newMinimizeBulkCommand creates "minimize-bulk", which sweeps a PR for
// outdated bot comments and minimizes each one independently. Listing
// failures are fatal; per-comment mutation failures only bump the failure
// counter.
func newMinimizeBulkCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize-bulk <pr_number> <current_sha> [bot_login] [owner] [repo]",
		Short: "Minimize all outdated bot comments on a PR",
		Args:  cobra.RangeArgs(2, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			prNumber, err := parsePRNumber(args[0])
			if err != nil {
				return err
			}
			currentSHA, err := requireSHA(args[1])
			if err != nil {
				return err
			}

			policy, err := config.LoadPolicy(opts.ConfigPath)
			if err != nil {
				return err
			}

			api, env, err := opts.connect(cmd.Context(), logger, optionalArg(args, 3), optionalArg(args, 4))
			if err != nil {
				return err
			}

			criteria := sweep.Criteria{
				BotLogin:     resolveBotLogin(optionalArg(args, 2), env.BotLogin, policy.BotLogin),
				Markers:      append(sweep.DefaultMarkers(), policy.Markers...),
				StickyID:     env.StickyCommentID,
				ProtectedIDs: policy.ProtectedCommentIDs,
				CurrentSHA:   currentSHA,
			}

			logger.Info("listing PR comments",
				"pr", prNumber,
				"bot", criteria.BotLogin,
				"current_commit", currentSHA,
			)
			comments, err := api.ListIssueComments(cmd.Context(), prNumber)
			if err != nil {
				return fmt.Errorf("list comments on PR %d: %w", prNumber, err)
			}

			targets := sweep.Select(comments, criteria)
			if len(targets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No outdated comments to minimize")
				writeSweepOutput(logger, &sweep.Report{})
				return nil
			}
			logger.Info("selected outdated comments", "count", len(targets), "total", len(comments))

			var report sweep.Report
			for _, target := range targets {
				err := api.MinimizeComment(cmd.Context(), target.NodeID)
				report.Record(target.ID, err)
				if err != nil {
					logger.Warn("failed to minimize comment, continuing", "comment", target.ID, "error", err)
					continue
				}
				logger.Info("comment minimized", "comment", target.ID)
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			writeSweepOutput(logger, &report)
			return nil
		},
	}
}

// resolveBotLogin picks the first configured bot login: positional argument,
// then APP_BOT_NAME, then the policy file, then the built-in default.
func resolveBotLogin(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return sweep.DefaultBotLogin
}

func writeSweepOutput(logger *slog.Logger, report *sweep.Report) {
	err := ghoutput.Write(map[string]string{
		"minimized_count": strconv.Itoa(report.Minimized()),
		"failed_count":    strconv.Itoa(report.Failed()),
	})
	if err != nil {
		logger.Warn("failed to write GITHUB_OUTPUT", "error", err)
	}
}
