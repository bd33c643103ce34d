package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prsweep/sweepctl/internal/ghoutput"
)

// newResolveThreadCommand creates "resolve-thread", which replies to a review
// comment with the addressing commit and resolves its thread. The reply is
// cosmetic and soft-fails; the thread lookup is fatal; the resolve mutation
// soft-fails so the pipeline is never blocked by it.
func newResolveThreadCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-thread <comment_id> <pr_number> <commit_sha> [owner] [repo]",
		Short: "Reply to a review comment and resolve its thread",
		Args:  cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			commentID, err := parseCommentID(args[0], "comment_id")
			if err != nil {
				return err
			}
			prNumber, err := parsePRNumber(args[1])
			if err != nil {
				return err
			}
			commitSHA, err := requireSHA(args[2])
			if err != nil {
				return err
			}

			api, _, err := opts.connect(cmd.Context(), logger, optionalArg(args, 3), optionalArg(args, 4))
			if err != nil {
				return err
			}

			reply := fmt.Sprintf("Addressed in %s.", commitSHA)
			logger.Info("posting reply to review comment", "comment", commentID, "pr", prNumber, "commit", commitSHA)
			if err := api.ReplyToReviewComment(cmd.Context(), prNumber, commentID, reply); err != nil {
				logger.Warn("failed to post reply, continuing", "comment", commentID, "error", err)
			}

			logger.Info("locating review thread", "comment", commentID, "pr", prNumber)
			thread, err := api.FindReviewThread(cmd.Context(), prNumber, commentID)
			if err != nil {
				return fmt.Errorf("lookup review thread for comment %d: %w", commentID, err)
			}

			if thread.IsResolved {
				logger.Info("review thread already resolved", "comment", commentID)
				fmt.Fprintln(cmd.OutOrStdout(), "Review thread already resolved")
				writeResolveOutput(logger, commentID, true)
				return nil
			}

			logger.Info("resolving review thread", "comment", commentID, "thread", thread.ID)
			if err := api.ResolveReviewThread(cmd.Context(), thread.ID); err != nil {
				logger.Warn("failed to resolve review thread, continuing", "comment", commentID, "error", err)
				writeResolveOutput(logger, commentID, false)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Review thread resolved successfully")
			writeResolveOutput(logger, commentID, true)
			return nil
		},
	}
}

func writeResolveOutput(logger *slog.Logger, commentID int64, resolved bool) {
	err := ghoutput.Write(map[string]string{
		"comment_id": strconv.FormatInt(commentID, 10),
		"resolved":   strconv.FormatBool(resolved),
	})
	if err != nil {
		logger.Warn("failed to write GITHUB_OUTPUT", "error", err)
	}
}
