package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prsweep/sweepctl/internal/ghoutput"
)

// newMinimizeOneCommand creates "minimize-one", which marks a single comment
// as outdated. The node-ID lookup is fatal; the minimize mutation itself is
// best-effort and must not block the calling pipeline.
func newMinimizeOneCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize-one <comment_id> <commit_sha> [owner] [repo]",
		Short: "Minimize a single PR comment as outdated",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			commentID, err := parseCommentID(args[0], "comment_id")
			if err != nil {
				return err
			}
			commitSHA, err := requireSHA(args[1])
			if err != nil {
				return err
			}

			api, _, err := opts.connect(cmd.Context(), logger, optionalArg(args, 2), optionalArg(args, 3))
			if err != nil {
				return err
			}

			logger.Info("resolving comment node id", "comment", commentID)
			nodeID, err := api.IssueCommentNodeID(cmd.Context(), commentID)
			if err != nil {
				return fmt.Errorf("lookup comment %d: %w", commentID, err)
			}

			logger.Info("minimizing comment as outdated", "comment", commentID, "commit", commitSHA)
			if err := api.MinimizeComment(cmd.Context(), nodeID); err != nil {
				logger.Warn("failed to minimize comment, continuing", "comment", commentID, "error", err)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Comment minimized successfully")
			if err := ghoutput.Write(map[string]string{
				"comment_id": strconv.FormatInt(commentID, 10),
				"minimized":  "true",
			}); err != nil {
				logger.Warn("failed to write GITHUB_OUTPUT", "error", err)
			}
			return nil
		},
	}
}
