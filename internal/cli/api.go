package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/prsweep/sweepctl/internal/config"
	"github.com/prsweep/sweepctl/internal/githubapi"
)

// commentAPI is the slice of the GitHub client the commands use. The
// abstraction exists so tests can run the commands against a mock.
type commentAPI interface {
	// IssueCommentNodeID resolves a comment database ID to its GraphQL node ID.
	IssueCommentNodeID(ctx context.Context, commentID int64) (string, error)

	// ReplyToReviewComment posts a reply in the thread containing the comment.
	ReplyToReviewComment(ctx context.Context, prNumber int, commentID int64, body string) error

	// ListIssueComments lists non-minimized PR comments, oldest first.
	ListIssueComments(ctx context.Context, prNumber int) ([]githubapi.IssueComment, error)

	// FindReviewThread locates the thread containing a review comment.
	FindReviewThread(ctx context.Context, prNumber int, commentID int64) (githubapi.ReviewThread, error)

	// MinimizeComment marks a comment as outdated.
	MinimizeComment(ctx context.Context, nodeID string) error

	// ResolveReviewThread marks a review thread as resolved.
	ResolveReviewThread(ctx context.Context, threadID string) error
}

// apiFactory builds a commentAPI for one invocation.
type apiFactory func(ctx context.Context, logger *slog.Logger, token, owner, repo string, timeout time.Duration) (commentAPI, error)

func defaultAPIFactory(ctx context.Context, logger *slog.Logger, token, owner, repo string, timeout time.Duration) (commentAPI, error) {
	return githubapi.NewClient(ctx, logger, token, owner, repo, timeout)
}

// connect resolves credentials and the target repository, then builds the
// API client. All failures here are configuration errors and fatal.
func (opts *Options) connect(ctx context.Context, logger *slog.Logger, ownerArg, repoArg string) (commentAPI, config.Environment, error) {
	env, err := config.FromEnv()
	if err != nil {
		return nil, config.Environment{}, err
	}

	token, err := env.GitHubToken()
	if err != nil {
		return nil, config.Environment{}, err
	}

	owner, repo, err := env.ResolveRepo(ownerArg, repoArg)
	if err != nil {
		return nil, config.Environment{}, err
	}

	logger.Debug("target repository resolved", "owner", owner, "repo", repo)

	api, err := opts.newAPI(ctx, logger, token, owner, repo, opts.Timeout)
	if err != nil {
		return nil, config.Environment{}, err
	}
	return api, env, nil
}
