package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/prsweep/sweepctl/internal/logging"
)

// DefaultCallTimeout bounds each individual API call.
const DefaultCallTimeout = 30 * time.Second

// Client performs GitHub API calls for one owner/repo pair. The token is held
// by the client and passed per call (oauth2 transport for REST, child-process
// env for gh execs); the ambient process environment is never modified.
type Client struct {
	logger  *slog.Logger
	token   string
	owner   string
	repo    string
	timeout time.Duration
	rest    *github.Client

	// gql runs one GraphQL call. It defaults to execGraphQL (a gh exec)
	// and is swapped for a stub in tests.
	gql func(ctx context.Context, query string, vars map[string]any, out any) error
}

// NewClient validates the target repository and constructs a Client.
func NewClient(ctx context.Context, logger *slog.Logger, token, owner, repo string, timeout time.Duration) (*Client, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo must be non-empty, got %q/%q", owner, repo)
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token must be non-empty")
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	rest := github.NewClient(oauth2.NewClient(ctx, tokenSource))

	c := &Client{
		logger:  logger,
		token:   token,
		owner:   owner,
		repo:    repo,
		timeout: timeout,
		rest:    rest,
	}
	c.gql = c.execGraphQL
	return c, nil
}

// callContext derives a per-call deadline from the parent context.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// stderrWriter routes gh's stderr into the structured log.
func (c *Client) stderrWriter() *logging.Writer {
	return logging.NewWriter(c.logger, logging.LevelWarn)
}

// IssueCommentNodeID resolves an issue comment's database ID to the GraphQL
// node ID required by mutations.
func (c *Client) IssueCommentNodeID(ctx context.Context, commentID int64) (string, error) {
	var nodeID string
	err := retryWithBackoff(ctx, c.logger, "get issue comment", func() error {
		callCtx, cancel := c.callContext(ctx)
		defer cancel()

		comment, _, err := c.rest.Issues.GetComment(callCtx, c.owner, c.repo, commentID)
		if err != nil {
			return fmt.Errorf("get issue comment %d: %w", commentID, err)
		}
		nodeID = comment.GetNodeID()
		return nil
	})
	if err != nil {
		return "", err
	}
	if nodeID == "" {
		return "", fmt.Errorf("issue comment %d: %w", commentID, ErrCommentNotFound)
	}
	return nodeID, nil
}

// ReplyToReviewComment posts a reply in the review thread that contains the
// given review comment.
func (c *Client) ReplyToReviewComment(ctx context.Context, prNumber int, commentID int64, body string) error {
	return retryWithBackoff(ctx, c.logger, "reply to review comment", func() error {
		callCtx, cancel := c.callContext(ctx)
		defer cancel()

		_, _, err := c.rest.PullRequests.CreateCommentInReplyTo(callCtx, c.owner, c.repo, prNumber, body, commentID)
		if err != nil {
			return fmt.Errorf("reply to review comment %d on PR %d: %w", commentID, prNumber, err)
		}
		return nil
	})
}
