package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// ListIssueComments returns all top-level comments on a pull request, oldest
// first, excluding comments that are already minimized. Pagination follows
// the GraphQL cursor until exhausted.
func (c *Client) ListIssueComments(ctx context.Context, prNumber int) ([]IssueComment, error) {
	if prNumber <= 0 {
		return nil, fmt.Errorf("pr number must be positive")
	}
	query := `query($owner: String!, $name: String!, $number: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $number) {
      comments(first: 100, after: $after) {
        nodes {
          id
          databaseId
          body
          createdAt
          isMinimized
          minimizedReason
          author { login }
        }
        pageInfo { hasNextPage endCursor }
      }
    }
  }
}`

	var out []IssueComment
	var after string
	for {
		resp := issueCommentsResponse{}
		vars := map[string]any{
			"owner":  c.owner,
			"name":   c.repo,
			"number": prNumber,
		}
		if after != "" {
			vars["after"] = after
		}
		if err := c.gql(ctx, query, vars, &resp); err != nil {
			return nil, err
		}
		page := resp.Data.Repository.PullRequest.Comments
		for _, node := range page.Nodes {
			if node.IsMinimized || node.MinimizedReason != "" {
				continue
			}
			out = append(out, IssueComment{
				ID:        node.DatabaseID,
				NodeID:    node.ID,
				Author:    node.Author.Login,
				Body:      node.Body,
				CreatedAt: node.CreatedAt,
			})
		}
		if !page.PageInfo.HasNextPage {
			break
		}
		after = page.PageInfo.EndCursor
		if after == "" {
			break
		}
	}
	return out, nil
}

// FindReviewThread locates the review thread containing the given review
// comment. Resolved threads are included so callers can treat an
// already-resolved thread as done. Threads with more than one page of
// comments are walked through the node() query before moving on. Returns
// ErrThreadNotFound when no thread on the PR contains the comment.
func (c *Client) FindReviewThread(ctx context.Context, prNumber int, commentID int64) (ReviewThread, error) {
	if prNumber <= 0 {
		return ReviewThread{}, fmt.Errorf("pr number must be positive")
	}
	query := `query($owner: String!, $name: String!, $number: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $number) {
      reviewThreads(first: 50, after: $after) {
        nodes {
          id
          isResolved
          comments(first: 100) {
            nodes { databaseId }
            pageInfo { hasNextPage endCursor }
          }
        }
        pageInfo { hasNextPage endCursor }
      }
    }
  }
}`

	var after string
	for {
		resp := reviewThreadsResponse{}
		vars := map[string]any{
			"owner":  c.owner,
			"name":   c.repo,
			"number": prNumber,
		}
		if after != "" {
			vars["after"] = after
		}
		if err := c.gql(ctx, query, vars, &resp); err != nil {
			return ReviewThread{}, err
		}
		threads := resp.Data.Repository.PullRequest.ReviewThreads
		for _, thread := range threads.Nodes {
			if blockContains(thread.Comments, commentID) {
				return ReviewThread{ID: thread.ID, IsResolved: thread.IsResolved}, nil
			}
			if thread.Comments.PageInfo.HasNextPage {
				found, err := c.threadContainsComment(ctx, thread.ID, thread.Comments.PageInfo.EndCursor, commentID)
				if err != nil {
					return ReviewThread{}, err
				}
				if found {
					return ReviewThread{ID: thread.ID, IsResolved: thread.IsResolved}, nil
				}
			}
		}
		if !threads.PageInfo.HasNextPage {
			break
		}
		after = threads.PageInfo.EndCursor
		if after == "" {
			break
		}
	}
	return ReviewThread{}, fmt.Errorf("review comment %d on PR %d: %w", commentID, prNumber, ErrThreadNotFound)
}

// threadContainsComment walks the remaining comment pages of one thread,
// starting after the given cursor.
func (c *Client) threadContainsComment(ctx context.Context, threadID, after string, commentID int64) (bool, error) {
	query := `query($id: ID!, $after: String!) {
  node(id: $id) {
    ... on PullRequestReviewThread {
      comments(first: 100, after: $after) {
        nodes { databaseId }
        pageInfo { hasNextPage endCursor }
      }
    }
  }
}`

	for after != "" {
		resp := threadCommentsResponse{}
		err := c.gql(ctx, query, map[string]any{
			"id":    threadID,
			"after": after,
		}, &resp)
		if err != nil {
			return false, err
		}
		block := resp.Data.Node.Comments
		if blockContains(block, commentID) {
			return true, nil
		}
		if !block.PageInfo.HasNextPage {
			break
		}
		after = block.PageInfo.EndCursor
	}
	return false, nil
}

func blockContains(block threadCommentBlock, commentID int64) bool {
	for _, comment := range block.Nodes {
		if comment.DatabaseID == commentID {
			return true
		}
	}
	return false
}

// MinimizeComment hides a comment behind the collapsed "outdated" marker.
func (c *Client) MinimizeComment(ctx context.Context, nodeID string) error {
	if nodeID == "" {
		return fmt.Errorf("node id must be non-empty")
	}
	mutation := `mutation($subject: ID!, $classifier: ReportedContentClassifiers!) {
  minimizeComment(input: {subjectId: $subject, classifier: $classifier}) {
    minimizedComment { isMinimized }
  }
}`

	return retryWithBackoff(ctx, c.logger, "minimize comment", func() error {
		resp := minimizeCommentResponse{}
		err := c.gql(ctx, mutation, map[string]any{
			"subject":    nodeID,
			"classifier": "OUTDATED",
		}, &resp)
		if err != nil {
			return err
		}
		if !resp.Data.MinimizeComment.MinimizedComment.IsMinimized {
			return fmt.Errorf("minimize mutation did not take effect for %s", nodeID)
		}
		return nil
	})
}

// ResolveReviewThread marks a review thread as resolved.
func (c *Client) ResolveReviewThread(ctx context.Context, threadID string) error {
	if threadID == "" {
		return fmt.Errorf("thread id must be non-empty")
	}
	mutation := `mutation($thread: ID!) {
  resolveReviewThread(input: {threadId: $thread}) {
    thread { isResolved }
  }
}`

	return retryWithBackoff(ctx, c.logger, "resolve review thread", func() error {
		resp := resolveThreadResponse{}
		err := c.gql(ctx, mutation, map[string]any{
			"thread": threadID,
		}, &resp)
		if err != nil {
			return err
		}
		if !resp.Data.ResolveReviewThread.Thread.IsResolved {
			return fmt.Errorf("resolve mutation did not take effect for %s", threadID)
		}
		return nil
	})
}

// execGraphQL executes a GraphQL query through `gh api graphql`. String
// variables are passed with -f, typed variables with -F. The token is
// injected into the child process environment only.
func (c *Client) execGraphQL(ctx context.Context, query string, vars map[string]any, out any) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	args := []string{"api", "graphql", "-f", "query=" + query}
	for key, val := range vars {
		if val == nil {
			continue
		}
		switch v := val.(type) {
		case int, int32, int64, uint, uint32, uint64, float32, float64, bool:
			args = append(args, "-F", fmt.Sprintf("%s=%v", key, v))
			continue
		}
		str := fmt.Sprintf("%v", val)
		if str == "" {
			continue
		}
		args = append(args, "-f", fmt.Sprintf("%s=%s", key, str))
	}
	if c.logger != nil {
		c.logger.Debug("github graphql call", "repo", c.owner+"/"+c.repo, "args", args)
	}

	cmd := exec.CommandContext(callCtx, "gh", args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = c.stderrWriter()

	env := os.Environ()
	env = append(env, "GITHUB_TOKEN="+c.token, "GH_TOKEN="+c.token)
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gh api graphql failed: %w", err)
	}

	if err := json.Unmarshal(stdout.Bytes(), out); err != nil {
		return fmt.Errorf("decode github graphql response: %w", err)
	}
	return nil
}
