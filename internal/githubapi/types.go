// Package githubapi talks to GitHub on sweepctl's behalf: REST reads and the
// review-comment reply go through go-github, while the mutations GitHub only
// exposes over GraphQL (minimizeComment, resolveReviewThread) and the
// isMinimized-aware comment listing go through `gh api graphql`.
package githubapi

// IssueComment is a PR-level (issue) comment as seen by the sweep predicate.
type IssueComment struct {
	// ID is the comment database ID.
	ID int64
	// NodeID is the opaque GraphQL identifier used by mutations.
	NodeID string
	// Author is the login of the comment author.
	Author string
	// Body is the raw markdown body.
	Body string
	// CreatedAt is the ISO timestamp of comment creation.
	CreatedAt string
}

// ReviewThread identifies a review discussion thread.
type ReviewThread struct {
	// ID is the opaque GraphQL identifier of the thread.
	ID string
	// IsResolved reports whether the thread is already resolved.
	IsResolved bool
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type issueCommentsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				Comments struct {
					Nodes    []commentNode `json:"nodes"`
					PageInfo pageInfo      `json:"pageInfo"`
				} `json:"comments"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
}

type commentNode struct {
	ID              string `json:"id"`
	DatabaseID      int64  `json:"databaseId"`
	Body            string `json:"body"`
	CreatedAt       string `json:"createdAt"`
	IsMinimized     bool   `json:"isMinimized"`
	MinimizedReason string `json:"minimizedReason"`
	Author          struct {
		Login string `json:"login"`
	} `json:"author"`
}

type reviewThreadsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					Nodes    []reviewThreadNode `json:"nodes"`
					PageInfo pageInfo           `json:"pageInfo"`
				} `json:"reviewThreads"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
}

type reviewThreadNode struct {
	ID         string             `json:"id"`
	IsResolved bool               `json:"isResolved"`
	Comments   threadCommentBlock `json:"comments"`
}

type threadCommentBlock struct {
	Nodes []struct {
		DatabaseID int64 `json:"databaseId"`
	} `json:"nodes"`
	PageInfo pageInfo `json:"pageInfo"`
}

// threadCommentsResponse is the shape of the node() query used to walk the
// remaining comment pages of a single review thread.
type threadCommentsResponse struct {
	Data struct {
		Node struct {
			Comments threadCommentBlock `json:"comments"`
		} `json:"node"`
	} `json:"data"`
}

type minimizeCommentResponse struct {
	Data struct {
		MinimizeComment struct {
			MinimizedComment struct {
				IsMinimized bool `json:"isMinimized"`
			} `json:"minimizedComment"`
		} `json:"minimizeComment"`
	} `json:"data"`
}

type resolveThreadResponse struct {
	Data struct {
		ResolveReviewThread struct {
			Thread struct {
				IsResolved bool `json:"isResolved"`
			} `json:"thread"`
		} `json:"resolveReviewThread"`
	} `json:"data"`
}
