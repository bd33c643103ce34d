package githubapi

import "errors"

var (
	// ErrCommentNotFound indicates the comment ID did not resolve to a
	// node ID. Lookup failures are fatal for callers.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrThreadNotFound indicates no review thread contains the comment.
	ErrThreadNotFound = errors.New("review thread not found")
)
