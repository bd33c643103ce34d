// Package sweep decides which bot comments on a pull request are outdated
// and aggregates the results of minimizing them.
package sweep

import (
	"strings"

	"github.com/prsweep/sweepctl/internal/githubapi"
)

// Built-in markers identifying sweepable bot status comments. A comment
// qualifies when its body contains either one.
const (
	HeadingMarker  = "## Automated Review"
	SentinelMarker = "<!-- automated-review-comment -->"
)

// DefaultBotLogin is targeted when no bot login is configured anywhere.
const DefaultBotLogin = "github-actions[bot]"

// DefaultMarkers returns the built-in marker set.
func DefaultMarkers() []string {
	return []string{HeadingMarker, SentinelMarker}
}

// Criteria configures the selection predicate.
type Criteria struct {
	// BotLogin is the author login a comment must match.
	BotLogin string
	// Markers are body substrings, any one of which marks a bot comment.
	Markers []string
	// StickyID is the persistent status comment to preserve. Zero means
	// there is no sticky comment.
	StickyID int64
	// ProtectedIDs are additional comment IDs to preserve.
	ProtectedIDs []int64
	// CurrentSHA is the commit the pipeline is running for. Comments whose
	// body already references it are current, not outdated.
	CurrentSHA string
}

// Matches reports whether a single comment is outdated per the four-part
// predicate: bot author, marker present, not protected, and not referencing
// the current commit. It is a pure function of the comment and criteria.
func (c Criteria) Matches(comment githubapi.IssueComment) bool {
	if comment.Author != c.BotLogin {
		return false
	}
	if !containsAny(comment.Body, c.Markers) {
		return false
	}
	if comment.ID == c.StickyID {
		return false
	}
	for _, id := range c.ProtectedIDs {
		if comment.ID == id {
			return false
		}
	}
	if c.CurrentSHA != "" && strings.Contains(comment.Body, c.CurrentSHA) {
		return false
	}
	return true
}

// Select returns the comments matching the criteria, preserving input order.
func Select(comments []githubapi.IssueComment, c Criteria) []githubapi.IssueComment {
	selected := make([]githubapi.IssueComment, 0, len(comments))
	for _, comment := range comments {
		if c.Matches(comment) {
			selected = append(selected, comment)
		}
	}
	return selected
}

func containsAny(body string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
