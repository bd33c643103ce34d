package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCommentID parses a positive numeric comment ID argument.
func parseCommentID(arg, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	return id, nil
}

// parsePRNumber parses a positive pull request number argument.
func parsePRNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("pr_number must be a positive integer, got %q", arg)
	}
	return n, nil
}

// requireSHA validates the commit reference argument.
func requireSHA(arg string) (string, error) {
	sha := strings.TrimSpace(arg)
	if sha == "" {
		return "", fmt.Errorf("commit_sha must be non-empty")
	}
	return sha, nil
}

// optionalArg returns the positional argument at idx, or "".
func optionalArg(args []string, idx int) string {
	if idx < len(args) {
		return args[idx]
	}
	return ""
}
