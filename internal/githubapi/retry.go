package githubapi

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	defaultMaxAttempts  = 3
	defaultInitialDelay = 1 * time.Second
)

// retryWithBackoff runs fn up to defaultMaxAttempts times with exponential
// backoff, retrying only errors that look transient. The context cancels the
// backoff sleep, not an in-flight attempt (attempts carry their own context).
func retryWithBackoff(ctx context.Context, logger *slog.Logger, op string, fn func() error) error {
	var lastErr error
	delay := defaultInitialDelay

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryableError(lastErr) {
			return lastErr
		}
		if logger != nil {
			logger.Debug("transient API error, retrying",
				"op", op,
				"attempt", attempt,
				"max", defaultMaxAttempts,
				"error", lastErr,
			)
		}
	}
	return lastErr
}

// isRetryableError reports whether an error is worth retrying: transient
// network failures and GitHub throttling. Permanent errors (bad credentials,
// missing resources) fail immediately.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"eof",
		"timeout",
		"connection refused",
		"connection reset",
		"temporary failure",
		"broken pipe",
		"no such host",
		"network is unreachable",
		"rate limit",
		"502",
		"503",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
