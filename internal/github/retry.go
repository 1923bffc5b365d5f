package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	gh "github.com/google/go-github/v84/github"
)

type retryConfig struct {
	maxRetries  int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxRetries:  5,
		baseBackoff: 1 * time.Second,
		maxBackoff:  60 * time.Second,
	}
}

// withRetry runs fn with bounded exponential backoff for transient
// failures. Rate-limit errors wait for the reported reset when it is
// sooner than the computed backoff would be useless; every other error is
// returned as-is.
func withRetry[T any](ctx context.Context, cfg retryConfig, operation string, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error

	for attempt := 0; attempt <= cfg.maxRetries; attempt++ {
		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if !IsTransient(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.maxRetries {
			break
		}

		wait := min(cfg.baseBackoff<<attempt, cfg.maxBackoff)
		var rateErr *gh.RateLimitError
		if errors.As(lastErr, &rateErr) {
			if until := time.Until(rateErr.Rate.Reset.Time); until > 0 {
				wait = min(until, cfg.maxBackoff)
			}
		}

		clog.FromContext(ctx).With("operation", operation).
			With("attempt", attempt+1).
			With("backoff", wait).
			With("error", lastErr.Error()).
			Warn("transient GitHub API failure, retrying")

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return result, ctx.Err()
		}
	}

	return result, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.maxRetries, lastErr)
}
