package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v84/github"
	"github.com/stretchr/testify/assert"
)

func TestWithRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0

	result, err := withRetry(context.Background(), testRetryConfig(), "op", func() (string, error) {
		calls++
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetriesTransient(t *testing.T) {
	calls := 0
	transient := &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusServiceUnavailable},
		Message:  "down",
	}

	result, err := withRetry(context.Background(), testRetryConfig(), "op", func() (string, error) {
		calls++
		if calls < 3 {
			return "", transient
		}
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	transient := &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusBadGateway},
		Message:  "bad gateway",
	}

	_, err := withRetry(context.Background(), testRetryConfig(), "op", func() (string, error) {
		calls++
		return "", transient
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "op failed after 2 retries")
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	permanent := errors.New("validation failed")

	_, err := withRetry(context.Background(), testRetryConfig(), "op", func() (string, error) {
		calls++
		return "", permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	transient := &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusServiceUnavailable},
		Message:  "down",
	}

	_, err := withRetry(ctx, testRetryConfig(), "op", func() (string, error) {
		return "", transient
	})

	assert.ErrorIs(t, err, context.Canceled)
}
