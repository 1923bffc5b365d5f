package github

import (
	"errors"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v84/github"
)

// IsTransient reports whether the error is worth retrying: rate limits,
// secondary rate limits and 5xx responses.
func IsTransient(err error) bool {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		code := respErr.Response.StatusCode
		return code >= 500 || code == http.StatusTooManyRequests
	}
	return false
}

// IsConflict reports a 422 response. For ref and release writes this is
// the platform refusing an operation that can never succeed as requested,
// e.g. recreating a tag that was bound to a deleted immutable release.
func IsConflict(err error) bool {
	return statusCode(err) == http.StatusUnprocessableEntity
}

// IsAlreadyExists reports the specific 422 returned for a non-forcing ref
// create against an existing ref.
func IsAlreadyExists(err error) bool {
	var respErr *gh.ErrorResponse
	if !errors.As(err, &respErr) {
		return false
	}
	if statusCode(err) != http.StatusUnprocessableEntity {
		return false
	}
	return strings.Contains(strings.ToLower(respErr.Message), "already exists")
}

// IsWorkflowPermission reports the rejection GitHub issues when the
// credential lacks the workflow scope and the target commit touches
// workflow definition files. Retrying with the same credential cannot
// succeed.
func IsWorkflowPermission(err error) bool {
	var respErr *gh.ErrorResponse
	if !errors.As(err, &respErr) {
		return false
	}
	msg := strings.ToLower(respErr.Message)
	return strings.Contains(msg, "workflow") &&
		(strings.Contains(msg, "permission") || strings.Contains(msg, "scope"))
}

// IsNotFound reports a 404 response.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func statusCode(err error) int {
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}
