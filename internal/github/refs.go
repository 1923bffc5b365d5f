package github

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v84/github"
)

// ListTagRefs returns every ref under refs/tags/ with its object SHA.
func (c *client) ListTagRefs(ctx context.Context) ([]*gh.Reference, error) {
	return c.listRefs(ctx, "tags")
}

// ListBranchRefs returns every ref under refs/heads/ with its object SHA.
func (c *client) ListBranchRefs(ctx context.Context) ([]*gh.Reference, error) {
	return c.listRefs(ctx, "heads")
}

// listRefs matches a whole ref namespace in one call; the endpoint
// returns every match and exposes no pagination.
func (c *client) listRefs(ctx context.Context, namespace string) ([]*gh.Reference, error) {
	return withRetry(ctx, c.retry, "list "+namespace, func() ([]*gh.Reference, error) {
		refs, _, err := c.git.ListMatchingRefs(ctx, c.owner, c.repo, namespace)
		return refs, err
	})
}

// CreateRef creates a ref at the given commit. It does not force: the
// platform's "already exists" rejection surfaces to the caller so it can
// be distinguished from other failures.
func (c *client) CreateRef(ctx context.Context, refPath, sha string) error {
	_, err := withRetry(ctx, c.retry, "create ref "+refPath, func() (*gh.Reference, error) {
		ref, _, err := c.git.CreateRef(ctx, c.owner, c.repo, gh.CreateRef{
			Ref: refPath,
			SHA: sha,
		})
		return ref, err
	})
	return err
}

// UpdateRef force-moves an existing ref to a new commit.
func (c *client) UpdateRef(ctx context.Context, refPath, sha string) error {
	_, err := withRetry(ctx, c.retry, "update ref "+refPath, func() (*gh.Reference, error) {
		ref, _, err := c.git.UpdateRef(ctx, c.owner, c.repo, refPath, gh.UpdateRef{
			SHA:   sha,
			Force: gh.Ptr(true),
		})
		return ref, err
	})
	return err
}

// DeleteRef removes a ref. The adapter takes the path without the
// leading refs/ segment.
func (c *client) DeleteRef(ctx context.Context, refPath string) error {
	short := strings.TrimPrefix(refPath, "refs/")
	_, err := withRetry(ctx, c.retry, "delete ref "+refPath, func() (struct{}, error) {
		_, err := c.git.DeleteRef(ctx, c.owner, c.repo, short)
		return struct{}{}, err
	})
	return err
}
