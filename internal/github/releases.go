package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v84/github"
)

type releasesPage struct {
	releases []*gh.RepositoryRelease
	resp     *gh.Response
}

// ListReleases returns every release, drafts included.
func (c *client) ListReleases(ctx context.Context) ([]*gh.RepositoryRelease, error) {
	var all []*gh.RepositoryRelease
	opts := &gh.ListOptions{PerPage: 100}

	for {
		page, err := withRetry(ctx, c.retry, "list releases", func() (releasesPage, error) {
			releases, resp, err := c.repositories.ListReleases(ctx, c.owner, c.repo, opts)
			return releasesPage{releases: releases, resp: resp}, err
		})
		if err != nil {
			return nil, err
		}

		all = append(all, page.releases...)

		if page.resp == nil || page.resp.NextPage == 0 {
			break
		}
		opts.Page = page.resp.NextPage
	}

	return all, nil
}

// GetRelease fetches one release by id, used to verify postconditions
// after a mutation rather than trusting the mutation's response.
func (c *client) GetRelease(ctx context.Context, id int64) (*gh.RepositoryRelease, error) {
	return withRetry(ctx, c.retry, fmt.Sprintf("get release %d", id), func() (*gh.RepositoryRelease, error) {
		rel, _, err := c.repositories.GetRelease(ctx, c.owner, c.repo, id)
		return rel, err
	})
}

// GetLatestRelease returns the release the platform currently surfaces as
// latest. A 404 means the repository has no published releases.
func (c *client) GetLatestRelease(ctx context.Context) (*gh.RepositoryRelease, error) {
	return withRetry(ctx, c.retry, "get latest release", func() (*gh.RepositoryRelease, error) {
		rel, _, err := c.repositories.GetLatestRelease(ctx, c.owner, c.repo)
		return rel, err
	})
}

func (c *client) CreateRelease(ctx context.Context, release *gh.RepositoryRelease) (*gh.RepositoryRelease, error) {
	return withRetry(ctx, c.retry, "create release "+release.GetTagName(), func() (*gh.RepositoryRelease, error) {
		rel, _, err := c.repositories.CreateRelease(ctx, c.owner, c.repo, release)
		return rel, err
	})
}

func (c *client) EditRelease(ctx context.Context, id int64, release *gh.RepositoryRelease) (*gh.RepositoryRelease, error) {
	return withRetry(ctx, c.retry, fmt.Sprintf("edit release %d", id), func() (*gh.RepositoryRelease, error) {
		rel, _, err := c.repositories.EditRelease(ctx, c.owner, c.repo, id, release)
		return rel, err
	})
}

func (c *client) DeleteRelease(ctx context.Context, id int64) error {
	_, err := withRetry(ctx, c.retry, fmt.Sprintf("delete release %d", id), func() (struct{}, error) {
		_, err := c.repositories.DeleteRelease(ctx, c.owner, c.repo, id)
		return struct{}{}, err
	})
	return err
}
