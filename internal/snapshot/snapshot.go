// Package snapshot builds the immutable per-run view of a repository's
// version refs and releases. One snapshot is one validation run; there is
// no caching, a re-run starts with a fresh fetch.
package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/chainguard-dev/clog"
	gh "github.com/google/go-github/v84/github"

	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/models"
)

// Fetch gathers tags, branches and releases and assembles the
// RepositoryState. Refs that do not parse as versions are dropped: the
// policy has nothing to say about them.
func Fetch(ctx context.Context, gc github.Client, cfg *config.Config) (*models.RepositoryState, error) {
	state := &models.RepositoryState{
		Owner:      cfg.Owner(),
		Name:       cfg.Name(),
		APIBase:    cfg.APIBase,
		ServerBase: cfg.ServerBase,
	}

	tagRefs, err := gc.ListTagRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	state.Tags = versionRefs(tagRefs, models.RefKindTag, cfg.IgnoreVersions)

	branchRefs, err := gc.ListBranchRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	state.Branches = versionRefs(branchRefs, models.RefKindBranch, cfg.IgnoreVersions)

	releases, err := gc.ListReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}

	var latestID int64
	latest, err := gc.GetLatestRelease(ctx)
	switch {
	case err == nil:
		latestID = latest.GetID()
	case github.IsNotFound(err):
		// No published releases yet.
	default:
		return nil, fmt.Errorf("resolving latest release: %w", err)
	}

	for _, rel := range releases {
		state.Releases = append(state.Releases, releaseInfo(rel, latestID, cfg.IgnoreVersions))
	}

	clog.FromContext(ctx).
		With("tags", len(state.Tags)).
		With("branches", len(state.Branches)).
		With("releases", len(state.Releases)).
		Info("snapshot fetched")

	return state, nil
}

func versionRefs(refs []*gh.Reference, kind models.RefKind, ignore []string) []models.VersionRef {
	var out []models.VersionRef
	prefix := kind.RefPrefix()
	for _, ref := range refs {
		name := strings.TrimPrefix(ref.GetRef(), prefix)
		version, ok := models.ParseVersion(name)
		if !ok {
			continue
		}
		out = append(out, models.VersionRef{
			Version: version,
			RefPath: ref.GetRef(),
			SHA:     ref.GetObject().GetSHA(),
			Kind:    kind,
			Ignored: matchesIgnore(name, ignore),
		})
	}
	return out
}

func releaseInfo(rel *gh.RepositoryRelease, latestID int64, ignore []string) models.ReleaseInfo {
	return models.ReleaseInfo{
		TagName:    rel.GetTagName(),
		ID:         rel.GetID(),
		Draft:      rel.GetDraft(),
		Prerelease: rel.GetPrerelease(),
		Immutable:  rel.GetImmutable(),
		Latest:     latestID != 0 && rel.GetID() == latestID,
		URL:        rel.GetHTMLURL(),
		TargetSHA:  rel.GetTargetCommitish(),
		Ignored:    matchesIgnore(rel.GetTagName(), ignore),
	}
}

// matchesIgnore checks a version string against the ignore-versions
// patterns: exact match first, then doublestar glob.
func matchesIgnore(version string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if p == version {
			return true
		}
		if ok, err := doublestar.Match(p, version); err == nil && ok {
			return true
		}
	}
	return false
}
