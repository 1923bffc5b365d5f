package rules

import (
	"fmt"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

// LatestRefTracksHighest validates an existing "latest" alias ref against
// the highest patch overall. The bot never creates a latest ref; repos
// that do not use the alias simply have nothing to validate.
type LatestRefTracksHighest struct{ meta }

func (r *LatestRefTracksHighest) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	highest, ok := state.HighestPatch(cfg.IgnorePreviewReleases)
	if !ok {
		return nil
	}
	ref, ok := refOfKind(state, models.LatestAlias, floatingKind(cfg))
	if !ok {
		return nil
	}
	refCopy := ref
	return []Subject{{Version: ref.Version, Ref: &refCopy, SHA: highest.SHA}}
}

func (r *LatestRefTracksHighest) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Ref.SHA == s.SHA
}

func (r *LatestRefTracksHighest) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueIncorrectVersion,
		Severity:    models.SeverityError,
		Message:     fmt.Sprintf("latest points at %s but the highest patch is at %s", s.Ref.SHA, s.SHA),
		Version:     models.LatestAlias,
		CurrentSHA:  s.Ref.SHA,
		ExpectedSHA: s.SHA,
		Action:      actions.NewUpdateRef(state.FullName(), s.Version, floatingKind(cfg), s.SHA),
	}
}

// LatestReleaseCorrect requires the platform's latest flag to sit on the
// release of the highest published stable patch.
type LatestReleaseCorrect struct{ meta }

// expectedLatest returns the release that should carry the latest flag:
// the published, non-prerelease release with the highest patch version.
func expectedLatest(state *models.RepositoryState) (models.ReleaseInfo, models.Version, bool) {
	var best models.ReleaseInfo
	var bestVersion models.Version
	found := false
	for _, rel := range state.Releases {
		if rel.Ignored || rel.Draft || rel.Prerelease {
			continue
		}
		version, ok := models.ParseVersion(rel.TagName)
		if !ok || !version.IsPatch() {
			continue
		}
		if !found || version.Compare(bestVersion) > 0 {
			best, bestVersion, found = rel, version, true
		}
	}
	return best, bestVersion, found
}

func (r *LatestReleaseCorrect) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability).Enabled() {
		return nil
	}
	expected, version, ok := expectedLatest(state)
	if !ok {
		return nil
	}
	relCopy := expected
	return []Subject{{Version: version, Release: &relCopy}}
}

func (r *LatestReleaseCorrect) Check(s Subject, state *models.RepositoryState, _ *config.Config) bool {
	current, ok := state.LatestRelease()
	return ok && current.ID == s.Release.ID
}

func (r *LatestReleaseCorrect) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	msg := fmt.Sprintf("release %s should be marked latest", s.Version)
	if current, ok := state.LatestRelease(); ok {
		msg = fmt.Sprintf("release %s is marked latest but %s is the highest stable patch", current.TagName, s.Version)
	}
	return &models.Issue{
		Type:     models.IssueIncorrectLatestRelease,
		Severity: severityFor(config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability)),
		Message:  msg,
		Version:  s.Version.Raw,
		Action:   actions.NewSetLatestRelease(state.FullName(), s.Version, s.Release.ID),
	}
}
