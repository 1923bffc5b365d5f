package rules

import (
	"fmt"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

// PatchMissingRelease requires every patch tag to have a GitHub Release.
// It also owns the empty-repository bootstrap: a floating major with no
// patches at all gets a synthetic initial patch released at the major's
// commit, which creates the patch tag implicitly.
type PatchMissingRelease struct{ meta }

func (r *PatchMissingRelease) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability).Enabled() {
		return nil
	}

	var subjects []Subject
	for _, ref := range state.VersionRefs() {
		if ref.Version.IsPatch() && ref.Kind == models.RefKindTag {
			ref := ref
			subjects = append(subjects, Subject{Version: ref.Version, Ref: &ref, SHA: ref.SHA})
		}
	}
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsMajor() {
			continue
		}
		if _, ok := state.HighestPatchForMajor(ref.Version.Major, false); ok {
			continue
		}
		subjects = append(subjects, Subject{Version: ref.Version.InitialPatch(), SHA: ref.SHA})
	}
	return subjects
}

func (r *PatchMissingRelease) Check(s Subject, state *models.RepositoryState, _ *config.Config) bool {
	if s.Ref == nil {
		// Synthetic initial patch: neither tag nor release exists.
		return false
	}
	_, ok := state.ReleaseFor(s.Version.Raw)
	return ok
}

func (r *PatchMissingRelease) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	targetSHA := ""
	msg := fmt.Sprintf("patch version %s has no release", s.Version)
	if s.Ref == nil {
		targetSHA = s.SHA
		msg = fmt.Sprintf("no patch versions exist yet; release %s at %s", s.Version, s.SHA)
	}
	return &models.Issue{
		Type:        models.IssueMissingRelease,
		Severity:    severityFor(config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability)),
		Message:     msg,
		Version:     s.Version.Raw,
		ExpectedSHA: s.SHA,
		Action:      actions.NewCreateRelease(state.FullName(), s.Version, targetSHA, true),
	}
}

// ReleaseShouldBePublished flags draft releases on patch tags. Severity
// is most-severe-wins over check-releases and check-release-immutability:
// a draft is invisible to consumers and, where immutability is required,
// also unlocked.
type ReleaseShouldBePublished struct{ meta }

func (r *ReleaseShouldBePublished) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability).Enabled() {
		return nil
	}
	var subjects []Subject
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsPatch() || ref.Kind != models.RefKindTag {
			continue
		}
		rel, ok := state.ReleaseFor(ref.Version.Raw)
		if !ok {
			continue
		}
		relCopy := rel
		refCopy := ref
		subjects = append(subjects, Subject{Version: ref.Version, Ref: &refCopy, Release: &relCopy})
	}
	return subjects
}

func (r *ReleaseShouldBePublished) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Release.Published()
}

func (r *ReleaseShouldBePublished) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:     models.IssueUnpublishedRelease,
		Severity: severityFor(config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability)),
		Message:  fmt.Sprintf("release for %s is a draft and should be published", s.Version),
		Version:  s.Version.Raw,
		Action:   actions.NewPublishRelease(state.FullName(), s.Version, s.Release.ID),
	}
}

// ReleaseShouldBeImmutable flags published patch releases that predate
// the repository's immutable-releases setting and are therefore still
// unlocked. Republishing is the only way to lock them retroactively.
type ReleaseShouldBeImmutable struct{ meta }

func (r *ReleaseShouldBeImmutable) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !cfg.CheckReleaseImmutability.Enabled() {
		return nil
	}
	var subjects []Subject
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsPatch() || ref.Kind != models.RefKindTag {
			continue
		}
		rel, ok := state.ReleaseFor(ref.Version.Raw)
		if !ok || !rel.Published() {
			continue
		}
		relCopy := rel
		refCopy := ref
		subjects = append(subjects, Subject{Version: ref.Version, Ref: &refCopy, Release: &relCopy})
	}
	return subjects
}

func (r *ReleaseShouldBeImmutable) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Release.Immutable
}

func (r *ReleaseShouldBeImmutable) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:     models.IssueMutableRelease,
		Severity: severityFor(cfg.CheckReleaseImmutability),
		Message:  fmt.Sprintf("release for %s is published but not immutable", s.Version),
		Version:  s.Version.Raw,
		Action:   actions.NewRepublishRelease(state.FullName(), s.Version, s.Release.ID),
	}
}

// FloatingVersionNoRelease flags releases bound to floating version tags.
// A floating version moves; a release pins it in consumers' UIs and, once
// immutable, pins it forever. Severity comes from the data: a mutable
// release is a deletable warning, an immutable one is an error nothing
// can fix.
type FloatingVersionNoRelease struct{ meta }

func (r *FloatingVersionNoRelease) Condition(state *models.RepositoryState, _ *config.Config) []Subject {
	var subjects []Subject
	for _, rel := range state.Releases {
		if rel.Ignored {
			continue
		}
		version, ok := models.ParseVersion(rel.TagName)
		if !ok || !version.IsFloating() {
			continue
		}
		relCopy := rel
		subjects = append(subjects, Subject{Version: version, Release: &relCopy})
	}
	return subjects
}

// Check always fails: Condition only selects releases on floating tags.
func (r *FloatingVersionNoRelease) Check(Subject, *models.RepositoryState, *config.Config) bool {
	return false
}

func (r *FloatingVersionNoRelease) CreateIssue(s Subject, state *models.RepositoryState, _ *config.Config) *models.Issue {
	if s.Release.Immutable {
		return &models.Issue{
			Type:     models.IssueUnexpectedRelease,
			Severity: models.SeverityError,
			Message:  fmt.Sprintf("floating version %s has an immutable release; it can never be deleted", s.Version),
			Version:  s.Version.Raw,
			Status:   models.StatusUnfixable,
			Detail:   "immutable releases cannot be deleted; add the version to ignore-versions or stop publishing releases for floating versions",
		}
	}
	return &models.Issue{
		Type:     models.IssueUnexpectedRelease,
		Severity: models.SeverityWarning,
		Message:  fmt.Sprintf("floating version %s has a release; floating versions must not be released", s.Version),
		Version:  s.Version.Raw,
		Action:   actions.NewDeleteRelease(state.FullName(), s.Version, s.Release.ID),
	}
}

// DuplicateRelease reports extra releases bound to the same patch tag.
// The keeper is chosen by published over draft, immutable over mutable,
// then lowest id; draft extras are deleted, anything else is only
// reported.
type DuplicateRelease struct{ meta }

func (r *DuplicateRelease) Condition(state *models.RepositoryState, _ *config.Config) []Subject {
	var subjects []Subject
	seen := map[string]bool{}
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsPatch() || ref.Kind != models.RefKindTag || seen[ref.Version.Raw] {
			continue
		}
		seen[ref.Version.Raw] = true
		_, extras, _ := state.DuplicateReleases(ref.Version.Raw)
		for _, extra := range extras {
			extra := extra
			subjects = append(subjects, Subject{Version: ref.Version, Release: &extra})
		}
	}
	return subjects
}

// Check always fails: Condition only selects non-keeper releases.
func (r *DuplicateRelease) Check(Subject, *models.RepositoryState, *config.Config) bool {
	return false
}

func (r *DuplicateRelease) CreateIssue(s Subject, state *models.RepositoryState, _ *config.Config) *models.Issue {
	issue := &models.Issue{
		Type:     models.IssueDuplicateRelease,
		Severity: models.SeverityError,
		Message:  fmt.Sprintf("tag %s has more than one release (extra release id %d)", s.Version, s.Release.ID),
		Version:  s.Version.Raw,
	}
	if s.Release.Draft {
		issue.Action = actions.NewDeleteRelease(state.FullName(), s.Version, s.Release.ID)
	} else {
		issue.Message += "; the extra release is published and will not be deleted automatically"
	}
	return issue
}
