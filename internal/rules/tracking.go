package rules

import (
	"fmt"
	"sort"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

// PatchTagMissing bootstraps a bare repository: a floating major with no
// patch versions at all gets an initial patch tag at the major's commit.
// Inert whenever any release check is enabled; PatchMissingRelease then
// owns the case and creates the tag through the release.
type PatchTagMissing struct{ meta }

func (r *PatchTagMissing) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if config.MostSevere(cfg.CheckReleases, cfg.CheckReleaseImmutability).Enabled() {
		return nil
	}
	var subjects []Subject
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

// Check always fails: Condition only selects majors without any patch.
func (r *PatchTagMissing) Check(Subject, *models.RepositoryState, *config.Config) bool {
	return false
}

func (r *PatchTagMissing) CreateIssue(s Subject, state *models.RepositoryState, _ *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueMissingVersion,
		Severity:    models.SeverityError,
		Message:     fmt.Sprintf("no patch versions exist yet; tag %s at %s", s.Version, s.SHA),
		Version:     s.Version.Raw,
		ExpectedSHA: s.SHA,
		Action:      actions.NewCreateRef(state.FullName(), s.Version, models.RefKindTag, s.SHA),
	}
}

// majorLines returns the distinct majors that have at least one patch,
// ascending, with the highest patch ref for each (honoring the
// prerelease exclusion).
func majorLines(state *models.RepositoryState, cfg *config.Config) []Subject {
	seen := map[int]bool{}
	var majors []int
	for _, p := range state.Patches() {
		if !seen[p.Version.Major] {
			seen[p.Version.Major] = true
			majors = append(majors, p.Version.Major)
		}
	}
	sort.Ints(majors)

	var subjects []Subject
	for _, major := range majors {
		highest, ok := state.HighestPatchForMajor(major, cfg.IgnorePreviewReleases)
		if !ok {
			continue
		}
		subjects = append(subjects, Subject{
			Version: models.MustParseVersion(fmt.Sprintf("v%d", major)),
			SHA:     highest.SHA,
		})
	}
	return subjects
}

// minorLines is majorLines per (major, minor) pair.
func minorLines(state *models.RepositoryState, cfg *config.Config) []Subject {
	type line struct{ major, minor int }
	seen := map[line]bool{}
	var lines []line
	for _, p := range state.Patches() {
		l := line{p.Version.Major, p.Version.Minor}
		if !seen[l] {
			seen[l] = true
			lines = append(lines, l)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].major != lines[j].major {
			return lines[i].major < lines[j].major
		}
		return lines[i].minor < lines[j].minor
	})

	var subjects []Subject
	for _, l := range lines {
		highest, ok := state.HighestPatchForMinor(l.major, l.minor, cfg.IgnorePreviewReleases)
		if !ok {
			continue
		}
		subjects = append(subjects, Subject{
			Version: models.MustParseVersion(fmt.Sprintf("v%d.%d", l.major, l.minor)),
			SHA:     highest.SHA,
		})
	}
	return subjects
}

// hasRef reports whether any non-ignored ref exists for the version.
func hasRef(state *models.RepositoryState, version string) bool {
	return len(state.RefsFor(version)) > 0
}

// refOfKind returns the version's ref of the given kind, if present.
func refOfKind(state *models.RepositoryState, version string, kind models.RefKind) (models.VersionRef, bool) {
	for _, r := range state.RefsFor(version) {
		if r.Kind == kind {
			return r, true
		}
	}
	return models.VersionRef{}, false
}

// MajorRefMissing requires a floating major ref for every major that has
// patches.
type MajorRefMissing struct{ meta }

func (r *MajorRefMissing) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	return majorLines(state, cfg)
}

func (r *MajorRefMissing) Check(s Subject, state *models.RepositoryState, _ *config.Config) bool {
	return hasRef(state, s.Version.Raw)
}

func (r *MajorRefMissing) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueMissingVersion,
		Severity:    models.SeverityError,
		Message:     fmt.Sprintf("floating version %s does not exist; create it at %s", s.Version, s.SHA),
		Version:     s.Version.Raw,
		ExpectedSHA: s.SHA,
		Action:      actions.NewCreateRef(state.FullName(), s.Version, floatingKind(cfg), s.SHA),
	}
}

// MajorTracksHighestPatch requires every floating major ref to point at
// the highest patch of its line.
type MajorTracksHighestPatch struct{ meta }

func (r *MajorTracksHighestPatch) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	var subjects []Subject
	for _, line := range majorLines(state, cfg) {
		ref, ok := refOfKind(state, line.Version.Raw, floatingKind(cfg))
		if !ok {
			continue
		}
		refCopy := ref
		line.Ref = &refCopy
		subjects = append(subjects, line)
	}
	return subjects
}

func (r *MajorTracksHighestPatch) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Ref.SHA == s.SHA
}

func (r *MajorTracksHighestPatch) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueIncorrectVersion,
		Severity:    models.SeverityError,
		Message:     fmt.Sprintf("floating version %s points at %s but the highest patch is at %s", s.Version, s.Ref.SHA, s.SHA),
		Version:     s.Version.Raw,
		CurrentSHA:  s.Ref.SHA,
		ExpectedSHA: s.SHA,
		Action:      actions.NewUpdateRef(state.FullName(), s.Version, floatingKind(cfg), s.SHA),
	}
}

// MinorRefMissing requires a floating minor ref for every minor line with
// patches. Inert unless check-minor-version is enabled.
type MinorRefMissing struct{ meta }

func (r *MinorRefMissing) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !cfg.CheckMinorVersion.Enabled() {
		return nil
	}
	return minorLines(state, cfg)
}

func (r *MinorRefMissing) Check(s Subject, state *models.RepositoryState, _ *config.Config) bool {
	return hasRef(state, s.Version.Raw)
}

func (r *MinorRefMissing) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueMissingVersion,
		Severity:    severityFor(cfg.CheckMinorVersion),
		Message:     fmt.Sprintf("floating version %s does not exist; create it at %s", s.Version, s.SHA),
		Version:     s.Version.Raw,
		ExpectedSHA: s.SHA,
		Action:      actions.NewCreateRef(state.FullName(), s.Version, floatingKind(cfg), s.SHA),
	}
}

// MinorTracksHighestPatch mirrors MajorTracksHighestPatch per minor line.
type MinorTracksHighestPatch struct{ meta }

func (r *MinorTracksHighestPatch) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	if !cfg.CheckMinorVersion.Enabled() {
		return nil
	}
	var subjects []Subject
	for _, line := range minorLines(state, cfg) {
		ref, ok := refOfKind(state, line.Version.Raw, floatingKind(cfg))
		if !ok {
			continue
		}
		refCopy := ref
		line.Ref = &refCopy
		subjects = append(subjects, line)
	}
	return subjects
}

func (r *MinorTracksHighestPatch) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Ref.SHA == s.SHA
}

func (r *MinorTracksHighestPatch) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:        models.IssueIncorrectVersion,
		Severity:    severityFor(cfg.CheckMinorVersion),
		Message:     fmt.Sprintf("floating version %s points at %s but the highest patch is at %s", s.Version, s.Ref.SHA, s.SHA),
		Version:     s.Version.Raw,
		CurrentSHA:  s.Ref.SHA,
		ExpectedSHA: s.SHA,
		Action:      actions.NewUpdateRef(state.FullName(), s.Version, floatingKind(cfg), s.SHA),
	}
}
