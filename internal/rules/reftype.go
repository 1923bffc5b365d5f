package rules

import (
	"fmt"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

// bothKindsExist reports a version present as both a tag and a branch;
// those cases belong to duplicate_version_ref.
func bothKindsExist(state *models.RepositoryState, version string) bool {
	kinds := map[models.RefKind]bool{}
	for _, r := range state.RefsFor(version) {
		kinds[r.Kind] = true
	}
	return len(kinds) > 1
}

// FloatingRefWrongType requires floating versions (major, minor, latest)
// to live in the configured ref namespace.
type FloatingRefWrongType struct{ meta }

func (r *FloatingRefWrongType) Condition(state *models.RepositoryState, _ *config.Config) []Subject {
	var subjects []Subject
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsFloating() {
			continue
		}
		if bothKindsExist(state, ref.Version.Raw) {
			continue
		}
		ref := ref
		subjects = append(subjects, Subject{Version: ref.Version, Ref: &ref})
	}
	return subjects
}

func (r *FloatingRefWrongType) Check(s Subject, _ *models.RepositoryState, cfg *config.Config) bool {
	return s.Ref.Kind == floatingKind(cfg)
}

func (r *FloatingRefWrongType) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	want := floatingKind(cfg)
	return &models.Issue{
		Type:       models.IssueWrongRefType,
		Severity:   models.SeverityError,
		Message:    fmt.Sprintf("floating version %s is a %s but floating-versions-use is %q", s.Version, s.Ref.Kind, cfg.FloatingVersionsUse),
		Version:    s.Version.Raw,
		CurrentSHA: s.Ref.SHA,
		Action:     actions.NewConvertRefType(state.FullName(), s.Version, s.Ref.Kind, want, s.Ref.SHA),
	}
}

// PatchRefWrongType requires patch versions to be tags: releases can only
// bind to tags and a released patch is expected to be immutable.
type PatchRefWrongType struct{ meta }

func (r *PatchRefWrongType) Condition(state *models.RepositoryState, _ *config.Config) []Subject {
	var subjects []Subject
	for _, ref := range state.VersionRefs() {
		if !ref.Version.IsPatch() {
			continue
		}
		if bothKindsExist(state, ref.Version.Raw) {
			continue
		}
		ref := ref
		subjects = append(subjects, Subject{Version: ref.Version, Ref: &ref})
	}
	return subjects
}

func (r *PatchRefWrongType) Check(s Subject, _ *models.RepositoryState, _ *config.Config) bool {
	return s.Ref.Kind == models.RefKindTag
}

func (r *PatchRefWrongType) CreateIssue(s Subject, state *models.RepositoryState, _ *config.Config) *models.Issue {
	return &models.Issue{
		Type:       models.IssueWrongRefType,
		Severity:   models.SeverityError,
		Message:    fmt.Sprintf("patch version %s is a branch; patch versions must be tags", s.Version),
		Version:    s.Version.Raw,
		CurrentSHA: s.Ref.SHA,
		Action:     actions.NewConvertRefType(state.FullName(), s.Version, s.Ref.Kind, models.RefKindTag, s.Ref.SHA),
	}
}

// DuplicateVersionRef detects a version existing as both a tag and a
// branch, the leftover of an interrupted ref-type conversion. The ref of
// the unwanted kind is deleted; other rules re-point the survivor on the
// same or a later run.
type DuplicateVersionRef struct{ meta }

func (r *DuplicateVersionRef) Condition(state *models.RepositoryState, cfg *config.Config) []Subject {
	var subjects []Subject
	seen := map[string]bool{}
	for _, ref := range state.VersionRefs() {
		if seen[ref.Version.Raw] || !bothKindsExist(state, ref.Version.Raw) {
			continue
		}
		seen[ref.Version.Raw] = true
		want := wantedKind(ref.Version, cfg)
		for _, dup := range state.RefsFor(ref.Version.Raw) {
			if dup.Kind == want {
				continue
			}
			dup := dup
			subjects = append(subjects, Subject{Version: dup.Version, Ref: &dup})
		}
	}
	return subjects
}

// Check always fails: Condition only selects refs of the unwanted kind.
func (r *DuplicateVersionRef) Check(Subject, *models.RepositoryState, *config.Config) bool {
	return false
}

func (r *DuplicateVersionRef) CreateIssue(s Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue {
	return &models.Issue{
		Type:       models.IssueDuplicateRef,
		Severity:   models.SeverityError,
		Message:    fmt.Sprintf("version %s exists as both a tag and a branch; deleting the %s", s.Version, s.Ref.Kind),
		Version:    s.Version.Raw,
		CurrentSHA: s.Ref.SHA,
		Action:     actions.NewDeleteRef(state.FullName(), s.Version, s.Ref.Kind),
	}
}
