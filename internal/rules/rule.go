// Package rules holds the validation rule engine. Rules are a closed,
// compiled-in set: each is a named, prioritized triple of pure functions
// over the snapshot and configuration. Rules never see each other's
// issues; where two rules could claim the same problem, one rule's
// Condition cedes the case to the other.
package rules

import (
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

type Category string

const (
	CategoryRefType  Category = "ref_type"
	CategoryRelease  Category = "release"
	CategoryTracking Category = "tracking"
	CategoryLatest   Category = "latest"
)

// Subject is one candidate a rule examines: a version, usually backed by
// a ref, a release, or both. SHA carries the backing commit for
// synthetic subjects that have no ref of their own yet.
type Subject struct {
	Version models.Version
	Ref     *models.VersionRef
	Release *models.ReleaseInfo
	SHA     string
}

// Rule is one validation rule. Condition selects candidate subjects
// (empty means the rule is inert for this run), Check reports whether a
// subject is valid, and CreateIssue produces the issue, optionally
// carrying a remediation, for a subject that failed.
type Rule interface {
	Name() string
	Priority() int
	Category() Category
	Condition(state *models.RepositoryState, cfg *config.Config) []Subject
	Check(subject Subject, state *models.RepositoryState, cfg *config.Config) bool
	CreateIssue(subject Subject, state *models.RepositoryState, cfg *config.Config) *models.Issue
}

type meta struct {
	name     string
	priority int
	category Category
}

func (m meta) Name() string       { return m.name }
func (m meta) Priority() int      { return m.priority }
func (m meta) Category() Category { return m.category }

// All returns every rule. Order here is cosmetic; the engine sorts by
// (priority, name) before evaluating.
func All() []Rule {
	return []Rule{
		&FloatingRefWrongType{meta{"floating_ref_wrong_type", 5, CategoryRefType}},
		&PatchRefWrongType{meta{"patch_ref_wrong_type", 6, CategoryRefType}},
		&DuplicateVersionRef{meta{"duplicate_version_ref", 7, CategoryRefType}},
		&PatchMissingRelease{meta{"patch_missing_release", 10, CategoryRelease}},
		&ReleaseShouldBePublished{meta{"release_should_be_published", 12, CategoryRelease}},
		&ReleaseShouldBeImmutable{meta{"release_should_be_immutable", 14, CategoryRelease}},
		&FloatingVersionNoRelease{meta{"floating_version_no_release", 16, CategoryRelease}},
		&DuplicateRelease{meta{"duplicate_release", 18, CategoryRelease}},
		&PatchTagMissing{meta{"patch_tag_missing", 20, CategoryTracking}},
		&MajorRefMissing{meta{"major_ref_missing", 21, CategoryTracking}},
		&MajorTracksHighestPatch{meta{"major_tracks_highest_patch", 22, CategoryTracking}},
		&MinorRefMissing{meta{"minor_ref_missing", 23, CategoryTracking}},
		&MinorTracksHighestPatch{meta{"minor_tracks_highest_patch", 24, CategoryTracking}},
		&LatestRefTracksHighest{meta{"latest_ref_tracks_highest", 30, CategoryLatest}},
		&LatestReleaseCorrect{meta{"latest_release_correct", 32, CategoryLatest}},
	}
}

func severityFor(level config.CheckLevel) models.Severity {
	if level == config.CheckError {
		return models.SeverityError
	}
	return models.SeverityWarning
}

// floatingKind maps the floating-versions-use input to a ref kind.
func floatingKind(cfg *config.Config) models.RefKind {
	if cfg.FloatingVersionsUse == config.RefStyleBranches {
		return models.RefKindBranch
	}
	return models.RefKindTag
}

// wantedKind is the ref kind a version is required to live in: patches
// are always tags (releases bind to tags), floating versions follow
// configuration.
func wantedKind(v models.Version, cfg *config.Config) models.RefKind {
	if v.IsPatch() {
		return models.RefKindTag
	}
	return floatingKind(cfg)
}
