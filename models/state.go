package models

import "sort"

// TriState is an explicit three-valued flag for platform fields where
// "not set" means "let the platform decide".
type TriState int

const (
	TriStateUnset TriState = iota
	TriStateTrue
	TriStateFalse
)

// RepositoryState is the aggregate for one validation run: every version
// ref and release of one repository, fetched once. Issues accumulates
// during rule evaluation; everything else is read-only for the run.
type RepositoryState struct {
	Owner      string
	Name       string
	APIBase    string
	ServerBase string

	Tags     []VersionRef
	Branches []VersionRef
	Releases []ReleaseInfo

	Issues []*Issue
}

// FullName returns "owner/name".
func (s *RepositoryState) FullName() string { return s.Owner + "/" + s.Name }

// SettingsURL points at the repository settings page, used in manual-fix
// guidance for the immutable-releases toggle.
func (s *RepositoryState) SettingsURL() string {
	return s.ServerBase + "/" + s.FullName() + "/settings"
}

// VersionRefs returns tags then branches, excluding ignored refs.
func (s *RepositoryState) VersionRefs() []VersionRef {
	refs := make([]VersionRef, 0, len(s.Tags)+len(s.Branches))
	for _, r := range s.Tags {
		if !r.Ignored {
			refs = append(refs, r)
		}
	}
	for _, r := range s.Branches {
		if !r.Ignored {
			refs = append(refs, r)
		}
	}
	return refs
}

// Patches returns all non-ignored patch refs across both ref kinds,
// sorted ascending by version.
func (s *RepositoryState) Patches() []VersionRef {
	var patches []VersionRef
	for _, r := range s.VersionRefs() {
		if r.Version.IsPatch() {
			patches = append(patches, r)
		}
	}
	sort.SliceStable(patches, func(i, j int) bool {
		return patches[i].Version.Compare(patches[j].Version) < 0
	})
	return patches
}

// RefsFor returns every non-ignored ref whose version string matches,
// regardless of kind.
func (s *RepositoryState) RefsFor(version string) []VersionRef {
	var out []VersionRef
	for _, r := range s.VersionRefs() {
		if r.Version.Raw == version {
			out = append(out, r)
		}
	}
	return out
}

// HighestPatchForMajor returns the highest patch ref for the major,
// optionally skipping patches whose release is platform-flagged as a
// prerelease.
func (s *RepositoryState) HighestPatchForMajor(major int, excludePrereleases bool) (VersionRef, bool) {
	return s.highestPatch(func(v Version) bool { return v.Major == major }, excludePrereleases)
}

// HighestPatchForMinor is HighestPatchForMajor narrowed to one minor line.
func (s *RepositoryState) HighestPatchForMinor(major, minor int, excludePrereleases bool) (VersionRef, bool) {
	return s.highestPatch(func(v Version) bool { return v.Major == major && v.Minor == minor }, excludePrereleases)
}

// HighestPatch returns the highest patch ref overall.
func (s *RepositoryState) HighestPatch(excludePrereleases bool) (VersionRef, bool) {
	return s.highestPatch(func(Version) bool { return true }, excludePrereleases)
}

func (s *RepositoryState) highestPatch(match func(Version) bool, excludePrereleases bool) (VersionRef, bool) {
	var best VersionRef
	found := false
	for _, r := range s.Patches() {
		if !match(r.Version) {
			continue
		}
		if excludePrereleases {
			if rel, ok := s.ReleaseFor(r.Version.Raw); ok && rel.Prerelease {
				continue
			}
		}
		if !found || r.Version.Compare(best.Version) > 0 {
			best = r
			found = true
		}
	}
	return best, found
}

// ReleasesFor returns every non-ignored release bound to the tag name,
// sorted ascending by id.
func (s *RepositoryState) ReleasesFor(tagName string) []ReleaseInfo {
	var out []ReleaseInfo
	for _, r := range s.Releases {
		if !r.Ignored && r.TagName == tagName {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ReleaseFor returns the canonical release for a tag. When duplicates
// exist it returns the keeper per DuplicateReleases.
func (s *RepositoryState) ReleaseFor(tagName string) (ReleaseInfo, bool) {
	keeper, _, ok := s.DuplicateReleases(tagName)
	return keeper, ok
}

// DuplicateReleases splits the releases of one tag into the keeper and
// the extras. The keeper is chosen by published over draft, then
// immutable over mutable, then lowest id; extras come back in ascending
// id order.
func (s *RepositoryState) DuplicateReleases(tagName string) (ReleaseInfo, []ReleaseInfo, bool) {
	all := s.ReleasesFor(tagName)
	if len(all) == 0 {
		return ReleaseInfo{}, nil, false
	}
	keeper := all[0]
	for _, r := range all[1:] {
		if releasePreferred(r, keeper) {
			keeper = r
		}
	}
	var extras []ReleaseInfo
	for _, r := range all {
		if r.ID != keeper.ID {
			extras = append(extras, r)
		}
	}
	return keeper, extras, true
}

func releasePreferred(a, b ReleaseInfo) bool {
	if a.Published() != b.Published() {
		return a.Published()
	}
	if a.Immutable != b.Immutable {
		return a.Immutable
	}
	return a.ID < b.ID
}

// AnyImmutableRelease reports whether any release in the repository is
// already locked, which proves the immutable-releases setting is enabled.
func (s *RepositoryState) AnyImmutableRelease() bool {
	for _, r := range s.Releases {
		if r.Immutable {
			return true
		}
	}
	return false
}

// ShouldBeLatestRelease reports whether a release for the given patch
// version would be the newest stable release: no existing published,
// non-prerelease patch release (other than the version's own tag) has a
// higher version. Drafts, prereleases and releases on unparseable or
// non-patch tags never suppress it.
func (s *RepositoryState) ShouldBeLatestRelease(v Version) bool {
	for _, r := range s.Releases {
		if r.Ignored || r.Draft || r.Prerelease || r.TagName == v.Raw {
			continue
		}
		rv, ok := ParseVersion(r.TagName)
		if !ok || !rv.IsPatch() {
			continue
		}
		if rv.Compare(v) > 0 {
			return false
		}
	}
	return true
}

// LatestRelease returns the release carrying the platform latest flag.
func (s *RepositoryState) LatestRelease() (ReleaseInfo, bool) {
	for _, r := range s.Releases {
		if r.Latest {
			return r, true
		}
	}
	return ReleaseInfo{}, false
}
