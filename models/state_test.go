package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagRef(version, sha string) VersionRef {
	return VersionRef{
		Version: MustParseVersion(version),
		RefPath: "refs/tags/" + version,
		SHA:     sha,
		Kind:    RefKindTag,
	}
}

func branchRef(version, sha string) VersionRef {
	return VersionRef{
		Version: MustParseVersion(version),
		RefPath: "refs/heads/" + version,
		SHA:     sha,
		Kind:    RefKindBranch,
	}
}

func TestVersionRefs_SkipsIgnored(t *testing.T) {
	ignored := tagRef("v1.0.1", "bbb")
	ignored.Ignored = true
	state := &RepositoryState{
		Tags:     []VersionRef{tagRef("v1.0.0", "aaa"), ignored},
		Branches: []VersionRef{branchRef("v1", "aaa")},
	}

	refs := state.VersionRefs()

	require.Len(t, refs, 2)
	assert.Equal(t, "v1.0.0", refs[0].Version.Raw)
	assert.Equal(t, "v1", refs[1].Version.Raw)
}

func TestPatches_SortedNumerically(t *testing.T) {
	state := &RepositoryState{
		Tags: []VersionRef{
			tagRef("v1.10.0", "c"),
			tagRef("v1.2.0", "a"),
			tagRef("v1", "c"),
			tagRef("v1.9.0", "b"),
		},
	}

	patches := state.Patches()

	require.Len(t, patches, 3)
	assert.Equal(t, "v1.2.0", patches[0].Version.Raw)
	assert.Equal(t, "v1.9.0", patches[1].Version.Raw)
	assert.Equal(t, "v1.10.0", patches[2].Version.Raw)
}

func TestHighestPatchForMajor(t *testing.T) {
	state := &RepositoryState{
		Tags: []VersionRef{
			tagRef("v1.0.0", "a"),
			tagRef("v1.2.1", "b"),
			tagRef("v2.0.0", "c"),
		},
	}

	highest, ok := state.HighestPatchForMajor(1, false)

	require.True(t, ok)
	assert.Equal(t, "v1.2.1", highest.Version.Raw)

	_, ok = state.HighestPatchForMajor(3, false)
	assert.False(t, ok)
}

func TestHighestPatch_ExcludesPrereleases(t *testing.T) {
	state := &RepositoryState{
		Tags: []VersionRef{
			tagRef("v1.0.0", "a"),
			tagRef("v1.1.0", "b"),
		},
		Releases: []ReleaseInfo{
			{TagName: "v1.1.0", ID: 2, Prerelease: true},
			{TagName: "v1.0.0", ID: 1},
		},
	}

	highest, ok := state.HighestPatch(true)
	require.True(t, ok)
	assert.Equal(t, "v1.0.0", highest.Version.Raw)

	highest, ok = state.HighestPatch(false)
	require.True(t, ok)
	assert.Equal(t, "v1.1.0", highest.Version.Raw)
}

func TestDuplicateReleases_PublishedBeatsDraft(t *testing.T) {
	state := &RepositoryState{
		Releases: []ReleaseInfo{
			{TagName: "v1.0.0", ID: 102, Draft: true},
			{TagName: "v1.0.0", ID: 101, Draft: true},
			{TagName: "v1.0.0", ID: 100},
		},
	}

	keeper, extras, ok := state.DuplicateReleases("v1.0.0")

	require.True(t, ok)
	assert.Equal(t, int64(100), keeper.ID)
	require.Len(t, extras, 2)
	assert.Equal(t, int64(101), extras[0].ID)
	assert.Equal(t, int64(102), extras[1].ID)
}

func TestDuplicateReleases_ImmutableBeatsMutable(t *testing.T) {
	state := &RepositoryState{
		Releases: []ReleaseInfo{
			{TagName: "v1.0.0", ID: 10},
			{TagName: "v1.0.0", ID: 20, Immutable: true},
		},
	}

	keeper, extras, ok := state.DuplicateReleases("v1.0.0")

	require.True(t, ok)
	assert.Equal(t, int64(20), keeper.ID)
	require.Len(t, extras, 1)
	assert.Equal(t, int64(10), extras[0].ID)
}

func TestDuplicateReleases_TieBreaksOnLowestID(t *testing.T) {
	state := &RepositoryState{
		Releases: []ReleaseInfo{
			{TagName: "v1.0.0", ID: 7},
			{TagName: "v1.0.0", ID: 3},
		},
	}

	keeper, _, ok := state.DuplicateReleases("v1.0.0")

	require.True(t, ok)
	assert.Equal(t, int64(3), keeper.ID)
}

func TestReleaseFor_NoReleases(t *testing.T) {
	state := &RepositoryState{}

	_, ok := state.ReleaseFor("v1.0.0")

	assert.False(t, ok)
}

func TestShouldBeLatestRelease(t *testing.T) {
	state := &RepositoryState{
		Releases: []ReleaseInfo{
			{TagName: "v1.0.0", ID: 1},
			{TagName: "v2.0.0", ID: 2, Prerelease: true},
			{TagName: "v1.5.0", ID: 3, Draft: true},
		},
	}

	// Higher than every published stable release.
	assert.True(t, state.ShouldBeLatestRelease(MustParseVersion("v2.1.0")))
	// v1.1.0 beats v1.0.0; the v2.0.0 prerelease and the v1.5.0 draft do
	// not suppress it.
	assert.True(t, state.ShouldBeLatestRelease(MustParseVersion("v1.1.0")))
	// Below the published v1.0.0.
	assert.False(t, state.ShouldBeLatestRelease(MustParseVersion("v0.9.0")))
	// A release on the version's own tag never suppresses it.
	assert.True(t, state.ShouldBeLatestRelease(MustParseVersion("v1.0.0")))
}

func TestAnyImmutableRelease(t *testing.T) {
	assert.False(t, (&RepositoryState{
		Releases: []ReleaseInfo{{TagName: "v1.0.0", ID: 1}},
	}).AnyImmutableRelease())
	assert.True(t, (&RepositoryState{
		Releases: []ReleaseInfo{{TagName: "v1.0.0", ID: 1, Immutable: true}},
	}).AnyImmutableRelease())
}

func TestSettingsURL(t *testing.T) {
	state := &RepositoryState{
		Owner:      "acme",
		Name:       "widgets",
		ServerBase: "https://github.com",
	}

	assert.Equal(t, "https://github.com/acme/widgets/settings", state.SettingsURL())
}

func TestLatestRelease(t *testing.T) {
	state := &RepositoryState{
		Releases: []ReleaseInfo{
			{TagName: "v1.0.0", ID: 1},
			{TagName: "v1.1.0", ID: 2, Latest: true},
		},
	}

	latest, ok := state.LatestRelease()

	require.True(t, ok)
	assert.Equal(t, "v1.1.0", latest.TagName)
}
