package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion_Patch(t *testing.T) {
	v, ok := ParseVersion("v1.2.3")

	assert.True(t, ok)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 2, v.Minor)
	assert.Equal(t, 3, v.Patch)
	assert.True(t, v.IsPatch())
	assert.False(t, v.IsFloating())
}

func TestParseVersion_Major(t *testing.T) {
	v, ok := ParseVersion("v2")

	assert.True(t, ok)
	assert.Equal(t, 2, v.Major)
	assert.True(t, v.IsMajor())
	assert.False(t, v.IsMinor())
	assert.False(t, v.IsPatch())
	assert.True(t, v.IsFloating())
}

func TestParseVersion_Minor(t *testing.T) {
	v, ok := ParseVersion("v1.4")

	assert.True(t, ok)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 4, v.Minor)
	assert.True(t, v.IsMinor())
	assert.True(t, v.IsFloating())
}

func TestParseVersion_Latest(t *testing.T) {
	v, ok := ParseVersion("latest")

	assert.True(t, ok)
	assert.True(t, v.Latest)
	assert.False(t, v.IsMajor())
	assert.True(t, v.IsFloating())
}

func TestParseVersion_Rejects(t *testing.T) {
	for _, s := range []string{
		"1.2.3",
		"v1.2.3-rc.1",
		"v1.2.3.4",
		"va.b.c",
		"main",
		"v",
		"",
		"v1.2.3 ",
		"latest-ish",
	} {
		_, ok := ParseVersion(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestVersion_NumericOrdering(t *testing.T) {
	// String comparison would put v1.10.0 before v1.9.0.
	assert.Positive(t, MustParseVersion("v1.10.0").Compare(MustParseVersion("v1.9.0")))
	assert.Negative(t, MustParseVersion("v1.9.0").Compare(MustParseVersion("v1.10.0")))
	assert.Positive(t, MustParseVersion("v10").Compare(MustParseVersion("v9")))
	assert.Positive(t, MustParseVersion("v2.0.0").Compare(MustParseVersion("v1.99.99")))
	assert.Zero(t, MustParseVersion("v1.2.3").Compare(MustParseVersion("v1.2.3")))
}

func TestVersion_Aliases(t *testing.T) {
	v := MustParseVersion("v1.2.3")

	assert.Equal(t, "v1", v.MajorAlias())
	assert.Equal(t, "v1.2", v.MinorAlias())
}

func TestVersion_InitialPatch(t *testing.T) {
	assert.Equal(t, "v1.0.0", MustParseVersion("v1").InitialPatch().Raw)
	assert.Equal(t, "v2.3.0", MustParseVersion("v2.3").InitialPatch().Raw)
	assert.True(t, MustParseVersion("v1").InitialPatch().IsPatch())
}

func TestRefKind_RefPrefix(t *testing.T) {
	assert.Equal(t, "refs/tags/", RefKindTag.RefPrefix())
	assert.Equal(t, "refs/heads/", RefKindBranch.RefPrefix())
}
