package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// RefKind distinguishes the two git ref namespaces a version can live in.
type RefKind string

const (
	RefKindTag    RefKind = "tag"
	RefKindBranch RefKind = "branch"
)

// RefPrefix returns the git ref namespace prefix for the kind.
func (k RefKind) RefPrefix() string {
	if k == RefKindBranch {
		return "refs/heads/"
	}
	return "refs/tags/"
}

// LatestAlias is the literal version string for the "latest" alias ref.
const LatestAlias = "latest"

// versionPattern accepts vMAJOR, vMAJOR.MINOR and vMAJOR.MINOR.PATCH.
// Anything after the numeric components (prerelease suffixes included)
// makes the whole string a non-version: GitHub Actions floating-version
// resolution does not understand semver prerelease tags.
var versionPattern = regexp.MustCompile(`^v(\d+)(?:\.(\d+))?(?:\.(\d+))?$`)

// Version is a parsed version string. Depth records how many numeric
// components were present; Latest marks the "latest" alias, for which
// Depth is zero.
type Version struct {
	Raw    string
	Major  int
	Minor  int
	Patch  int
	Depth  int
	Latest bool
}

// ParseVersion classifies a version string. The second return is false
// for strings that are neither vM[.N[.P]] nor "latest".
func ParseVersion(s string) (Version, bool) {
	if s == LatestAlias {
		return Version{Raw: s, Latest: true}, true
	}
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}
	v := Version{Raw: s}
	for i, part := range m[1:] {
		if part == "" {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			// Component overflows int; treat as unparseable.
			return Version{}, false
		}
		switch i {
		case 0:
			v.Major = n
		case 1:
			v.Minor = n
		case 2:
			v.Patch = n
		}
		v.Depth = i + 1
	}
	return v, true
}

// MustParseVersion is a test and constructor helper for known-good strings.
func MustParseVersion(s string) Version {
	v, ok := ParseVersion(s)
	if !ok {
		panic(fmt.Sprintf("not a version: %q", s))
	}
	return v
}

func (v Version) IsMajor() bool { return !v.Latest && v.Depth == 1 }
func (v Version) IsMinor() bool { return !v.Latest && v.Depth == 2 }
func (v Version) IsPatch() bool { return !v.Latest && v.Depth == 3 }

// IsFloating reports whether the version is expected to move: major and
// minor aliases plus the "latest" alias.
func (v Version) IsFloating() bool { return v.Latest || v.IsMajor() || v.IsMinor() }

// Compare orders versions numerically by (major, minor, patch). Absent
// components compare as zero. "latest" sorts before everything else; it
// has no meaningful position and callers should not rely on it.
func (v Version) Compare(o Version) int {
	if v.Latest || o.Latest {
		switch {
		case v.Latest && o.Latest:
			return 0
		case v.Latest:
			return -1
		default:
			return 1
		}
	}
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmpInt(v.Patch, o.Patch)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	switch v.Depth {
	case 1:
		return fmt.Sprintf("v%d", v.Major)
	case 2:
		return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// MajorAlias returns the floating major alias string for this version,
// e.g. "v1" for v1.2.3.
func (v Version) MajorAlias() string {
	return fmt.Sprintf("v%d", v.Major)
}

// MinorAlias returns the floating minor alias string, e.g. "v1.2".
func (v Version) MinorAlias() string {
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}

// InitialPatch returns the synthetic first patch version for a floating
// major or minor, e.g. v1 -> v1.0.0, v1.2 -> v1.2.0.
func (v Version) InitialPatch() Version {
	p := Version{Major: v.Major, Minor: v.Minor, Depth: 3}
	p.Raw = p.String()
	return p
}

// VersionRef is a named pointer (tag or branch) to a commit.
type VersionRef struct {
	Version Version
	RefPath string
	SHA     string
	Kind    RefKind
	Ignored bool
}
