package models

// ReleaseInfo is a GitHub Release tied to a tag name. Draft, Prerelease,
// Immutable and Latest are platform facts surfaced verbatim from the
// release resource; none of them may be inferred from the tag name.
type ReleaseInfo struct {
	TagName    string
	ID         int64
	Draft      bool
	Prerelease bool
	Immutable  bool
	Latest     bool
	URL        string
	TargetSHA  string
	Ignored    bool
}

// Published reports whether the release is visible to consumers.
func (r ReleaseInfo) Published() bool { return !r.Draft }
