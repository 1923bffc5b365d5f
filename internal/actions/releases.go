package actions

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v84/github"

	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/models"
)

// makeLatestFor decides the explicit make_latest value for publishing a
// release of the given version. The platform defaults a newly published
// release to latest, so the flag is forced to false whenever the version
// is not the highest stable patch; when it is (or no stable release
// exists yet) the flag is left unset and the platform's own heuristic
// applies.
func makeLatestFor(state *models.RepositoryState, version models.Version, prerelease bool) models.TriState {
	if prerelease {
		return models.TriStateFalse
	}
	if state.ShouldBeLatestRelease(version) {
		return models.TriStateUnset
	}
	return models.TriStateFalse
}

func applyMakeLatest(rel *gh.RepositoryRelease, t models.TriState) {
	switch t {
	case models.TriStateTrue:
		rel.MakeLatest = gh.Ptr("true")
	case models.TriStateFalse:
		rel.MakeLatest = gh.Ptr("false")
	}
}

// CreateRelease creates a release for a patch tag. When TargetSHA is set
// the tag does not exist yet and the platform creates it implicitly.
type CreateRelease struct {
	base
	TagName     string
	TargetSHA   string
	AutoPublish bool
}

func NewCreateRelease(repo string, version models.Version, targetSHA string, autoPublish bool) *CreateRelease {
	return &CreateRelease{
		base: base{
			priority:      PriorityCreateRelease,
			description:   fmt.Sprintf("create and publish release %s", version),
			targetVersion: version.String(),
			repo:          repo,
		},
		TagName:     version.String(),
		TargetSHA:   targetSHA,
		AutoPublish: autoPublish,
	}
}

func (a *CreateRelease) Execute(ctx context.Context, gc github.Client, state *models.RepositoryState) Outcome {
	version := models.MustParseVersion(a.TagName)
	rel := &gh.RepositoryRelease{
		TagName: gh.Ptr(a.TagName),
		Name:    gh.Ptr(a.TagName),
		Draft:   gh.Ptr(!a.AutoPublish),
	}
	if a.TargetSHA != "" {
		rel.TargetCommitish = gh.Ptr(a.TargetSHA)
	}
	if a.AutoPublish {
		applyMakeLatest(rel, makeLatestFor(state, version, false))
	}
	_, err := gc.CreateRelease(ctx, rel)
	return a.classify(err)
}

func (a *CreateRelease) ManualCommands() []string {
	cmd := fmt.Sprintf("gh release create %s --repo %s --title %s", a.TagName, a.repo, a.TagName)
	if a.TargetSHA != "" {
		cmd += " --target " + a.TargetSHA
	}
	if !a.AutoPublish {
		cmd += " --draft"
	}
	return a.manual(cmd)
}

// PublishRelease flips an existing draft release to published.
type PublishRelease struct {
	base
	TagName   string
	ReleaseID int64
}

func NewPublishRelease(repo string, version models.Version, releaseID int64) *PublishRelease {
	return &PublishRelease{
		base: base{
			priority:      PriorityPublishRelease,
			description:   fmt.Sprintf("publish draft release %s", version),
			targetVersion: version.String(),
			repo:          repo,
		},
		TagName:   version.String(),
		ReleaseID: releaseID,
	}
}

func (a *PublishRelease) Execute(ctx context.Context, gc github.Client, state *models.RepositoryState) Outcome {
	version := models.MustParseVersion(a.TagName)
	prerelease := false
	if rel, ok := state.ReleaseFor(a.TagName); ok {
		prerelease = rel.Prerelease
	}
	edit := &gh.RepositoryRelease{Draft: gh.Ptr(false)}
	applyMakeLatest(edit, makeLatestFor(state, version, prerelease))
	_, err := gc.EditRelease(ctx, a.ReleaseID, edit)
	return a.classify(err)
}

func (a *PublishRelease) ManualCommands() []string {
	return a.manual(fmt.Sprintf("gh release edit %s --repo %s --draft=false", a.TagName, a.repo))
}

// RepublishRelease round-trips a published release through draft and back
// so the platform applies its immutability lock to releases published
// before the repository-level setting was enabled. The lock is verified
// with a follow-up read rather than assumed from the edit succeeding.
type RepublishRelease struct {
	base
	TagName   string
	ReleaseID int64
}

func NewRepublishRelease(repo string, version models.Version, releaseID int64) *RepublishRelease {
	return &RepublishRelease{
		base: base{
			priority:      PriorityRepublishRelease,
			description:   fmt.Sprintf("republish release %s to lock it", version),
			targetVersion: version.String(),
			repo:          repo,
		},
		TagName:   version.String(),
		ReleaseID: releaseID,
	}
}

func (a *RepublishRelease) Execute(ctx context.Context, gc github.Client, state *models.RepositoryState) Outcome {
	if _, err := gc.EditRelease(ctx, a.ReleaseID, &gh.RepositoryRelease{Draft: gh.Ptr(true)}); err != nil {
		return a.classify(err)
	}

	version := models.MustParseVersion(a.TagName)
	prerelease := false
	if rel, ok := state.ReleaseFor(a.TagName); ok {
		prerelease = rel.Prerelease
	}
	publish := &gh.RepositoryRelease{Draft: gh.Ptr(false)}
	applyMakeLatest(publish, makeLatestFor(state, version, prerelease))
	if _, err := gc.EditRelease(ctx, a.ReleaseID, publish); err != nil {
		return a.classify(err)
	}

	verified, err := gc.GetRelease(ctx, a.ReleaseID)
	if err != nil {
		return Outcome{
			Status: models.StatusFailed,
			Detail: fmt.Sprintf("republished %s but could not verify immutability: %v", a.TagName, err),
		}
	}
	if !verified.GetImmutable() {
		detail := fmt.Sprintf("release %s was republished but is still mutable", a.TagName)
		if !state.AnyImmutableRelease() {
			detail += fmt.Sprintf("; enable immutable releases in the repository settings at %s", state.SettingsURL())
		}
		return Outcome{Status: models.StatusManualFixRequired, Detail: detail}
	}
	return Outcome{Status: models.StatusFixed}
}

func (a *RepublishRelease) ManualCommands() []string {
	return a.manual(
		fmt.Sprintf("gh release edit %s --repo %s --draft=true", a.TagName, a.repo),
		fmt.Sprintf("gh release edit %s --repo %s --draft=false", a.TagName, a.repo),
	)
}

// DeleteRelease removes a release, used for duplicate drafts and for
// mutable releases on floating versions. Immutable releases are never
// targeted: the rules mark those issues unfixable instead.
type DeleteRelease struct {
	base
	TagName   string
	ReleaseID int64
}

func NewDeleteRelease(repo string, version models.Version, releaseID int64) *DeleteRelease {
	return &DeleteRelease{
		base: base{
			priority:      PriorityDeleteRelease,
			description:   fmt.Sprintf("delete release %d for %s", releaseID, version),
			targetVersion: version.String(),
			repo:          repo,
		},
		TagName:   version.String(),
		ReleaseID: releaseID,
	}
}

func (a *DeleteRelease) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	return a.classify(gc.DeleteRelease(ctx, a.ReleaseID))
}

func (a *DeleteRelease) ManualCommands() []string {
	return a.manual(fmt.Sprintf("gh release delete %s --repo %s --yes", a.TagName, a.repo))
}

// SetLatestRelease moves the platform latest flag to the given release
// without touching its draft or prerelease state.
type SetLatestRelease struct {
	base
	TagName   string
	ReleaseID int64
}

func NewSetLatestRelease(repo string, version models.Version, releaseID int64) *SetLatestRelease {
	return &SetLatestRelease{
		base: base{
			priority:      PrioritySetLatest,
			description:   fmt.Sprintf("mark release %s as latest", version),
			targetVersion: version.String(),
			repo:          repo,
		},
		TagName:   version.String(),
		ReleaseID: releaseID,
	}
}

func (a *SetLatestRelease) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	_, err := gc.EditRelease(ctx, a.ReleaseID, &gh.RepositoryRelease{MakeLatest: gh.Ptr("true")})
	return a.classify(err)
}

func (a *SetLatestRelease) ManualCommands() []string {
	return a.manual(fmt.Sprintf("gh release edit %s --repo %s --latest", a.TagName, a.repo))
}
