package actions

import (
	"context"
	"errors"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v84/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/github-version-policy/internal/github/mocks"
	"github.com/tracker-tv/github-version-policy/models"
)

func conflictErr() error {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
		Message:  "Validation Failed",
	}
}

func alreadyExistsErr() error {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
		Message:  "Reference already exists",
	}
}

func workflowErr() error {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  "refusing to update ref without `workflow` scope",
	}
}

func testState() *models.RepositoryState {
	return &models.RepositoryState{
		Owner:      "acme",
		Name:       "widgets",
		ServerBase: "https://github.com",
	}
}

func TestCreateRef_Execute_Success(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().CreateRef(mock.Anything, "refs/tags/v1", "aaa").Once().Return(nil)

	a := NewCreateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "aaa")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestCreateRef_Execute_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().CreateRef(mock.Anything, "refs/tags/v1", "aaa").Once().Return(alreadyExistsErr())

	a := NewCreateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "aaa")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Detail, "re-run")
}

func TestCreateRef_ManualCommands(t *testing.T) {
	tag := NewCreateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "aaa")
	require.Len(t, tag.ManualCommands(), 2)
	assert.Equal(t, "git tag v1 aaa", tag.ManualCommands()[0])

	branch := NewCreateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindBranch, "aaa")
	assert.Equal(t, "git branch v1 aaa", branch.ManualCommands()[0])
}

func TestUpdateRef_Execute_ConflictIsUnfixable(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().UpdateRef(mock.Anything, "refs/tags/v1", "bbb").Once().Return(conflictErr())

	a := NewUpdateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "bbb")

	require.NotEmpty(t, a.ManualCommands())

	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusUnfixable, outcome.Status)
	assert.Contains(t, outcome.Detail, "ignore-versions")
	// No command can succeed against a permanent rejection either.
	assert.Empty(t, a.ManualCommands())
}

func TestUpdateRef_Execute_WorkflowPermission(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().UpdateRef(mock.Anything, "refs/tags/v1", "bbb").Once().Return(workflowErr())

	a := NewUpdateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "bbb")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusManualFixRequired, outcome.Status)
	assert.Contains(t, outcome.Detail, "workflow")
	// The commands can still succeed with a better credential.
	assert.NotEmpty(t, a.ManualCommands())
}

func TestUpdateRef_Execute_GenericFailure(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().UpdateRef(mock.Anything, "refs/tags/v1", "bbb").Once().Return(errors.New("network sadness"))

	a := NewUpdateRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindTag, "bbb")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Detail, "network sadness")
}

func TestDeleteRef_Execute_Success(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().DeleteRef(mock.Anything, "refs/heads/v1").Once().Return(nil)

	a := NewDeleteRef("acme/widgets", models.MustParseVersion("v1"), models.RefKindBranch)
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
	assert.Equal(t, []string{"git push origin :refs/heads/v1"}, a.ManualCommands())
}

func TestConvertRefType_Execute_Success(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().CreateRef(mock.Anything, "refs/tags/v1", "aaa").Once().Return(nil)
	gc.EXPECT().DeleteRef(mock.Anything, "refs/heads/v1").Once().Return(nil)

	a := NewConvertRefType("acme/widgets", models.MustParseVersion("v1"), models.RefKindBranch, models.RefKindTag, "aaa")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestConvertRefType_Execute_CreateToleratesExisting(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	// The new ref appeared already, e.g. a previous interrupted run.
	gc.EXPECT().CreateRef(mock.Anything, "refs/tags/v1", "aaa").Once().Return(alreadyExistsErr())
	gc.EXPECT().DeleteRef(mock.Anything, "refs/heads/v1").Once().Return(nil)

	a := NewConvertRefType("acme/widgets", models.MustParseVersion("v1"), models.RefKindBranch, models.RefKindTag, "aaa")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestConvertRefType_Execute_DeleteFails(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().CreateRef(mock.Anything, "refs/tags/v1", "aaa").Once().Return(nil)
	gc.EXPECT().DeleteRef(mock.Anything, "refs/heads/v1").Once().Return(errors.New("boom"))

	a := NewConvertRefType("acme/widgets", models.MustParseVersion("v1"), models.RefKindBranch, models.RefKindTag, "aaa")
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Detail, "could not be deleted")
}

func TestCreateRelease_Execute_Publish(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v2.0.0", ID: 1},
	}

	// v1.5.0 is below the published v2.0.0, so the platform must not mark
	// it latest.
	gc.EXPECT().
		CreateRelease(mock.Anything, mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.GetTagName() == "v1.5.0" &&
				!rel.GetDraft() &&
				rel.MakeLatest != nil && *rel.MakeLatest == "false"
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(9))}, nil)

	a := NewCreateRelease("acme/widgets", models.MustParseVersion("v1.5.0"), "", true)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestCreateRelease_Execute_HighestLeavesLatestToPlatform(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v1.0.0", ID: 1},
	}

	gc.EXPECT().
		CreateRelease(mock.Anything, mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.GetTagName() == "v2.0.0" && rel.MakeLatest == nil
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(9))}, nil)

	a := NewCreateRelease("acme/widgets", models.MustParseVersion("v2.0.0"), "", true)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestCreateRelease_Execute_SyntheticTagSetsTarget(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().
		CreateRelease(mock.Anything, mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.GetTagName() == "v1.0.0" && rel.GetTargetCommitish() == "aaa"
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(9))}, nil)

	a := NewCreateRelease("acme/widgets", models.MustParseVersion("v1.0.0"), "aaa", true)
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestCreateRelease_ManualCommands(t *testing.T) {
	a := NewCreateRelease("acme/widgets", models.MustParseVersion("v1.0.0"), "aaa", true)

	require.Len(t, a.ManualCommands(), 1)
	assert.Contains(t, a.ManualCommands()[0], "gh release create v1.0.0")
	assert.Contains(t, a.ManualCommands()[0], "--target aaa")
}

func TestPublishRelease_Execute_PrereleaseNeverLatest(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v2.0.0", ID: 5, Draft: true, Prerelease: true},
	}

	gc.EXPECT().
		EditRelease(mock.Anything, int64(5), mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.Draft != nil && !*rel.Draft &&
				rel.MakeLatest != nil && *rel.MakeLatest == "false"
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)

	a := NewPublishRelease("acme/widgets", models.MustParseVersion("v2.0.0"), 5)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestRepublishRelease_Execute_Verified(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v1.0.0", ID: 5},
	}

	gc.EXPECT().
		EditRelease(mock.Anything, int64(5), mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.Draft != nil && *rel.Draft
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)
	gc.EXPECT().
		EditRelease(mock.Anything, int64(5), mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.Draft != nil && !*rel.Draft
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)
	gc.EXPECT().
		GetRelease(mock.Anything, int64(5)).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5)), Immutable: gh.Ptr(true)}, nil)

	a := NewRepublishRelease("acme/widgets", models.MustParseVersion("v1.0.0"), 5)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestRepublishRelease_Execute_StillMutable(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v1.0.0", ID: 5},
	}

	gc.EXPECT().EditRelease(mock.Anything, int64(5), mock.Anything).Twice().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)
	gc.EXPECT().GetRelease(mock.Anything, int64(5)).Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5)), Immutable: gh.Ptr(false)}, nil)

	a := NewRepublishRelease("acme/widgets", models.MustParseVersion("v1.0.0"), 5)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusManualFixRequired, outcome.Status)
	// No release is immutable, so the setting is probably off.
	assert.Contains(t, outcome.Detail, "https://github.com/acme/widgets/settings")
}

func TestRepublishRelease_Execute_StillMutableSettingEnabled(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v1.0.0", ID: 5},
		{TagName: "v2.0.0", ID: 6, Immutable: true},
	}

	gc.EXPECT().EditRelease(mock.Anything, int64(5), mock.Anything).Twice().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)
	gc.EXPECT().GetRelease(mock.Anything, int64(5)).Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5)), Immutable: gh.Ptr(false)}, nil)

	a := NewRepublishRelease("acme/widgets", models.MustParseVersion("v1.0.0"), 5)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusManualFixRequired, outcome.Status)
	// Another release is locked, so the setting is on and the guidance
	// must not point at it.
	assert.NotContains(t, outcome.Detail, "settings")
}

func TestRepublishRelease_Execute_VerifyFails(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)
	state := testState()
	state.Releases = []models.ReleaseInfo{
		{TagName: "v1.0.0", ID: 5},
	}

	gc.EXPECT().EditRelease(mock.Anything, int64(5), mock.Anything).Twice().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(5))}, nil)
	gc.EXPECT().GetRelease(mock.Anything, int64(5)).Once().
		Return(nil, errors.New("boom"))

	a := NewRepublishRelease("acme/widgets", models.MustParseVersion("v1.0.0"), 5)
	outcome := a.Execute(ctx, gc, state)

	assert.Equal(t, models.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Detail, "could not verify")
}

func TestDeleteRelease_Execute_Success(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().DeleteRelease(mock.Anything, int64(7)).Once().Return(nil)

	a := NewDeleteRelease("acme/widgets", models.MustParseVersion("v1"), 7)
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
}

func TestSetLatestRelease_Execute(t *testing.T) {
	ctx := context.Background()
	gc := mocks.NewMockClient(t)

	gc.EXPECT().
		EditRelease(mock.Anything, int64(7), mock.MatchedBy(func(rel *gh.RepositoryRelease) bool {
			return rel.MakeLatest != nil && *rel.MakeLatest == "true"
		})).
		Once().
		Return(&gh.RepositoryRelease{ID: gh.Ptr(int64(7))}, nil)

	a := NewSetLatestRelease("acme/widgets", models.MustParseVersion("v2.0.0"), 7)
	outcome := a.Execute(ctx, gc, testState())

	assert.Equal(t, models.StatusFixed, outcome.Status)
	assert.Equal(t, []string{"gh release edit v2.0.0 --repo acme/widgets --latest"}, a.ManualCommands())
}

func TestActionPriorities_Ordering(t *testing.T) {
	repo := "acme/widgets"
	v := models.MustParseVersion("v1.0.0")

	convert := NewConvertRefType(repo, v, models.RefKindBranch, models.RefKindTag, "aaa")
	deleteRef := NewDeleteRef(repo, v, models.RefKindBranch)
	create := NewCreateRef(repo, v, models.RefKindTag, "aaa")
	createRel := NewCreateRelease(repo, v, "", true)
	update := NewUpdateRef(repo, v, models.RefKindTag, "aaa")
	setLatest := NewSetLatestRelease(repo, v, 1)

	assert.Less(t, convert.Priority(), deleteRef.Priority())
	assert.Less(t, deleteRef.Priority(), create.Priority())
	assert.Less(t, create.Priority(), createRel.Priority())
	assert.Less(t, createRel.Priority(), update.Priority())
	assert.Less(t, update.Priority(), setLatest.Priority())
}
