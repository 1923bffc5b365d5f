package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

func TestFloatingRefWrongType_BranchWhenTagsConfigured(t *testing.T) {
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Branches: []models.VersionRef{branchRef("v1", "aaa")},
	}

	issues := Evaluate(context.Background(), state, defaultConfig(), ruleNamed(t, "floating_ref_wrong_type"))

	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueWrongRefType, issues[0].Type)
	assert.Equal(t, models.SeverityError, issues[0].Severity)
	assert.Equal(t, "v1", issues[0].Version)

	convert, ok := issues[0].Action.(*actions.ConvertRefType)
	require.True(t, ok)
	assert.Equal(t, models.RefKindBranch, convert.From)
	assert.Equal(t, models.RefKindTag, convert.To)
}

func TestFloatingRefWrongType_TagWhenBranchesConfigured(t *testing.T) {
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Tags: []models.VersionRef{tagRef("v1", "aaa")},
	}
	cfg := defaultConfig()
	cfg.FloatingVersionsUse = config.RefStyleBranches

	issues := Evaluate(context.Background(), state, cfg, ruleNamed(t, "floating_ref_wrong_type"))

	require.Len(t, issues, 1)
	convert, ok := issues[0].Action.(*actions.ConvertRefType)
	require.True(t, ok)
	assert.Equal(t, models.RefKindTag, convert.From)
	assert.Equal(t, models.RefKindBranch, convert.To)
}

func TestFloatingRefWrongType_CedesToDuplicateRule(t *testing.T) {
	// The version exists as both kinds; duplicate_version_ref owns it.
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Tags:     []models.VersionRef{tagRef("v1", "aaa")},
		Branches: []models.VersionRef{branchRef("v1", "bbb")},
	}

	issues := Evaluate(context.Background(), state, defaultConfig(), ruleNamed(t, "floating_ref_wrong_type"))

	assert.Empty(t, issues)
}

func TestPatchRefWrongType_BranchPatch(t *testing.T) {
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Branches: []models.VersionRef{branchRef("v1.0.0", "aaa")},
	}
	cfg := defaultConfig()
	// Patches must be tags even when floating versions live on branches.
	cfg.FloatingVersionsUse = config.RefStyleBranches

	issues := Evaluate(context.Background(), state, cfg, ruleNamed(t, "patch_ref_wrong_type"))

	require.Len(t, issues, 1)
	convert, ok := issues[0].Action.(*actions.ConvertRefType)
	require.True(t, ok)
	assert.Equal(t, models.RefKindTag, convert.To)
}

func TestDuplicateVersionRef_DeletesUnwantedKind(t *testing.T) {
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Tags:     []models.VersionRef{tagRef("v1", "aaa"), tagRef("v1.0.0", "aaa")},
		Branches: []models.VersionRef{branchRef("v1", "bbb")},
	}

	issues := Evaluate(context.Background(), state, defaultConfig(), ruleNamed(t, "duplicate_version_ref"))

	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueDuplicateRef, issues[0].Type)
	assert.Equal(t, "v1", issues[0].Version)

	del, ok := issues[0].Action.(*actions.DeleteRef)
	require.True(t, ok)
	assert.Equal(t, models.RefKindBranch, del.Kind)
}

func TestDuplicateVersionRef_PatchKeepsTag(t *testing.T) {
	state := &models.RepositoryState{
		Owner: "acme", Name: "widgets",
		Tags:     []models.VersionRef{tagRef("v1.0.0", "aaa")},
		Branches: []models.VersionRef{branchRef("v1.0.0", "aaa")},
	}
	cfg := defaultConfig()
	cfg.FloatingVersionsUse = config.RefStyleBranches

	issues := Evaluate(context.Background(), state, cfg, ruleNamed(t, "duplicate_version_ref"))

	require.Len(t, issues, 1)
	del, ok := issues[0].Action.(*actions.DeleteRef)
	require.True(t, ok)
	// The tag survives: releases bind to tags.
	assert.Equal(t, models.RefKindBranch, del.Kind)
}
