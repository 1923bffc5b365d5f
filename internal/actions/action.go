// Package actions holds the remediation command objects attached to
// validation issues. Each action owns the data it needs to execute and
// classifies its own failures: transient problems surface as failed
// (eligible for a future run), permanent platform rejections as
// unfixable, and credential or settings problems a human must resolve as
// manual_fix_required.
package actions

import (
	"context"

	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/models"
)

// Execution priorities across all pending actions in a run. Ref
// conversions and deletes run before creates, before release operations,
// before version-tracking updates, before latest handling.
const (
	PriorityConvertRef       = 5
	PriorityDeleteRef        = 6
	PriorityCreateRef        = 8
	PriorityCreateRelease    = 10
	PriorityPublishRelease   = 12
	PriorityRepublishRelease = 14
	PriorityDeleteRelease    = 16
	PriorityUpdateRef        = 25
	PrioritySetLatest        = 30
)

// Outcome is the result of executing one action.
type Outcome struct {
	Status models.IssueStatus
	Detail string
}

// Executable narrows models.Remediation to an action that can run. The
// reconciler type-asserts to it; issue values themselves stay free of
// client plumbing.
type Executable interface {
	models.Remediation
	Execute(ctx context.Context, gc github.Client, state *models.RepositoryState) Outcome
}

type base struct {
	priority      int
	description   string
	targetVersion string
	repo          string
	// unfixable is latched by execution when the platform rejects the
	// change permanently; manual commands are suppressed afterwards
	// because no command can succeed either.
	unfixable bool
}

func (b *base) Priority() int         { return b.priority }
func (b *base) Description() string   { return b.description }
func (b *base) TargetVersion() string { return b.targetVersion }

func (b *base) manual(cmds ...string) []string {
	if b.unfixable {
		return nil
	}
	return cmds
}

// classify maps an execution error onto the failure taxonomy.
func (b *base) classify(err error) Outcome {
	switch {
	case err == nil:
		return Outcome{Status: models.StatusFixed}
	case github.IsWorkflowPermission(err):
		return Outcome{
			Status: models.StatusManualFixRequired,
			Detail: "the credential cannot move refs whose commits touch workflow files; run the listed commands with a token that has the workflow scope",
		}
	case github.IsConflict(err):
		b.unfixable = true
		return Outcome{
			Status: models.StatusUnfixable,
			Detail: "the platform rejected the change permanently; the tag was most likely bound to a now-deleted immutable release, so no retry can succeed — add the version to ignore-versions or publish a new patch version instead",
		}
	default:
		return Outcome{Status: models.StatusFailed, Detail: err.Error()}
	}
}
