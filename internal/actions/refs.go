package actions

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/models"
)

// CreateRef creates a missing version ref. Non-forcing: if the ref
// appeared since the snapshot, execution reports failed and the next run
// re-evaluates.
type CreateRef struct {
	base
	Kind models.RefKind
	SHA  string
}

func NewCreateRef(repo string, version models.Version, kind models.RefKind, sha string) *CreateRef {
	return &CreateRef{
		base: base{
			priority:      PriorityCreateRef,
			description:   fmt.Sprintf("create %s %s at %s", kind, version, sha),
			targetVersion: version.String(),
			repo:          repo,
		},
		Kind: kind,
		SHA:  sha,
	}
}

func (a *CreateRef) refPath() string { return a.Kind.RefPrefix() + a.targetVersion }

func (a *CreateRef) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	err := gc.CreateRef(ctx, a.refPath(), a.SHA)
	if github.IsAlreadyExists(err) {
		return Outcome{
			Status: models.StatusFailed,
			Detail: fmt.Sprintf("%s already exists; re-run to validate it", a.refPath()),
		}
	}
	return a.classify(err)
}

func (a *CreateRef) ManualCommands() []string {
	if a.Kind == models.RefKindBranch {
		return a.manual(
			fmt.Sprintf("git branch %s %s", a.targetVersion, a.SHA),
			fmt.Sprintf("git push origin %s", a.refPath()),
		)
	}
	return a.manual(
		fmt.Sprintf("git tag %s %s", a.targetVersion, a.SHA),
		fmt.Sprintf("git push origin %s", a.refPath()),
	)
}

// UpdateRef force-moves an existing ref to the expected commit.
type UpdateRef struct {
	base
	Kind models.RefKind
	SHA  string
}

func NewUpdateRef(repo string, version models.Version, kind models.RefKind, sha string) *UpdateRef {
	return &UpdateRef{
		base: base{
			priority:      PriorityUpdateRef,
			description:   fmt.Sprintf("move %s %s to %s", kind, version, sha),
			targetVersion: version.String(),
			repo:          repo,
		},
		Kind: kind,
		SHA:  sha,
	}
}

func (a *UpdateRef) refPath() string { return a.Kind.RefPrefix() + a.targetVersion }

func (a *UpdateRef) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	return a.classify(gc.UpdateRef(ctx, a.refPath(), a.SHA))
}

func (a *UpdateRef) ManualCommands() []string {
	if a.Kind == models.RefKindBranch {
		return a.manual(
			fmt.Sprintf("git branch -f %s %s", a.targetVersion, a.SHA),
			fmt.Sprintf("git push --force origin %s", a.refPath()),
		)
	}
	return a.manual(
		fmt.Sprintf("git tag -f %s %s", a.targetVersion, a.SHA),
		fmt.Sprintf("git push --force origin %s", a.refPath()),
	)
}

// DeleteRef removes a ref.
type DeleteRef struct {
	base
	Kind models.RefKind
}

func NewDeleteRef(repo string, version models.Version, kind models.RefKind) *DeleteRef {
	return &DeleteRef{
		base: base{
			priority:      PriorityDeleteRef,
			description:   fmt.Sprintf("delete %s %s", kind, version),
			targetVersion: version.String(),
			repo:          repo,
		},
		Kind: kind,
	}
}

func (a *DeleteRef) refPath() string { return a.Kind.RefPrefix() + a.targetVersion }

func (a *DeleteRef) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	return a.classify(gc.DeleteRef(ctx, a.refPath()))
}

func (a *DeleteRef) ManualCommands() []string {
	return a.manual(fmt.Sprintf("git push origin :%s", a.refPath()))
}

// ConvertRefType recreates a version ref under the other ref namespace at
// the same commit, then deletes the original. Create-then-delete: if the
// delete half fails, both refs exist and the duplicate-ref rule reports
// it on the next run.
type ConvertRefType struct {
	base
	From models.RefKind
	To   models.RefKind
	SHA  string
}

func NewConvertRefType(repo string, version models.Version, from, to models.RefKind, sha string) *ConvertRefType {
	return &ConvertRefType{
		base: base{
			priority:      PriorityConvertRef,
			description:   fmt.Sprintf("convert %s %s to a %s", from, version, to),
			targetVersion: version.String(),
			repo:          repo,
		},
		From: from,
		To:   to,
		SHA:  sha,
	}
}

func (a *ConvertRefType) Execute(ctx context.Context, gc github.Client, _ *models.RepositoryState) Outcome {
	newPath := a.To.RefPrefix() + a.targetVersion
	if err := gc.CreateRef(ctx, newPath, a.SHA); err != nil && !github.IsAlreadyExists(err) {
		return a.classify(err)
	}

	oldPath := a.From.RefPrefix() + a.targetVersion
	if err := gc.DeleteRef(ctx, oldPath); err != nil {
		clog.FromContext(ctx).With("ref", oldPath).With("error", err.Error()).
			Warn("converted ref created but original not deleted")
		out := a.classify(err)
		if out.Status == models.StatusFailed {
			out.Detail = fmt.Sprintf("%s was created but %s could not be deleted; the duplicate will be reported on the next run", newPath, oldPath)
		}
		return out
	}
	return Outcome{Status: models.StatusFixed}
}

func (a *ConvertRefType) ManualCommands() []string {
	newPath := a.To.RefPrefix() + a.targetVersion
	oldPath := a.From.RefPrefix() + a.targetVersion
	create := fmt.Sprintf("git tag %s %s", a.targetVersion, a.SHA)
	if a.To == models.RefKindBranch {
		create = fmt.Sprintf("git branch %s %s", a.targetVersion, a.SHA)
	}
	return a.manual(
		create,
		fmt.Sprintf("git push origin %s", newPath),
		fmt.Sprintf("git push origin :%s", oldPath),
	)
}
