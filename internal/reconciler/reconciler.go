// Package reconciler executes the remediation actions attached to
// pending issues and derives the run's aggregate result. Execution is
// strictly sequential in action-priority order: later actions may assume
// earlier ones (ref-type conversions before tracking updates) have been
// committed.
package reconciler

import (
	"context"
	"sort"

	"github.com/chainguard-dev/clog"

	"github.com/tracker-tv/github-version-policy/internal/actions"
	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/models"
)

// Reconcile drives every pending, auto-fixable issue to a final status.
// With autoFix disabled nothing executes; fixable issues are marked
// manual_fix_required so the reporter prints their commands. With it
// enabled, each action runs independently: one failure never blocks the
// rest.
func Reconcile(ctx context.Context, gc github.Client, state *models.RepositoryState, autoFix bool) {
	var fixable []*models.Issue
	for _, issue := range state.Issues {
		if issue.Status == models.StatusPending && issue.AutoFixable() {
			fixable = append(fixable, issue)
		}
	}
	// Stable: ties keep discovery order (rule order, then subject order).
	sort.SliceStable(fixable, func(i, j int) bool {
		return fixable[i].Action.Priority() < fixable[j].Action.Priority()
	})

	log := clog.FromContext(ctx)
	for _, issue := range fixable {
		if !autoFix {
			issue.Status = models.StatusManualFixRequired
			continue
		}

		exec, ok := issue.Action.(actions.Executable)
		if !ok {
			issue.Status = models.StatusManualFixRequired
			continue
		}

		log.With("action", issue.Action.Description()).
			With("version", issue.Version).
			Info("executing remediation")

		outcome := exec.Execute(ctx, gc, state)
		issue.Status = outcome.Status
		issue.Detail = outcome.Detail

		if outcome.Status != models.StatusFixed {
			log.With("action", issue.Action.Description()).
				With("status", string(outcome.Status)).
				With("detail", outcome.Detail).
				Warn("remediation did not fix the issue")
		}
	}
}

// ExitCode derives the process result from issue statuses; it is never
// stored. An error-severity issue that ended fixed does not fail the
// run; warnings never do.
func ExitCode(state *models.RepositoryState) int {
	for _, issue := range state.Issues {
		if issue.Severity == models.SeverityError && issue.Status != models.StatusFixed {
			return 1
		}
	}
	return 0
}

// Summary aggregates per-status and per-severity counts from the issues.
type Summary struct {
	Total     int
	Errors    int
	Warnings  int
	Pending   int
	Fixed     int
	Failed    int
	Unfixable int
	Manual    int
}

func Summarize(state *models.RepositoryState) Summary {
	var s Summary
	for _, issue := range state.Issues {
		s.Total++
		switch issue.Severity {
		case models.SeverityError:
			s.Errors++
		case models.SeverityWarning:
			s.Warnings++
		}
		switch issue.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusFixed:
			s.Fixed++
		case models.StatusFailed:
			s.Failed++
		case models.StatusUnfixable:
			s.Unfixable++
		case models.StatusManualFixRequired:
			s.Manual++
		}
	}
	return s
}
