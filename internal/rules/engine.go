package rules

import (
	"context"
	"sort"

	"github.com/chainguard-dev/clog"

	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/models"
)

// Evaluate runs every rule over the snapshot and appends the resulting
// issues to state.Issues in deterministic order: rules by (priority,
// name), subjects in Condition order. Evaluation has no side effects
// beyond the returned issues; running it twice over the same snapshot
// yields the same list.
func Evaluate(ctx context.Context, state *models.RepositoryState, cfg *config.Config, ruleSet []Rule) []*models.Issue {
	ordered := make([]Rule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority() != ordered[j].Priority() {
			return ordered[i].Priority() < ordered[j].Priority()
		}
		return ordered[i].Name() < ordered[j].Name()
	})

	log := clog.FromContext(ctx)
	var issues []*models.Issue
	for _, rule := range ordered {
		subjects := rule.Condition(state, cfg)
		if len(subjects) == 0 {
			continue
		}
		for _, subject := range subjects {
			if rule.Check(subject, state, cfg) {
				continue
			}
			issue := rule.CreateIssue(subject, state, cfg)
			if issue.Status == "" {
				issue.Status = models.StatusPending
			}
			log.With("rule", rule.Name()).
				With("type", string(issue.Type)).
				With("version", issue.Version).
				Debug("issue detected")
			issues = append(issues, issue)
		}
	}

	state.Issues = append(state.Issues, issues...)
	return issues
}
