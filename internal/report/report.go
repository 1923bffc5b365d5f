// Package report renders validation issues for the GitHub Actions log:
// one workflow-command annotation per issue plus a plain-text summary
// with manual commands for anything the run did not fix.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/tracker-tv/github-version-policy/internal/reconciler"
	"github.com/tracker-tv/github-version-policy/models"
)

// escapeData applies the workflow-command data escaping rules.
func escapeData(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}

func annotation(issue *models.Issue) string {
	level := "warning"
	if issue.Severity == models.SeverityError {
		level = "error"
	}
	msg := fmt.Sprintf("[%s] %s (status: %s)", issue.Type, issue.Message, issue.Status)
	if issue.Detail != "" {
		msg += ": " + issue.Detail
	}
	return fmt.Sprintf("::%s title=%s::%s", level, issue.Version, escapeData(msg))
}

// Print writes the per-issue annotations and the run summary.
func Print(w io.Writer, state *models.RepositoryState) {
	for _, issue := range state.Issues {
		fmt.Fprintln(w, annotation(issue))

		if issue.Status == models.StatusFixed || issue.Action == nil {
			continue
		}
		cmds := issue.Action.ManualCommands()
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(w, "To fix %s manually:\n", issue.Version)
		for _, cmd := range cmds {
			fmt.Fprintf(w, "  %s\n", cmd)
		}
	}

	s := reconciler.Summarize(state)
	if s.Total == 0 {
		fmt.Fprintln(w, "All version refs and releases conform to the policy.")
		return
	}
	fmt.Fprintf(w, "%d issue(s): %d error(s), %d warning(s); %d fixed, %d failed, %d unfixable, %d need manual fixes, %d pending\n",
		s.Total, s.Errors, s.Warnings, s.Fixed, s.Failed, s.Unfixable, s.Manual, s.Pending)
}
