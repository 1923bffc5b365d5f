package models

// IssueType discriminates the detected problem classes.
type IssueType string

const (
	IssueWrongRefType           IssueType = "wrong_ref_type"
	IssueDuplicateRef           IssueType = "duplicate_ref"
	IssueMissingRelease         IssueType = "missing_release"
	IssueUnpublishedRelease     IssueType = "unpublished_release"
	IssueMutableRelease         IssueType = "mutable_release"
	IssueUnexpectedRelease      IssueType = "unexpected_release"
	IssueDuplicateRelease       IssueType = "duplicate_release"
	IssueMissingVersion         IssueType = "missing_version"
	IssueIncorrectVersion       IssueType = "incorrect_version"
	IssueIncorrectLatestRelease IssueType = "incorrect_latest_release"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueStatus is the lifecycle of one issue within a run. Issues start
// pending; only the reconciler or an action's own execution outcome moves
// them to a terminal status.
type IssueStatus string

const (
	StatusPending           IssueStatus = "pending"
	StatusFixed             IssueStatus = "fixed"
	StatusFailed            IssueStatus = "failed"
	StatusUnfixable         IssueStatus = "unfixable"
	StatusManualFixRequired IssueStatus = "manual_fix_required"
)

// Remediation is the metadata surface of a remediation action. Execution
// lives in the actions package; the reconciler narrows to it via a type
// assertion so that issue values stay free of client plumbing.
type Remediation interface {
	// Priority governs execution order across all pending actions in a
	// run; lower runs first.
	Priority() int
	Description() string
	TargetVersion() string
	// ManualCommands returns copy-pasteable equivalents of the action for
	// when auto-fix is disabled or execution did not succeed. Empty for
	// situations no command can resolve.
	ManualCommands() []string
}

// Issue is one detected problem, optionally carrying its remediation.
type Issue struct {
	Type        IssueType
	Severity    Severity
	Message     string
	Version     string
	CurrentSHA  string
	ExpectedSHA string
	Action      Remediation
	Status      IssueStatus
	// Detail is set by reconciliation with outcome guidance, e.g. why an
	// unfixable issue can never be retried.
	Detail string
}

// AutoFixable reports whether the issue carries an executable remediation.
func (i *Issue) AutoFixable() bool { return i.Action != nil }
