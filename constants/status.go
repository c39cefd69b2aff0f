package constants

// RunStatus is the canonical status of a pipeline run.
type RunStatus string

// Stable values (these exact strings appear in logs).
const (
	RunStatusRunning      RunStatus = "RUNNING"       // extraction/resolution in progress
	RunStatusNeedsColumns RunStatus = "NEEDS_COLUMNS" // waiting on a manual column mapping
	RunStatusDone         RunStatus = "DONE"          // report produced
	RunStatusFailed       RunStatus = "FAILED"        // terminal failure
)

// Unassigned is the sentinel contractor for line items whose category has no
// delegation rule.
const Unassigned = "Unassigned"
