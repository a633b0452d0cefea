package entities

type SyncState string

const (
	SyncSynced  SyncState = "synced"
	SyncSkipped SyncState = "skipped"
	SyncFailed  SyncState = "failed"
)

func (s SyncState) String() string {
	return string(s)
}

// SyncResult describes the outcome of a fulfillment sync attempt.
// A failed sync is advisory for the caller, never a hard error.
type SyncResult struct {
	State  SyncState
	Reason string
	Err    error
}

func SyncedResult() SyncResult {
	return SyncResult{State: SyncSynced}
}

func SkippedResult(reason string) SyncResult {
	return SyncResult{State: SyncSkipped, Reason: reason}
}

func FailedResult(err error) SyncResult {
	return SyncResult{State: SyncFailed, Err: err}
}
