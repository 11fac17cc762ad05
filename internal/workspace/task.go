package workspace

// TaskState is the lifecycle of one user-triggered action
type TaskState string

const (
	// TaskIdle means the action has never run
	TaskIdle TaskState = "idle"

	// TaskInFlight means a request is outstanding; new invocations are refused
	TaskInFlight TaskState = "in-flight"

	// TaskSucceeded means the last request completed successfully
	TaskSucceeded TaskState = "succeeded"

	// TaskFailed means the last request failed
	TaskFailed TaskState = "failed"
)

// String returns the string representation of TaskState
func (ts TaskState) String() string {
	return string(ts)
}

// IsActive returns true while a request is outstanding
func (ts TaskState) IsActive() bool {
	return ts == TaskInFlight
}

// IsFinished returns true once a request has completed either way
func (ts TaskState) IsFinished() bool {
	return ts == TaskSucceeded || ts == TaskFailed
}
