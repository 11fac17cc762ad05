package workspace

import "testing"

func TestTaskState_IsActive(t *testing.T) {
	tests := []struct {
		state    TaskState
		expected bool
	}{
		{TaskIdle, false},
		{TaskInFlight, true},
		{TaskSucceeded, false},
		{TaskFailed, false},
	}

	for _, test := range tests {
		if result := test.state.IsActive(); result != test.expected {
			t.Errorf("TaskState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestTaskState_IsFinished(t *testing.T) {
	tests := []struct {
		state    TaskState
		expected bool
	}{
		{TaskIdle, false},
		{TaskInFlight, false},
		{TaskSucceeded, true},
		{TaskFailed, true},
	}

	for _, test := range tests {
		if result := test.state.IsFinished(); result != test.expected {
			t.Errorf("TaskState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestTaskState_String(t *testing.T) {
	if got := TaskInFlight.String(); got != "in-flight" {
		t.Errorf("TaskState.String() = %s, expected in-flight", got)
	}
}
