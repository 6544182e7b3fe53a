package attempt

// Status represents an attempt session's position in its lifecycle.
// Transitions only move forward: NotStarted -> InProgress -> one of the
// terminal statuses. There is no transition out of a terminal status.
type Status int32

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
	StatusTimedOut
	StatusAbandoned
)

// Terminal reports whether the status ends the session lifecycle.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusTimedOut, StatusAbandoned:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusTimedOut:
		return "timed_out"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// StatusFromString parses a persisted status string back to a Status.
func StatusFromString(s string) Status {
	switch s {
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	case "timed_out":
		return StatusTimedOut
	case "abandoned":
		return StatusAbandoned
	default:
		return StatusNotStarted
	}
}
