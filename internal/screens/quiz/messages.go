package quiz

import (
	"time"

	"github.com/abhisek/coursely/internal/attempt"
)

// attemptStartedMsg is sent when the attempt session is ready (or the
// start was refused).
type attemptStartedMsg struct {
	Session *attempt.Session
	Resumed bool
	Err     error
}

// timerTickMsg is sent every second to refresh the countdown.
type timerTickMsg time.Time

// completeDoneMsg is sent when the submission round-trip finishes.
type completeDoneMsg struct {
	Result attempt.ScoreResult
	Err    error
}
