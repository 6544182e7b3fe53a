package attempt

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions rejects starting an attempt on a quiz with no questions.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrAttemptsExhausted rejects starting an attempt beyond the quiz's
	// maximum attempt count.
	ErrAttemptsExhausted = errors.New("maximum attempts reached")

	// ErrAttemptInProgress rejects starting a second concurrent attempt
	// for the same quiz.
	ErrAttemptInProgress = errors.New("an attempt is already in progress")

	// ErrAlreadyFinalized is observed by the loser of a complete/timeout
	// race. It is benign and never shown to the user.
	ErrAlreadyFinalized = errors.New("attempt already finalized")
)

// StateError reports an operation that is invalid for the session's
// current status. The operation is a no-op; the ledger is unchanged.
type StateError struct {
	Op     string
	Status Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: invalid in status %s", e.Op, e.Status)
}

// ValidationError reports a bad question or option reference. It fails
// fast, before any store call.
type ValidationError struct {
	QuestionID string
	OptionID   string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %q option %q: %s", e.QuestionID, e.OptionID, e.Reason)
}

// NetworkError wraps a transient store failure. Submissions wrapped in
// NetworkError are retried with backoff against the same frozen snapshot.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// isRetryable reports whether an error should be retried by the
// submission path. Context errors and validation failures never are.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
