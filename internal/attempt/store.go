package attempt

import "context"

// ScoreResult is the outcome of scoring a finished attempt.
type ScoreResult struct {
	Score  int // 0-100
	Passed bool
}

// Store is the backend collaborator for attempt persistence and scoring.
// The wire format and the scoring algorithm are owned by the store side;
// this package only sees opaque IDs and the final ScoreResult.
//
// CompleteAttempt must be idempotent per attempt ID: retrying with the
// same frozen answer snapshot yields the same result.
type Store interface {
	// PriorAttempts returns how many attempts the user has already
	// started for the quiz, terminal or not.
	PriorAttempts(ctx context.Context, quizID, userID string) (int, error)

	// StartAttempt registers a new attempt and returns its ID.
	StartAttempt(ctx context.Context, quizID, userID string, attemptNumber int) (string, error)

	// SubmitAnswer persists a single answer. Last write wins per
	// (attempt, question).
	SubmitAnswer(ctx context.Context, attemptID, questionID, optionID string) error

	// CompleteAttempt submits the frozen answer snapshot, scores it and
	// records the terminal status.
	CompleteAttempt(ctx context.Context, attemptID string, answers map[string]string, timedOut bool) (ScoreResult, error)

	// AbandonAttempt records a user-cancelled attempt. No scoring happens.
	AbandonAttempt(ctx context.Context, attemptID string) error
}
