package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/coursely/ent"
	"github.com/abhisek/coursely/ent/answerevent"
	entattempt "github.com/abhisek/coursely/ent/attempt"
	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/catalog"
)

// AttemptRepo persists quiz attempts and their answers, and scores
// finished attempts against the catalog answer key.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AttemptRecord is one row of a user's attempt history.
type AttemptRecord struct {
	AttemptID     string
	QuizID        string
	AttemptNumber int
	Status        string
	StartedAt     time.Time
	CompletedAt   *time.Time
	Score         int
	Passed        bool
}

// PriorAttempts counts how many attempts the user has started for a quiz.
func (r *AttemptRepo) PriorAttempts(ctx context.Context, quizID, userID string) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(
			entattempt.QuizID(quizID),
			entattempt.UserID(userID),
		).
		Count(ctx)
	if err != nil {
		return 0, &attempt.NetworkError{Op: "count prior attempts", Err: err}
	}
	return n, nil
}

// StartAttempt inserts a new in-progress attempt row and returns its ID.
func (r *AttemptRepo) StartAttempt(ctx context.Context, quizID, userID string, attemptNumber int) (string, error) {
	attemptID := uuid.NewString()
	_, err := r.client.Attempt.Create().
		SetAttemptID(attemptID).
		SetQuizID(quizID).
		SetUserID(userID).
		SetAttemptNumber(attemptNumber).
		SetStatus(attempt.StatusInProgress.String()).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return "", &attempt.NetworkError{Op: "start attempt", Err: err}
	}
	return attemptID, nil
}

// SubmitAnswer records one answer, replacing any earlier answer for the
// same question. The replacement gets a fresh sequence number; answer
// rows are events, so sequence is immutable once written.
func (r *AttemptRepo) SubmitAnswer(ctx context.Context, attemptID, questionID, optionID string) error {
	if err := r.writeAnswer(ctx, attemptID, questionID, optionID); err != nil {
		return &attempt.NetworkError{Op: "submit answer", Err: err}
	}
	return nil
}

func (r *AttemptRepo) writeAnswer(ctx context.Context, attemptID, questionID, optionID string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AnswerEvent.Delete().
		Where(
			answerevent.AttemptID(attemptID),
			answerevent.QuestionID(questionID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear previous answer: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(attemptID).
		SetQuestionID(questionID).
		SetOptionID(optionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// CompleteAttempt finalizes an attempt: the frozen answer set is written
// as the authoritative answer rows, scored against the catalog answer
// key, and the attempt row moved to its terminal status. Calling it again
// for an already finalized attempt returns the stored result unchanged.
func (r *AttemptRepo) CompleteAttempt(ctx context.Context, attemptID string, answers map[string]string, timedOut bool) (attempt.ScoreResult, error) {
	row, err := r.client.Attempt.Query().
		Where(entattempt.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		return attempt.ScoreResult{}, &attempt.NetworkError{Op: "load attempt", Err: err}
	}

	if row.Status != attempt.StatusInProgress.String() {
		return attempt.ScoreResult{Score: row.Score, Passed: row.Passed}, nil
	}

	// The frozen snapshot wins over whatever individual answer
	// submissions made it through earlier.
	for questionID, optionID := range answers {
		if err := r.writeAnswer(ctx, attemptID, questionID, optionID); err != nil {
			return attempt.ScoreResult{}, &attempt.NetworkError{Op: "persist final answers", Err: err}
		}
	}

	result, err := scoreAttempt(row.QuizID, answers)
	if err != nil {
		return attempt.ScoreResult{}, err
	}

	status := attempt.StatusCompleted
	if timedOut {
		status = attempt.StatusTimedOut
	}

	_, err = r.client.Attempt.UpdateOne(row).
		SetStatus(status.String()).
		SetCompletedAt(time.Now().UTC()).
		SetScore(result.Score).
		SetPassed(result.Passed).
		Save(ctx)
	if err != nil {
		return attempt.ScoreResult{}, &attempt.NetworkError{Op: "finalize attempt", Err: err}
	}
	return result, nil
}

// AbandonAttempt moves an in-progress attempt to abandoned. Already
// finalized attempts are left untouched.
func (r *AttemptRepo) AbandonAttempt(ctx context.Context, attemptID string) error {
	_, err := r.client.Attempt.Update().
		Where(
			entattempt.AttemptID(attemptID),
			entattempt.Status(attempt.StatusInProgress.String()),
		).
		SetStatus(attempt.StatusAbandoned.String()).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return &attempt.NetworkError{Op: "abandon attempt", Err: err}
	}
	return nil
}

// BestAttempt returns the highest-scoring finalized attempt for a quiz,
// or nil when the user has never finished one.
func (r *AttemptRepo) BestAttempt(ctx context.Context, quizID, userID string) (*attempt.ScoreResult, error) {
	row, err := r.client.Attempt.Query().
		Where(
			entattempt.QuizID(quizID),
			entattempt.UserID(userID),
			entattempt.StatusIn(
				attempt.StatusCompleted.String(),
				attempt.StatusTimedOut.String(),
			),
		).
		Order(ent.Desc(entattempt.FieldScore)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query best attempt: %w", err)
	}
	return &attempt.ScoreResult{Score: row.Score, Passed: row.Passed}, nil
}

// History returns the user's attempts for a quiz, most recent first.
func (r *AttemptRepo) History(ctx context.Context, quizID, userID string) ([]AttemptRecord, error) {
	rows, err := r.client.Attempt.Query().
		Where(
			entattempt.QuizID(quizID),
			entattempt.UserID(userID),
		).
		Order(ent.Desc(entattempt.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt history: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AttemptRecord{
			AttemptID:     row.AttemptID,
			QuizID:        row.QuizID,
			AttemptNumber: row.AttemptNumber,
			Status:        row.Status,
			StartedAt:     row.StartedAt,
			CompletedAt:   row.CompletedAt,
			Score:         row.Score,
			Passed:        row.Passed,
		})
	}
	return records, nil
}

// scoreAttempt grades an answer set against the catalog answer key.
// The score is the earned share of total question points on a 0-100
// scale; unanswered questions earn nothing.
func scoreAttempt(quizID string, answers map[string]string) (attempt.ScoreResult, error) {
	quiz, err := catalog.QuizByID(quizID)
	if err != nil {
		return attempt.ScoreResult{}, fmt.Errorf("score attempt: %w", err)
	}

	total := quiz.TotalPoints()
	if total == 0 {
		return attempt.ScoreResult{}, nil
	}

	earned := 0
	for _, q := range quiz.Questions {
		selected, ok := answers[q.ID]
		if !ok {
			continue
		}
		correct, ok := catalog.CorrectOption(quizID, q.ID)
		if ok && selected == correct {
			earned += q.Points
		}
	}

	score := int(math.Round(float64(earned) / float64(total) * 100))
	return attempt.ScoreResult{
		Score:  score,
		Passed: score >= quiz.PassingScore,
	}, nil
}
