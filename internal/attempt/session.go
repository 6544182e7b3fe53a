package attempt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/coursely/internal/catalog"
)

// submitTimeout bounds a single background submission, retries included.
const submitTimeout = 30 * time.Second

// ErrOutOfRange rejects navigation to a question index outside the quiz.
var ErrOutOfRange = errors.New("question index out of range")

// Session is one timed run through a quiz's questions by a single user.
//
// Two independent triggers can race to finalize it: a user-initiated
// Complete and the scheduler-initiated Timeout. The status field is the
// arbiter: finalize performs an atomic compare-and-set from InProgress,
// so exactly one wins and the loser observes ErrAlreadyFinalized.
//
// Ledger writes happen under mu with a status check inside the critical
// section, and the frozen submission snapshot is taken under the same mu
// after the CAS. A racing answer therefore either lands in the snapshot
// or is rejected with a StateError — never silently dropped.
type Session struct {
	ID            string
	QuizID        string
	UserID        string
	AttemptNumber int
	StartedAt     time.Time

	quiz        catalog.Quiz
	questionIdx map[string]catalog.Question
	store       Store
	retry       RetryConfig
	now         func() time.Time
	release     func()

	status atomic.Int32

	mu          sync.Mutex
	ledger      *Ledger
	frozen      map[string]string
	current     int
	completedAt time.Time
	result      *ScoreResult

	scheduler *TimeoutScheduler
}

// Snapshot is the read-only view exposed to the presentation layer.
type Snapshot struct {
	Status               Status
	CurrentQuestionIndex int
	Answered             int
	TotalQuestions       int
	RemainingSeconds     int // -1 when the quiz is untimed
	CanSubmit            bool
}

// Status returns the session's current lifecycle status.
func (s *Session) Status() Status {
	return Status(s.status.Load())
}

// Quiz returns the quiz this session runs against.
func (s *Session) Quiz() catalog.Quiz {
	return s.quiz
}

// RecordAnswer validates the question/option reference, records the
// selection in the ledger (last write wins) and kicks off asynchronous
// persistence. Validation and state checks fail fast, before any store
// call; after a terminal status the ledger is left untouched.
func (s *Session) RecordAnswer(questionID, optionID string) error {
	question, ok := s.questionIdx[questionID]
	if !ok {
		return &ValidationError{QuestionID: questionID, OptionID: optionID, Reason: "unknown question"}
	}
	if !question.HasOption(optionID) {
		return &ValidationError{QuestionID: questionID, OptionID: optionID, Reason: "option does not belong to question"}
	}

	s.mu.Lock()
	if st := s.Status(); st != StatusInProgress {
		s.mu.Unlock()
		return &StateError{Op: "record answer", Status: st}
	}
	s.ledger.Put(questionID, optionID)
	s.mu.Unlock()

	// Persist optimistically in the background. A failed submission is
	// reconciled by the full frozen snapshot sent at completion, so it
	// only warrants a warning here.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		err := retryNetwork(ctx, s.retry, func(ctx context.Context) error {
			return s.store.SubmitAnswer(ctx, s.ID, questionID, optionID)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to persist answer for question %s: %v\n", questionID, err)
		}
	}()

	return nil
}

// Answer returns the currently selected option for a question, if any.
func (s *Session) Answer(questionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(questionID)
}

// Navigate moves the question pointer. It has no effect on the ledger.
func (s *Session) Navigate(toIndex int) error {
	if toIndex < 0 || toIndex >= len(s.quiz.Questions) {
		return ErrOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.Status(); st != StatusInProgress {
		return &StateError{Op: "navigate", Status: st}
	}
	s.current = toIndex
	return nil
}

// CurrentQuestion returns the question at the navigation pointer.
func (s *Session) CurrentQuestion() catalog.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Questions[s.current]
}

// Complete finalizes the session as Completed and submits the frozen
// ledger snapshot for scoring. The second of two racing finalizers
// (whether Complete or Timeout) gets ErrAlreadyFinalized and nothing
// else happens: no second submission is made.
//
// Callers run Complete inside their async executor; it blocks for the
// (retried) store round trip.
func (s *Session) Complete(ctx context.Context) (ScoreResult, error) {
	if !s.finalize(StatusCompleted) {
		return ScoreResult{}, ErrAlreadyFinalized
	}
	return s.submitFinal(ctx, false)
}

// Timeout is invoked by the TimeoutScheduler when the time limit
// elapses. It forces submission of the current ledger snapshot and
// transitions to TimedOut. A timed-out submission has no user to prompt,
// so store failures retry silently and only escalate to a warning after
// the retries are exhausted.
func (s *Session) Timeout() {
	if !s.finalize(StatusTimedOut) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		if _, err := s.submitFinal(ctx, true); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to submit timed-out attempt %s: %v\n", s.ID, err)
		}
	}()
}

// Abandon finalizes the session as Abandoned, for the user navigating
// away mid-attempt. The scheduler stops and the ledger freezes, but any
// in-flight answer submissions are left to finish on their own.
func (s *Session) Abandon() error {
	if !s.finalize(StatusAbandoned) {
		return ErrAlreadyFinalized
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		err := retryNetwork(ctx, s.retry, func(ctx context.Context) error {
			return s.store.AbandonAttempt(ctx, s.ID)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record abandoned attempt %s: %v\n", s.ID, err)
		}
	}()
	return nil
}

// Result returns the score once a completed or timed-out submission has
// been scored.
func (s *Session) Result() (ScoreResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return ScoreResult{}, false
	}
	return *s.result, true
}

// CompletedAt returns when the session reached a terminal status.
func (s *Session) CompletedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedAt, !s.completedAt.IsZero()
}

// Snapshot returns the presentation-layer view of the session.
func (s *Session) Snapshot() Snapshot {
	st := s.Status()

	s.mu.Lock()
	current := s.current
	answered := s.ledger.Len()
	s.mu.Unlock()

	remaining := -1
	if s.quiz.TimeLimitMinutes > 0 {
		limit := time.Duration(s.quiz.TimeLimitMinutes) * time.Minute
		rem := limit - s.now().Sub(s.StartedAt)
		remaining = int(rem.Round(time.Second).Seconds())
		if remaining < 0 || st != StatusInProgress {
			remaining = 0
		}
	}

	return Snapshot{
		Status:               st,
		CurrentQuestionIndex: current,
		Answered:             answered,
		TotalQuestions:       len(s.quiz.Questions),
		RemainingSeconds:     remaining,
		CanSubmit:            st == StatusInProgress,
	}
}

// finalize is the single path out of InProgress. The CAS decides the
// race; the winner stops the scheduler and freezes the ledger under mu.
func (s *Session) finalize(to Status) bool {
	if !s.status.CompareAndSwap(int32(StatusInProgress), int32(to)) {
		return false
	}

	if s.scheduler != nil {
		s.scheduler.Stop()
	}

	s.mu.Lock()
	s.frozen = s.ledger.Snapshot()
	s.completedAt = s.now()
	s.mu.Unlock()

	if s.release != nil {
		s.release()
	}
	return true
}

// submitFinal submits the frozen snapshot, retrying transient failures
// against the exact same payload. The snapshot cannot change underneath
// a retry: the session is already terminal.
func (s *Session) submitFinal(ctx context.Context, timedOut bool) (ScoreResult, error) {
	var result ScoreResult
	err := retryNetwork(ctx, s.retry, func(ctx context.Context) error {
		r, err := s.store.CompleteAttempt(ctx, s.ID, s.frozen, timedOut)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return ScoreResult{}, err
	}

	s.mu.Lock()
	s.result = &result
	s.mu.Unlock()
	return result, nil
}
