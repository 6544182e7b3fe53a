package attempt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/coursely/internal/catalog"
)

// fakeStore is an in-memory Store with scriptable failures.
type fakeStore struct {
	mu sync.Mutex

	prior    int
	startErr error

	submitFailures   int // fail this many SubmitAnswer calls, then succeed
	completeFailures int // fail this many CompleteAttempt calls, then succeed

	started       int
	submitted     map[string]string
	completeCalls int
	lastAnswers   map[string]string
	lastTimedOut  bool
	abandoned     int

	score ScoreResult
}

func newFakeStore() *fakeStore {
	return &fakeStore{submitted: make(map[string]string)}
}

func (f *fakeStore) PriorAttempts(ctx context.Context, quizID, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prior, nil
}

func (f *fakeStore) StartAttempt(ctx context.Context, quizID, userID string, attemptNumber int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return "", f.startErr
	}
	f.started++
	f.prior++
	return fmt.Sprintf("attempt-%d", f.started), nil
}

func (f *fakeStore) SubmitAnswer(ctx context.Context, attemptID, questionID, optionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitFailures > 0 {
		f.submitFailures--
		return &NetworkError{Op: "submit answer", Err: errors.New("connection reset")}
	}
	f.submitted[questionID] = optionID
	return nil
}

func (f *fakeStore) CompleteAttempt(ctx context.Context, attemptID string, answers map[string]string, timedOut bool) (ScoreResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeFailures > 0 {
		f.completeFailures--
		return ScoreResult{}, &NetworkError{Op: "complete attempt", Err: errors.New("connection reset")}
	}
	f.completeCalls++
	f.lastAnswers = answers
	f.lastTimedOut = timedOut
	return f.score, nil
}

func (f *fakeStore) AbandonAttempt(ctx context.Context, attemptID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abandoned++
	return nil
}

func (f *fakeStore) completedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completeCalls
}

func testQuiz() catalog.Quiz {
	return catalog.Quiz{
		ID:           "quiz-1",
		Title:        "Test Quiz",
		PassingScore: 70,
		MaxAttempts:  2,
		Questions: []catalog.Question{
			{ID: "q1", Text: "First?", Points: 10, Options: []catalog.QuestionOption{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}},
			{ID: "q2", Text: "Second?", Points: 10, Options: []catalog.QuestionOption{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}},
			{ID: "q3", Text: "Third?", Points: 10, Options: []catalog.QuestionOption{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}},
		},
	}
}

func testManager(store Store) *Manager {
	m := NewManager(store)
	m.retry = RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2.0}
	return m
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting: %s", msg)
}

func TestStart_NoQuestions(t *testing.T) {
	m := testManager(newFakeStore())
	quiz := testQuiz()
	quiz.Questions = nil

	_, err := m.Start(context.Background(), quiz, "user-1")
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestStart_AttemptsExhausted(t *testing.T) {
	store := newFakeStore()
	store.prior = 2
	m := testManager(store)

	_, err := m.Start(context.Background(), testQuiz(), "user-1")
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Errorf("err = %v, want ErrAttemptsExhausted", err)
	}
}

func TestStart_AssignsAttemptNumbers(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	ctx := context.Background()

	s1, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if s1.AttemptNumber != 1 {
		t.Errorf("first AttemptNumber = %d, want 1", s1.AttemptNumber)
	}

	if _, err := s1.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}

	s2, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if s2.AttemptNumber != 2 {
		t.Errorf("second AttemptNumber = %d, want 2", s2.AttemptNumber)
	}
}

func TestStart_RejectsConcurrentAttempt(t *testing.T) {
	m := testManager(newFakeStore())
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := m.Start(ctx, testQuiz(), "user-1"); !errors.Is(err, ErrAttemptInProgress) {
		t.Errorf("second start err = %v, want ErrAttemptInProgress", err)
	}

	// Finalizing releases the slot.
	if err := s.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := m.Start(ctx, testQuiz(), "user-1"); err != nil {
		t.Errorf("start after abandon: %v", err)
	}
}

func TestRecordAnswer_Validation(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	s, err := m.Start(context.Background(), testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	tests := []struct {
		name       string
		questionID string
		optionID   string
	}{
		{"unknown question", "nope", "a"},
		{"foreign option", "q1", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RecordAnswer(tt.questionID, tt.optionID)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}

	if got := s.Snapshot().Answered; got != 0 {
		t.Errorf("Answered = %d after failed validation, want 0", got)
	}
}

func TestRecordAnswer_LastWriteWins(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	s, err := m.Start(context.Background(), testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.RecordAnswer("q1", "a"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordAnswer("q1", "b"); err != nil {
		t.Fatalf("re-record: %v", err)
	}

	if got, _ := s.Answer("q1"); got != "b" {
		t.Errorf("Answer(q1) = %q, want %q", got, "b")
	}
	if got := s.Snapshot().Answered; got != 1 {
		t.Errorf("Answered = %d, want 1", got)
	}
}

func TestRecordAnswer_AfterTerminalIsNoOp(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	ctx := context.Background()
	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.RecordAnswer("q1", "a"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := s.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}

	err = s.RecordAnswer("q2", "b")
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("err = %v, want StateError", err)
	}

	if _, ok := s.Answer("q2"); ok {
		t.Error("ledger mutated after terminal status")
	}
	if got := s.Snapshot().Answered; got != 1 {
		t.Errorf("Answered = %d, want 1 (unchanged)", got)
	}
}

func TestNavigate(t *testing.T) {
	m := testManager(newFakeStore())
	s, err := m.Start(context.Background(), testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.Navigate(2); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if got := s.Snapshot().CurrentQuestionIndex; got != 2 {
		t.Errorf("CurrentQuestionIndex = %d, want 2", got)
	}
	if got := s.CurrentQuestion().ID; got != "q3" {
		t.Errorf("CurrentQuestion = %q, want q3", got)
	}

	if err := s.Navigate(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("navigate(3) err = %v, want ErrOutOfRange", err)
	}
	if err := s.Navigate(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("navigate(-1) err = %v, want ErrOutOfRange", err)
	}
}

func TestComplete_SubmitsFrozenSnapshot(t *testing.T) {
	store := newFakeStore()
	store.score = ScoreResult{Score: 80, Passed: true}
	m := testManager(store)
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.RecordAnswer("q1", "a"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordAnswer("q2", "b"); err != nil {
		t.Fatalf("record: %v", err)
	}

	result, err := s.Complete(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !result.Passed || result.Score != 80 {
		t.Errorf("result = %+v, want score 80 passed", result)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.lastAnswers) != 2 || store.lastAnswers["q1"] != "a" || store.lastAnswers["q2"] != "b" {
		t.Errorf("submitted answers = %v", store.lastAnswers)
	}
	if store.lastTimedOut {
		t.Error("manual completion flagged as timed out")
	}

	if got, ok := s.Result(); !ok || got.Score != 80 {
		t.Errorf("Result() = %+v ok=%v, want recorded score", got, ok)
	}
}

func TestComplete_RetriesTransientFailures(t *testing.T) {
	store := newFakeStore()
	store.completeFailures = 2
	store.score = ScoreResult{Score: 50}
	m := testManager(store)
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Complete(ctx); err != nil {
		t.Fatalf("complete should succeed after retries: %v", err)
	}
	if store.completedCalls() != 1 {
		t.Errorf("completeCalls = %d, want 1", store.completedCalls())
	}
}

func TestComplete_SurfacesExhaustedRetries(t *testing.T) {
	store := newFakeStore()
	store.completeFailures = 10
	m := testManager(store)
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = s.Complete(ctx)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("err = %v, want NetworkError after exhausted retries", err)
	}
}

func TestFinalization_CompleteThenTimeout(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// The timer fires afterward; the session is already Completed, so no
	// second submission reaches the store.
	s.Timeout()
	time.Sleep(20 * time.Millisecond)

	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
	if store.completedCalls() != 1 {
		t.Errorf("completeCalls = %d, want exactly 1", store.completedCalls())
	}
}

func TestFinalization_ConcurrentRace(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	ctx := context.Background()

	s, err := m.Start(ctx, testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	var completeErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, completeErr = s.Complete(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Timeout()
	}()
	wg.Wait()

	status := s.Status()
	if status != StatusCompleted && status != StatusTimedOut {
		t.Fatalf("status = %s, want a terminal finalizer", status)
	}
	if status == StatusTimedOut && !errors.Is(completeErr, ErrAlreadyFinalized) {
		t.Errorf("losing Complete err = %v, want ErrAlreadyFinalized", completeErr)
	}

	waitFor(t, func() bool { return store.completedCalls() == 1 }, "exactly one submission")
	time.Sleep(20 * time.Millisecond)
	if store.completedCalls() != 1 {
		t.Errorf("completeCalls = %d, want exactly 1", store.completedCalls())
	}
}

func TestAbandon(t *testing.T) {
	store := newFakeStore()
	m := testManager(store)
	s, err := m.Start(context.Background(), testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if s.Status() != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", s.Status())
	}
	if err := s.Abandon(); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("second abandon err = %v, want ErrAlreadyFinalized", err)
	}

	waitFor(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.abandoned == 1
	}, "abandon persisted")
}

func TestSnapshot_Untimed(t *testing.T) {
	m := testManager(newFakeStore())
	s, err := m.Start(context.Background(), testQuiz(), "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	snap := s.Snapshot()
	if snap.RemainingSeconds != -1 {
		t.Errorf("RemainingSeconds = %d for untimed quiz, want -1", snap.RemainingSeconds)
	}
	if !snap.CanSubmit {
		t.Error("CanSubmit = false for in-progress session")
	}
	if snap.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", snap.TotalQuestions)
	}
}
