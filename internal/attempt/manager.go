package attempt

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/coursely/internal/catalog"
)

// Manager creates attempt sessions and enforces the start-time rules:
// attempt counting against MaxAttempts, rejection of empty quizzes, and
// at most one in-progress session per (quiz, user). Each session has a
// single logical owner, so a second concurrent start for the same quiz
// is rejected rather than reusing or forking the existing attempt.
type Manager struct {
	store Store
	retry RetryConfig
	now   func() time.Time
	tick  time.Duration

	mu       sync.Mutex
	active   map[string]*Session
	starting map[string]bool
}

// NewManager creates a Manager backed by the given store.
func NewManager(store Store) *Manager {
	return &Manager{
		store:    store,
		retry:    DefaultRetryConfig(),
		now:      time.Now,
		tick:     tickInterval,
		active:   make(map[string]*Session),
		starting: make(map[string]bool),
	}
}

// Start creates a new InProgress session for the quiz. The attempt
// number is previous+1, assigned once and never reused. Timed quizzes
// get a TimeoutScheduler that force-submits on expiry; untimed quizzes
// get none.
func (m *Manager) Start(ctx context.Context, quiz catalog.Quiz, userID string) (*Session, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	// Reserve the key before the store round trips so two concurrent
	// starts for the same quiz can't both get past the in-progress check.
	key := quiz.ID + "/" + userID
	m.mu.Lock()
	if _, ok := m.active[key]; ok || m.starting[key] {
		m.mu.Unlock()
		return nil, ErrAttemptInProgress
	}
	m.starting[key] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.starting, key)
		m.mu.Unlock()
	}()

	prior, err := m.store.PriorAttempts(ctx, quiz.ID, userID)
	if err != nil {
		return nil, err
	}
	if quiz.MaxAttempts > 0 && prior >= quiz.MaxAttempts {
		return nil, ErrAttemptsExhausted
	}

	attemptNumber := prior + 1
	attemptID, err := m.store.StartAttempt(ctx, quiz.ID, userID, attemptNumber)
	if err != nil {
		return nil, err
	}

	questionIdx := make(map[string]catalog.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionIdx[q.ID] = q
	}

	s := &Session{
		ID:            attemptID,
		QuizID:        quiz.ID,
		UserID:        userID,
		AttemptNumber: attemptNumber,
		StartedAt:     m.now(),
		quiz:          quiz,
		questionIdx:   questionIdx,
		store:         m.store,
		retry:         m.retry,
		now:           m.now,
		ledger:        NewLedger(),
	}
	s.status.Store(int32(StatusInProgress))
	s.release = func() { m.releaseSession(key, s) }

	// Register before the scheduler exists so a near-instant expiry
	// still finds the session in the active set when it releases it.
	m.mu.Lock()
	m.active[key] = s
	m.mu.Unlock()

	if quiz.TimeLimitMinutes > 0 {
		limit := time.Duration(quiz.TimeLimitMinutes) * time.Minute
		s.scheduler = newTimeoutScheduler(s.StartedAt, limit, m.tick, m.now, s.Timeout)
		s.scheduler.start()
	}

	return s, nil
}

// Active returns the in-progress session for a quiz, if any.
func (m *Manager) Active(quizID, userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.active[quizID+"/"+userID]
	return s, ok
}

// releaseSession removes a finalized session from the active set. The
// identity check guards against releasing a newer session for the same
// key.
func (m *Manager) releaseSession(key string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[key] == s {
		delete(m.active, key)
	}
}
