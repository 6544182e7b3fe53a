// Package certificate decides when a completion certificate is earned
// and requests issuance at most once per learner and course.
package certificate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/progress"
)

// Certificate is an issued proof of course completion.
type Certificate struct {
	ID         string
	UserID     string
	CourseID   string
	Number     string
	IssuedAt   time.Time
	FinalScore int
	QuizScore  int
	Status     string
}

// Issuer creates and looks up certificates. Issue is idempotent per
// user and course: repeated calls return the existing certificate.
type Issuer interface {
	Issue(ctx context.Context, userID, courseID string, finalScore, quizScore int) (Certificate, error)
	ForUserCourse(ctx context.Context, userID, courseID string) (*Certificate, error)
}

// Decision is the outcome of an eligibility evaluation.
type Decision int

const (
	NotEligible Decision = iota
	Eligible
	AlreadyIssued
)

func (d Decision) String() string {
	switch d {
	case Eligible:
		return "eligible"
	case AlreadyIssued:
		return "already_issued"
	default:
		return "not_eligible"
	}
}

// CourseResult is the completion evidence the evaluator judges: the
// progress snapshot plus, for courses with a quiz, the best attempt.
type CourseResult struct {
	Progress    progress.Snapshot
	HasQuiz     bool
	BestAttempt *attempt.ScoreResult
}

// eligible applies the earning rule: every lesson completed, and for
// courses with a quiz a passing best attempt.
func (r CourseResult) eligible() bool {
	if !r.Progress.Complete() {
		return false
	}
	if !r.HasQuiz {
		return true
	}
	return r.BestAttempt != nil && r.BestAttempt.Passed
}

// Evaluator gates certificate issuance. It keeps a local marker of
// requested (user, course) pairs so bursts of completion events trigger
// a single issuance request, independent of the issuer's own idempotency.
type Evaluator struct {
	issuer Issuer

	mu        sync.Mutex
	requested map[string]bool
}

// NewEvaluator creates an evaluator backed by issuer.
func NewEvaluator(issuer Issuer) *Evaluator {
	return &Evaluator{issuer: issuer, requested: make(map[string]bool)}
}

// Evaluate judges eligibility and, when earned, requests issuance.
// Issuance failures are returned but are never fatal to the learner's
// progress or quiz results; a later evaluation may retry.
func (e *Evaluator) Evaluate(ctx context.Context, userID, courseID string, result CourseResult) (Decision, *Certificate, error) {
	existing, err := e.issuer.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return NotEligible, nil, fmt.Errorf("look up certificate: %w", err)
	}
	if existing != nil {
		return AlreadyIssued, existing, nil
	}

	if !result.eligible() {
		return NotEligible, nil, nil
	}

	key := userID + "|" + courseID
	e.mu.Lock()
	if e.requested[key] {
		e.mu.Unlock()
		return AlreadyIssued, nil, nil
	}
	e.requested[key] = true
	e.mu.Unlock()

	quizScore := 0
	if result.BestAttempt != nil {
		quizScore = result.BestAttempt.Score
	}
	cert, err := e.issuer.Issue(ctx, userID, courseID, int(result.Progress.Percentage()), quizScore)
	if err != nil {
		// Clear the marker so a later qualifying event can retry.
		e.mu.Lock()
		delete(e.requested, key)
		e.mu.Unlock()
		return Eligible, nil, fmt.Errorf("issue certificate: %w", err)
	}
	return Eligible, &cert, nil
}
