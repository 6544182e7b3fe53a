package certificate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/progress"
)

type fakeIssuer struct {
	mu       sync.Mutex
	issued   map[string]Certificate
	issueErr error
	calls    int
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{issued: make(map[string]Certificate)}
}

func (f *fakeIssuer) Issue(ctx context.Context, userID, courseID string, finalScore, quizScore int) (Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.issueErr != nil {
		return Certificate{}, f.issueErr
	}
	key := userID + "|" + courseID
	if cert, ok := f.issued[key]; ok {
		return cert, nil
	}
	cert := Certificate{
		ID:         key,
		UserID:     userID,
		CourseID:   courseID,
		Number:     "CERT-0001",
		IssuedAt:   time.Now(),
		FinalScore: finalScore,
		QuizScore:  quizScore,
		Status:     "issued",
	}
	f.issued[key] = cert
	return cert, nil
}

func (f *fakeIssuer) ForUserCourse(ctx context.Context, userID, courseID string) (*Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cert, ok := f.issued[userID+"|"+courseID]; ok {
		return &cert, nil
	}
	return nil, nil
}

func (f *fakeIssuer) issueCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fullProgress() progress.Snapshot {
	return progress.Compute("e1", []string{"l1", "l2"}, map[string]bool{"l1": true, "l2": true})
}

func partialProgress() progress.Snapshot {
	return progress.Compute("e1", []string{"l1", "l2"}, map[string]bool{"l1": true})
}

func TestEvaluate_NotEligibleUntilProgressComplete(t *testing.T) {
	e := NewEvaluator(newFakeIssuer())

	d, cert, err := e.Evaluate(context.Background(), "u1", "c1", CourseResult{Progress: partialProgress()})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if d != NotEligible || cert != nil {
		t.Errorf("decision = %s cert = %v, want not_eligible and no cert", d, cert)
	}
}

func TestEvaluate_QuizCourseNeedsPassingAttempt(t *testing.T) {
	tests := []struct {
		name string
		best *attempt.ScoreResult
		want Decision
	}{
		{"no attempt", nil, NotEligible},
		{"failed attempt", &attempt.ScoreResult{Score: 40, Passed: false}, NotEligible},
		{"passed attempt", &attempt.ScoreResult{Score: 80, Passed: true}, Eligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(newFakeIssuer())
			result := CourseResult{Progress: fullProgress(), HasQuiz: true, BestAttempt: tt.best}
			d, _, err := e.Evaluate(context.Background(), "u1", "c1", result)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if d != tt.want {
				t.Errorf("decision = %s, want %s", d, tt.want)
			}
		})
	}
}

func TestEvaluate_QuizlessCourseEligibleOnProgressAlone(t *testing.T) {
	issuer := newFakeIssuer()
	e := NewEvaluator(issuer)

	d, cert, err := e.Evaluate(context.Background(), "u1", "c1", CourseResult{Progress: fullProgress()})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if d != Eligible || cert == nil {
		t.Fatalf("decision = %s cert = %v, want eligible with cert", d, cert)
	}
	if cert.FinalScore != 100 {
		t.Errorf("FinalScore = %d, want 100", cert.FinalScore)
	}
}

func TestEvaluate_ReportsAlreadyIssued(t *testing.T) {
	issuer := newFakeIssuer()
	e := NewEvaluator(issuer)
	ctx := context.Background()
	result := CourseResult{Progress: fullProgress()}

	if _, _, err := e.Evaluate(ctx, "u1", "c1", result); err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	d, cert, err := e.Evaluate(ctx, "u1", "c1", result)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if d != AlreadyIssued || cert == nil {
		t.Errorf("decision = %s cert = %v, want already_issued with existing cert", d, cert)
	}
	if issuer.issueCalls() != 1 {
		t.Errorf("issue calls = %d, want 1", issuer.issueCalls())
	}
}

// Several completion events can arrive nearly at once after the
// qualifying transition; only one issuance request may go out.
func TestEvaluate_RapidBurstIssuesOnce(t *testing.T) {
	issuer := newFakeIssuer()
	e := NewEvaluator(issuer)
	result := CourseResult{Progress: fullProgress()}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := e.Evaluate(context.Background(), "u1", "c1", result); err != nil {
				t.Errorf("evaluate: %v", err)
			}
		}()
	}
	wg.Wait()

	if issuer.issueCalls() != 1 {
		t.Errorf("issue calls = %d, want exactly 1", issuer.issueCalls())
	}
}

func TestEvaluate_IssuanceFailureAllowsRetry(t *testing.T) {
	issuer := newFakeIssuer()
	issuer.issueErr = errors.New("issuer offline")
	e := NewEvaluator(issuer)
	ctx := context.Background()
	result := CourseResult{Progress: fullProgress()}

	d, cert, err := e.Evaluate(ctx, "u1", "c1", result)
	if err == nil {
		t.Fatal("evaluate should surface issuance failure")
	}
	if d != Eligible || cert != nil {
		t.Errorf("decision = %s cert = %v, want eligible with no cert", d, cert)
	}

	// The failure cleared the local marker, so a later event retries.
	issuer.mu.Lock()
	issuer.issueErr = nil
	issuer.mu.Unlock()

	d, cert, err = e.Evaluate(ctx, "u1", "c1", result)
	if err != nil {
		t.Fatalf("retry evaluate: %v", err)
	}
	if d != Eligible || cert == nil {
		t.Errorf("retry decision = %s cert = %v, want eligible with cert", d, cert)
	}
}

func TestEvaluate_SeparateCoursesIndependent(t *testing.T) {
	issuer := newFakeIssuer()
	e := NewEvaluator(issuer)
	ctx := context.Background()
	result := CourseResult{Progress: fullProgress()}

	if _, _, err := e.Evaluate(ctx, "u1", "c1", result); err != nil {
		t.Fatalf("evaluate c1: %v", err)
	}
	d, _, err := e.Evaluate(ctx, "u1", "c2", result)
	if err != nil {
		t.Fatalf("evaluate c2: %v", err)
	}
	if d != Eligible {
		t.Errorf("decision for second course = %s, want eligible", d)
	}
	if issuer.issueCalls() != 2 {
		t.Errorf("issue calls = %d, want 2", issuer.issueCalls())
	}
}
