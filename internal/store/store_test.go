package store

import (
	"context"
	"testing"

	"github.com/abhisek/coursely/internal/attempt"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()
	quizID := "go-fundamentals-final"

	n, err := repo.PriorAttempts(ctx, quizID, "u1")
	if err != nil {
		t.Fatalf("prior attempts: %v", err)
	}
	if n != 0 {
		t.Errorf("prior attempts = %d, want 0", n)
	}

	attemptID, err := repo.StartAttempt(ctx, quizID, "u1", 1)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if attemptID == "" {
		t.Fatal("empty attempt ID")
	}

	n, err = repo.PriorAttempts(ctx, quizID, "u1")
	if err != nil {
		t.Fatalf("prior attempts: %v", err)
	}
	if n != 1 {
		t.Errorf("prior attempts = %d, want 1", n)
	}

	// Four correct answers out of five at 10 points each: 80, passing.
	answers := map[string]string{
		"q-zero-value":     "b",
		"q-error-handling": "c",
		"q-goroutine":      "a",
		"q-slice-grow":     "b",
		"q-channel-dir":    "d", // wrong
	}
	result, err := repo.CompleteAttempt(ctx, attemptID, answers, false)
	if err != nil {
		t.Fatalf("complete attempt: %v", err)
	}
	if result.Score != 80 || !result.Passed {
		t.Errorf("result = %+v, want score 80 passed", result)
	}

	history, err := repo.History(ctx, quizID, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	rec := history[0]
	if rec.Status != attempt.StatusCompleted.String() || rec.Score != 80 || !rec.Passed {
		t.Errorf("history record = %+v", rec)
	}
	if rec.CompletedAt == nil {
		t.Error("completed attempt missing completion time")
	}
}

func TestCompleteAttempt_Idempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attemptID, err := repo.StartAttempt(ctx, "go-fundamentals-final", "u1", 1)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	answers := map[string]string{"q-zero-value": "b"}
	first, err := repo.CompleteAttempt(ctx, attemptID, answers, false)
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}

	// A replayed completion, even with different answers, must not
	// rescore or change the stored outcome.
	second, err := repo.CompleteAttempt(ctx, attemptID, map[string]string{
		"q-zero-value":     "b",
		"q-error-handling": "c",
	}, true)
	if err != nil {
		t.Fatalf("replayed complete: %v", err)
	}
	if second != first {
		t.Errorf("replayed result = %+v, want %+v", second, first)
	}
}

func TestCompleteAttempt_TimedOutEmptyLedger(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attemptID, err := repo.StartAttempt(ctx, "go-fundamentals-final", "u1", 1)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	result, err := repo.CompleteAttempt(ctx, attemptID, nil, true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("result = %+v, want score 0 not passed", result)
	}

	history, err := repo.History(ctx, "go-fundamentals-final", "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history[0].Status != attempt.StatusTimedOut.String() {
		t.Errorf("status = %s, want timed_out", history[0].Status)
	}
}

func TestSubmitAnswer_LastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attemptID, err := repo.StartAttempt(ctx, "go-fundamentals-final", "u1", 1)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	if err := repo.SubmitAnswer(ctx, attemptID, "q-zero-value", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := repo.SubmitAnswer(ctx, attemptID, "q-zero-value", "b"); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	rows, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("answer rows = %d, want 1", len(rows))
	}
	if rows[0].OptionID != "b" {
		t.Errorf("stored option = %q, want b", rows[0].OptionID)
	}
}

func TestBestAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()
	quizID := "sql-for-analysis-final"

	best, err := repo.BestAttempt(ctx, quizID, "u1")
	if err != nil {
		t.Fatalf("best attempt: %v", err)
	}
	if best != nil {
		t.Errorf("best = %+v before any attempt, want nil", best)
	}

	// First attempt fails, second passes; best must be the pass.
	a1, _ := repo.StartAttempt(ctx, quizID, "u1", 1)
	if _, err := repo.CompleteAttempt(ctx, a1, map[string]string{"q-filter": "b"}, false); err != nil {
		t.Fatalf("complete first: %v", err)
	}
	a2, _ := repo.StartAttempt(ctx, quizID, "u1", 2)
	if _, err := repo.CompleteAttempt(ctx, a2, map[string]string{
		"q-filter":    "b",
		"q-join-kind": "c",
	}, false); err != nil {
		t.Fatalf("complete second: %v", err)
	}

	best, err = repo.BestAttempt(ctx, quizID, "u1")
	if err != nil {
		t.Fatalf("best attempt: %v", err)
	}
	if best == nil || !best.Passed || best.Score != 67 {
		t.Errorf("best = %+v, want passed with score 67", best)
	}
}

func TestProgressRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	completed, err := repo.FetchProgress(ctx, "e1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(completed) != 0 {
		t.Errorf("completed = %v, want empty", completed)
	}

	if err := repo.MarkCompleted(ctx, "e1", "go-setup"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// Repeat marks are no-ops.
	if err := repo.MarkCompleted(ctx, "e1", "go-setup"); err != nil {
		t.Fatalf("repeat mark: %v", err)
	}

	completed, err = repo.FetchProgress(ctx, "e1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(completed) != 1 || !completed["go-setup"] {
		t.Errorf("completed = %v, want {go-setup}", completed)
	}

	// Progress is scoped per enrollment.
	other, err := repo.FetchProgress(ctx, "e2")
	if err != nil {
		t.Fatalf("fetch e2: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("e2 completed = %v, want empty", other)
	}
}

func TestEnrollmentRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.EnrollmentRepo()
	ctx := context.Background()

	rec, err := repo.Enroll(ctx, "u1", "go-fundamentals", false)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if rec.Paid {
		t.Error("free enrollment marked paid")
	}

	// Re-enrolling upgrades to paid but keeps the same enrollment.
	upgraded, err := repo.Enroll(ctx, "u1", "go-fundamentals", true)
	if err != nil {
		t.Fatalf("re-enroll: %v", err)
	}
	if upgraded.EnrollmentID != rec.EnrollmentID {
		t.Errorf("enrollment ID changed: %s -> %s", rec.EnrollmentID, upgraded.EnrollmentID)
	}
	if !upgraded.Paid {
		t.Error("enrollment not upgraded to paid")
	}

	// Paid never downgrades.
	again, err := repo.Enroll(ctx, "u1", "go-fundamentals", false)
	if err != nil {
		t.Fatalf("third enroll: %v", err)
	}
	if !again.Paid {
		t.Error("paid enrollment downgraded")
	}

	missing, err := repo.ForUserCourse(ctx, "u1", "ui-design-basics")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if missing != nil {
		t.Errorf("enrollment = %+v, want nil", missing)
	}

	list, err := repo.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list length = %d, want 1", len(list))
	}
}

func TestCertificateRepo_IdempotentIssue(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertificateRepo()
	ctx := context.Background()

	cert, err := repo.Issue(ctx, "u1", "go-fundamentals", 100, 80)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if cert.Number == "" || cert.FinalScore != 100 || cert.QuizScore != 80 {
		t.Errorf("cert = %+v", cert)
	}

	again, err := repo.Issue(ctx, "u1", "go-fundamentals", 90, 70)
	if err != nil {
		t.Fatalf("re-issue: %v", err)
	}
	if again.Number != cert.Number {
		t.Errorf("re-issue produced a new certificate: %s vs %s", again.Number, cert.Number)
	}

	list, err := repo.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("certificates = %d, want 1", len(list))
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	attemptID, err := s.AttemptRepo().StartAttempt(ctx, "go-fundamentals-final", "u1", 1)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if err := s.AttemptRepo().SubmitAnswer(ctx, attemptID, "q-zero-value", "b"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.EnrollmentRepo().Enroll(ctx, "u1", "go-fundamentals", true); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := s.ProgressRepo().MarkCompleted(ctx, "e1", "go-setup"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, err := s.CertificateRepo().Issue(ctx, "u1", "go-fundamentals", 100, 80); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, err := s.AttemptRepo().PriorAttempts(ctx, "go-fundamentals-final", "u1")
	if err != nil {
		t.Fatalf("prior attempts: %v", err)
	}
	if n != 0 {
		t.Errorf("attempts after reset = %d, want 0", n)
	}
	enr, err := s.EnrollmentRepo().ForUserCourse(ctx, "u1", "go-fundamentals")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if enr != nil {
		t.Error("enrollment survived reset")
	}
	certs, err := s.CertificateRepo().ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list certs: %v", err)
	}
	if len(certs) != 0 {
		t.Error("certificates survived reset")
	}
}
