package progress

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

type fakeProgressStore struct {
	mu        sync.Mutex
	completed map[string]map[string]bool // enrollmentID -> lessonID -> done
	fetchErr  error
	markErr   error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{completed: make(map[string]map[string]bool)}
}

func (f *fakeProgressStore) FetchProgress(ctx context.Context, enrollmentID string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make(map[string]bool)
	for id, done := range f.completed[enrollmentID] {
		out[id] = done
	}
	return out, nil
}

func (f *fakeProgressStore) MarkCompleted(ctx context.Context, enrollmentID, lessonID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	if f.completed[enrollmentID] == nil {
		f.completed[enrollmentID] = make(map[string]bool)
	}
	f.completed[enrollmentID][lessonID] = true
	return nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		lessons   []string
		completed map[string]bool
		want      float64
	}{
		{"no lessons", nil, nil, 0},
		{"none completed", []string{"l1", "l2", "l3"}, nil, 0},
		{"one of three", []string{"l1", "l2", "l3"}, map[string]bool{"l1": true}, 33.33},
		{"all completed", []string{"l1", "l2", "l3"}, map[string]bool{"l1": true, "l2": true, "l3": true}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Compute("e1", tt.lessons, tt.completed)
			if got := snap.Percentage(); !almostEqual(got, tt.want) {
				t.Errorf("Percentage() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	if Compute("e1", nil, nil).Complete() {
		t.Error("empty course reported complete")
	}
	snap := Compute("e1", []string{"l1"}, map[string]bool{"l1": true})
	if !snap.Complete() {
		t.Error("fully completed course not reported complete")
	}
}

func TestCompute_IgnoresStaleLessonIDs(t *testing.T) {
	snap := Compute("e1", []string{"l1", "l2"}, map[string]bool{"l1": true, "removed": true})
	if snap.CompletedLessons != 1 {
		t.Errorf("CompletedLessons = %d, want 1", snap.CompletedLessons)
	}
	if _, known := snap.LessonCompleted("removed"); known {
		t.Error("stale lesson ID surfaced in snapshot")
	}
}

func TestLessonCompleted_UnknownLesson(t *testing.T) {
	snap := Compute("e1", []string{"l1"}, nil)
	done, known := snap.LessonCompleted("l9")
	if done || known {
		t.Errorf("LessonCompleted(l9) = (%v, %v), want (false, false)", done, known)
	}
}

func TestRecompute_PopulatesCache(t *testing.T) {
	store := newFakeProgressStore()
	store.completed["e1"] = map[string]bool{"l1": true}
	tr := NewTracker(store)

	snap, err := tr.Recompute(context.Background(), "e1", []string{"l1", "l2"})
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !almostEqual(snap.Percentage(), 50) {
		t.Errorf("Percentage = %.2f, want 50", snap.Percentage())
	}

	cached, ok := tr.Cached("e1")
	if !ok || cached.CompletedLessons != 1 {
		t.Errorf("Cached = %+v ok=%v", cached, ok)
	}
}

func TestMarkLessonCompleted_WriteThrough(t *testing.T) {
	store := newFakeProgressStore()
	tr := NewTracker(store)
	lessons := []string{"l1", "l2"}

	snap, err := tr.MarkLessonCompleted(context.Background(), "e1", "l1", lessons)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if snap.CompletedLessons != 1 {
		t.Errorf("CompletedLessons = %d, want 1", snap.CompletedLessons)
	}
	if !store.completed["e1"]["l1"] {
		t.Error("completion not persisted")
	}

	// Cache reflects the write without a refetch.
	cached, ok := tr.Cached("e1")
	if !ok {
		t.Fatal("no cache entry after write")
	}
	if done, _ := cached.LessonCompleted("l1"); !done {
		t.Error("cache missing optimistic completion")
	}
}

func TestMarkLessonCompleted_RollsBackOnFailure(t *testing.T) {
	store := newFakeProgressStore()
	tr := NewTracker(store)
	lessons := []string{"l1", "l2"}
	ctx := context.Background()

	if _, err := tr.Recompute(ctx, "e1", lessons); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	store.markErr = errors.New("disk full")
	if _, err := tr.MarkLessonCompleted(ctx, "e1", "l1", lessons); err == nil {
		t.Fatal("mark should surface store failure")
	}

	cached, ok := tr.Cached("e1")
	if !ok {
		t.Fatal("cache entry lost on rollback")
	}
	if done, _ := cached.LessonCompleted("l1"); done {
		t.Error("optimistic update not rolled back")
	}
	if cached.CompletedLessons != 0 {
		t.Errorf("CompletedLessons = %d after rollback, want 0", cached.CompletedLessons)
	}
}

func TestMarkLessonCompleted_ConcurrentWritesSerialized(t *testing.T) {
	store := newFakeProgressStore()
	tr := NewTracker(store)
	lessons := []string{"l1", "l2", "l3"}
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, id := range lessons {
		wg.Add(1)
		go func(lessonID string) {
			defer wg.Done()
			if _, err := tr.MarkLessonCompleted(ctx, "e1", lessonID, lessons); err != nil {
				t.Errorf("mark %s: %v", lessonID, err)
			}
		}(id)
	}
	wg.Wait()

	cached, ok := tr.Cached("e1")
	if !ok {
		t.Fatal("no cache entry")
	}
	if cached.CompletedLessons != 3 {
		t.Errorf("CompletedLessons = %d after racing writes, want 3", cached.CompletedLessons)
	}
	if !cached.Complete() {
		t.Error("course not complete after all lessons marked")
	}
}
