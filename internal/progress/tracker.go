package progress

import (
	"context"
	"fmt"
	"sync"
)

// Store persists per-lesson completion for an enrollment.
type Store interface {
	// FetchProgress returns the set of completed lesson IDs.
	FetchProgress(ctx context.Context, enrollmentID string) (map[string]bool, error)
	// MarkCompleted records a lesson as completed. Repeated calls for the
	// same lesson are no-ops.
	MarkCompleted(ctx context.Context, enrollmentID, lessonID string) error
}

// Snapshot is a derived view of course progress at a point in time.
type Snapshot struct {
	EnrollmentID     string
	TotalLessons     int
	CompletedLessons int
	completed        map[string]completion
}

type completion int

const (
	completionUnknown completion = iota
	completionIncomplete
	completionDone
)

// Percentage returns completion as 0..100. A course with no lessons is 0.
func (s Snapshot) Percentage() float64 {
	if s.TotalLessons == 0 {
		return 0
	}
	return float64(s.CompletedLessons) / float64(s.TotalLessons) * 100
}

// Complete reports whether every lesson is completed.
func (s Snapshot) Complete() bool {
	return s.TotalLessons > 0 && s.CompletedLessons == s.TotalLessons
}

// LessonCompleted reports completion for a lesson. The second return is
// false when the snapshot carries no record for the lesson at all, which
// callers must treat as not completed.
func (s Snapshot) LessonCompleted(lessonID string) (bool, bool) {
	c, ok := s.completed[lessonID]
	if !ok || c == completionUnknown {
		return false, false
	}
	return c == completionDone, true
}

// Compute derives a snapshot from a completion set and the course's
// lesson ID list, in lesson order. Lessons absent from the set are
// incomplete; the set may carry IDs for lessons no longer in the course,
// which are ignored.
func Compute(enrollmentID string, lessonIDs []string, completedSet map[string]bool) Snapshot {
	snap := Snapshot{
		EnrollmentID: enrollmentID,
		TotalLessons: len(lessonIDs),
		completed:    make(map[string]completion, len(lessonIDs)),
	}
	for _, id := range lessonIDs {
		if completedSet[id] {
			snap.completed[id] = completionDone
			snap.CompletedLessons++
		} else {
			snap.completed[id] = completionIncomplete
		}
	}
	return snap
}

// Tracker aggregates lesson completion into course progress, with a
// per-enrollment read cache. Writes for one enrollment are serialized so
// racing completion events cannot lose updates.
type Tracker struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	cache map[string]Snapshot
}

// NewTracker creates a tracker backed by store.
func NewTracker(store Store) *Tracker {
	return &Tracker{
		store: store,
		locks: make(map[string]*sync.Mutex),
		cache: make(map[string]Snapshot),
	}
}

// lockFor returns the single mutex owning writes for an enrollment.
func (t *Tracker) lockFor(enrollmentID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[enrollmentID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[enrollmentID] = l
	}
	return l
}

// Cached returns the last computed snapshot for an enrollment, if any.
// Intended for fast re-display; callers needing fresh data use Recompute.
func (t *Tracker) Cached(enrollmentID string) (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap, ok := t.cache[enrollmentID]
	return snap, ok
}

// Recompute fetches the completion set from the store and derives a fresh
// snapshot, replacing the cache entry.
func (t *Tracker) Recompute(ctx context.Context, enrollmentID string, lessonIDs []string) (Snapshot, error) {
	l := t.lockFor(enrollmentID)
	l.Lock()
	defer l.Unlock()

	completedSet, err := t.store.FetchProgress(ctx, enrollmentID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch progress: %w", err)
	}
	snap := Compute(enrollmentID, lessonIDs, completedSet)

	t.mu.Lock()
	t.cache[enrollmentID] = snap
	t.mu.Unlock()
	return snap, nil
}

// MarkLessonCompleted records a lesson completion write-through: the cache
// is updated optimistically, then the store write runs; if the write fails
// the cache entry is restored to its previous value and the error returned.
func (t *Tracker) MarkLessonCompleted(ctx context.Context, enrollmentID, lessonID string, lessonIDs []string) (Snapshot, error) {
	l := t.lockFor(enrollmentID)
	l.Lock()
	defer l.Unlock()

	t.mu.Lock()
	prev, hadPrev := t.cache[enrollmentID]
	t.mu.Unlock()

	base := prev
	if !hadPrev {
		base = Compute(enrollmentID, lessonIDs, nil)
	}
	updated := withLessonCompleted(base, lessonID)

	t.mu.Lock()
	t.cache[enrollmentID] = updated
	t.mu.Unlock()

	if err := t.store.MarkCompleted(ctx, enrollmentID, lessonID); err != nil {
		t.mu.Lock()
		if hadPrev {
			t.cache[enrollmentID] = prev
		} else {
			delete(t.cache, enrollmentID)
		}
		t.mu.Unlock()
		return Snapshot{}, fmt.Errorf("mark lesson completed: %w", err)
	}
	return updated, nil
}

// withLessonCompleted returns a copy of snap with one lesson marked done.
func withLessonCompleted(snap Snapshot, lessonID string) Snapshot {
	out := Snapshot{
		EnrollmentID: snap.EnrollmentID,
		TotalLessons: snap.TotalLessons,
		completed:    make(map[string]completion, len(snap.completed)),
	}
	for id, c := range snap.completed {
		out.completed[id] = c
	}
	if c, ok := out.completed[lessonID]; ok && c != completionDone {
		out.completed[lessonID] = completionDone
	}
	for _, c := range out.completed {
		if c == completionDone {
			out.CompletedLessons++
		}
	}
	return out
}
