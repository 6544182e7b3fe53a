package access

import (
	"testing"

	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/progress"
)

func gateLessons() []catalog.Lesson {
	return []catalog.Lesson{
		{ID: "l1", Title: "Intro"},
		{ID: "l2", Title: "Middle"},
		{ID: "l3", Title: "End"},
	}
}

func snapFor(lessons []catalog.Lesson, completed map[string]bool) progress.Snapshot {
	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return progress.Compute("e1", ids, completed)
}

func TestIsAccessible(t *testing.T) {
	lessons := gateLessons()

	tests := []struct {
		name      string
		index     int
		paid      bool
		free      map[string]bool // lesson ID -> free flag
		completed map[string]bool
		want      bool
	}{
		{"first lesson unpaid", 0, false, nil, nil, true},
		{"first lesson paid", 0, true, nil, nil, true},
		{"second lesson locked by default", 1, false, nil, nil, false},
		{"paid unlocks everything", 2, true, nil, nil, true},
		{"free lesson always open", 2, false, map[string]bool{"l3": true}, nil, true},
		{"previous completed unlocks next", 1, false, nil, map[string]bool{"l1": true}, true},
		{"third stays locked when only first done", 2, false, nil, map[string]bool{"l1": true}, false},
		{"third unlocks when second done", 2, false, nil, map[string]bool{"l2": true}, true},
		{"index out of range", 3, true, nil, nil, false},
		{"negative index", -1, true, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := gateLessons()
			for i := range ls {
				ls[i].Free = tt.free[ls[i].ID]
			}
			got := IsAccessible(tt.index, ls, Enrollment{Paid: tt.paid}, snapFor(lessons, tt.completed))
			if got != tt.want {
				t.Errorf("IsAccessible(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

// A snapshot that carries no record for the previous lesson locks the
// next one, even if the store might actually hold a completion.
func TestIsAccessible_MissingProgressFailsClosed(t *testing.T) {
	lessons := gateLessons()
	empty := progress.Snapshot{}

	if IsAccessible(1, lessons, Enrollment{}, empty) {
		t.Error("lesson unlocked on missing progress data")
	}
	if !IsAccessible(0, lessons, Enrollment{}, empty) {
		t.Error("first lesson locked on missing progress data")
	}
}

func TestAccessibility(t *testing.T) {
	lessons := gateLessons()
	snap := snapFor(lessons, map[string]bool{"l1": true})

	got := Accessibility(lessons, Enrollment{}, snap)
	want := []bool{true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Accessibility[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
