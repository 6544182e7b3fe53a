// Package access decides which lessons a learner may open.
package access

import (
	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/progress"
)

// Enrollment is the slice of enrollment state the gate needs.
type Enrollment struct {
	Paid bool
}

// IsAccessible reports whether the lesson at lessonIndex may be opened.
// The first lesson is always open. A later lesson opens when the
// enrollment is paid, the lesson itself is free, or the previous lesson
// is completed. Missing progress data counts as not completed, so the
// gate fails closed.
func IsAccessible(lessonIndex int, lessons []catalog.Lesson, enr Enrollment, snap progress.Snapshot) bool {
	if lessonIndex < 0 || lessonIndex >= len(lessons) {
		return false
	}
	if lessonIndex == 0 {
		return true
	}
	if enr.Paid || lessons[lessonIndex].Free {
		return true
	}
	done, known := snap.LessonCompleted(lessons[lessonIndex-1].ID)
	return known && done
}

// Accessibility evaluates the gate for every lesson in order.
func Accessibility(lessons []catalog.Lesson, enr Enrollment, snap progress.Snapshot) []bool {
	out := make([]bool, len(lessons))
	for i := range lessons {
		out[i] = IsAccessible(i, lessons, enr, snap)
	}
	return out
}
