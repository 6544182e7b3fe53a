package catalog

import (
	"testing"
)

func TestEmbeddedContentValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("embedded catalog invalid: %v", err)
	}
	if len(Courses()) == 0 {
		t.Fatal("embedded catalog has no courses")
	}
}

func TestCourseByID(t *testing.T) {
	course, err := CourseByID("go-fundamentals")
	if err != nil {
		t.Fatalf("CourseByID: %v", err)
	}
	if course.Title == "" {
		t.Error("course has empty title")
	}
	if len(course.Lessons) == 0 {
		t.Error("course has no lessons")
	}

	if _, err := CourseByID("no-such-course"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestByCategoryOrderedByTitle(t *testing.T) {
	for _, cat := range AllCategories() {
		courses := ByCategory(cat)
		for i := 1; i < len(courses); i++ {
			if courses[i-1].Title > courses[i].Title {
				t.Errorf("category %s not ordered by title: %q before %q",
					cat, courses[i-1].Title, courses[i].Title)
			}
		}
	}
}

func TestLessonPosition(t *testing.T) {
	course, err := CourseByID("go-fundamentals")
	if err != nil {
		t.Fatalf("CourseByID: %v", err)
	}

	for want, lesson := range course.Lessons {
		if got := LessonPosition(course.ID, lesson.ID); got != want {
			t.Errorf("LessonPosition(%s) = %d, want %d", lesson.ID, got, want)
		}
	}

	if got := LessonPosition(course.ID, "no-such-lesson"); got != -1 {
		t.Errorf("unknown lesson position = %d, want -1", got)
	}
	if got := LessonPosition("no-such-course", "x"); got != -1 {
		t.Errorf("unknown course position = %d, want -1", got)
	}
}

func TestQuizForCourse(t *testing.T) {
	quiz, err := QuizForCourse("go-fundamentals")
	if err != nil {
		t.Fatalf("QuizForCourse: %v", err)
	}
	if quiz == nil {
		t.Fatal("expected a quiz for go-fundamentals")
	}
	if quiz.PassingScore <= 0 || quiz.PassingScore > 100 {
		t.Errorf("passing score %d out of range", quiz.PassingScore)
	}

	// Quizless course returns nil without error.
	quiz, err = QuizForCourse("ui-design-basics")
	if err != nil {
		t.Fatalf("QuizForCourse: %v", err)
	}
	if quiz != nil {
		t.Error("expected no quiz for ui-design-basics")
	}

	if _, err := QuizForCourse("no-such-course"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestAnswerKeyNeverOnQuestions(t *testing.T) {
	// The answer key lives behind CorrectOption only; every correct
	// option must still be a real option on its question.
	for _, course := range Courses() {
		if course.Quiz == nil {
			continue
		}
		for _, q := range course.Quiz.Questions {
			answer, ok := CorrectOption(course.Quiz.ID, q.ID)
			if !ok {
				t.Errorf("quiz %s question %s has no answer key entry", course.Quiz.ID, q.ID)
				continue
			}
			if !q.HasOption(answer) {
				t.Errorf("quiz %s question %s: answer %q is not an option", course.Quiz.ID, q.ID, answer)
			}
		}
	}
}

func TestCorrectOptionUnknown(t *testing.T) {
	if _, ok := CorrectOption("no-such-quiz", "q"); ok {
		t.Error("expected no answer for unknown quiz")
	}
	if _, ok := CorrectOption("go-fundamentals-final", "no-such-question"); ok {
		t.Error("expected no answer for unknown question")
	}
}

func TestTotalPoints(t *testing.T) {
	quiz, err := QuizByID("go-fundamentals-final")
	if err != nil {
		t.Fatalf("QuizByID: %v", err)
	}
	var want int
	for _, q := range quiz.Questions {
		want += q.Points
	}
	if got := quiz.TotalPoints(); got != want {
		t.Errorf("TotalPoints() = %d, want %d", got, want)
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	a := Courses()
	a[0].Title = "mutated"
	b := Courses()
	if b[0].Title == "mutated" {
		t.Error("Courses() exposes internal state")
	}
}
