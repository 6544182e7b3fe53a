package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// catalog holds the course content with precomputed indexes.
type catalog struct {
	courses      []Course
	byID         map[string]*Course
	byCategory   map[Category][]Course
	quizByCourse map[string]*Quiz
	quizByID     map[string]*Quiz
	lessonIndex  map[string]map[string]int // courseID -> lessonID -> position
	answerKey    map[string]map[string]string
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from parsed content.
func buildCatalog(courses []Course, answerKey map[string]map[string]string) *catalog {
	ct := &catalog{
		courses:      courses,
		byID:         make(map[string]*Course, len(courses)),
		byCategory:   make(map[Category][]Course),
		quizByCourse: make(map[string]*Quiz, len(courses)),
		quizByID:     make(map[string]*Quiz, len(courses)),
		lessonIndex:  make(map[string]map[string]int, len(courses)),
		answerKey:    answerKey,
	}

	for i := range ct.courses {
		course := &ct.courses[i]
		ct.byID[course.ID] = course
		if course.Quiz != nil {
			ct.quizByCourse[course.ID] = course.Quiz
			ct.quizByID[course.Quiz.ID] = course.Quiz
		}

		idx := make(map[string]int, len(course.Lessons))
		for pos, lesson := range course.Lessons {
			idx[lesson.ID] = pos
		}
		ct.lessonIndex[course.ID] = idx
	}

	// Group by category in catalog order.
	groups := make(map[Category][]Course)
	for _, course := range ct.courses {
		groups[course.Category] = append(groups[course.Category], course)
	}
	for cat, group := range groups {
		sorted := make([]Course, len(group))
		copy(sorted, group)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
		ct.byCategory[cat] = sorted
	}

	return ct
}

// Courses returns all courses in catalog order.
func Courses() []Course {
	return slices.Clone(c.courses)
}

// CourseByID returns a course by ID, or an error if not found.
func CourseByID(id string) (Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("course not found: %q", id)
	}
	return *course, nil
}

// ByCategory returns all courses in a category, ordered by title.
func ByCategory(cat Category) []Course {
	return slices.Clone(c.byCategory[cat])
}

// Lessons returns the ordered lesson list for a course.
func Lessons(courseID string) ([]Lesson, error) {
	course, ok := c.byID[courseID]
	if !ok {
		return nil, fmt.Errorf("course not found: %q", courseID)
	}
	return slices.Clone(course.Lessons), nil
}

// LessonPosition returns the zero-based position of a lesson within its
// course, or -1 if the lesson does not belong to the course.
func LessonPosition(courseID, lessonID string) int {
	idx, ok := c.lessonIndex[courseID]
	if !ok {
		return -1
	}
	pos, ok := idx[lessonID]
	if !ok {
		return -1
	}
	return pos
}

// QuizForCourse returns the final quiz for a course, or (nil, nil) when
// the course has no quiz.
func QuizForCourse(courseID string) (*Quiz, error) {
	if _, ok := c.byID[courseID]; !ok {
		return nil, fmt.Errorf("course not found: %q", courseID)
	}
	quiz, ok := c.quizByCourse[courseID]
	if !ok {
		return nil, nil
	}
	cloned := *quiz
	cloned.Questions = slices.Clone(quiz.Questions)
	return &cloned, nil
}

// QuizByID returns a quiz by its own ID, or an error if not found.
func QuizByID(id string) (Quiz, error) {
	quiz, ok := c.quizByID[id]
	if !ok {
		return Quiz{}, fmt.Errorf("quiz not found: %q", id)
	}
	cloned := *quiz
	cloned.Questions = slices.Clone(quiz.Questions)
	return cloned, nil
}

// CorrectOption returns the correct option ID for a question. This is
// the answer key consulted by the scorer; quiz-taking code never calls it.
func CorrectOption(quizID, questionID string) (string, bool) {
	key, ok := c.answerKey[quizID]
	if !ok {
		return "", false
	}
	optionID, ok := key[questionID]
	return optionID, ok
}

// Validate checks the loaded catalog for structural issues.
func Validate() error {
	return validateCourses(c.courses, c.answerKey)
}
