package catalog

// Category groups courses by subject area.
type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryDataScience Category = "data-science"
	CategoryDesign      Category = "design"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryDataScience,
		CategoryDesign,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryProgramming:
		return "Programming"
	case CategoryDataScience:
		return "Data Science"
	case CategoryDesign:
		return "Design"
	default:
		return string(c)
	}
}

// Course is a single course in the catalog: an ordered list of lessons
// plus an optional final quiz.
type Course struct {
	ID          string
	Title       string
	Description string
	Category    Category
	PriceCents  int
	Lessons     []Lesson
	Quiz        *Quiz
}

// Lesson is one unit of course content. Free lessons are playable
// without payment regardless of position.
type Lesson struct {
	ID           string
	Title        string
	MediaRef     string
	DurationMins int
	Free         bool
}

// Quiz is a course's final assessment. A zero TimeLimitMinutes means
// untimed; a zero MaxAttempts means unlimited attempts.
type Quiz struct {
	ID               string
	Title            string
	PassingScore     int // 0-100
	TimeLimitMinutes int
	MaxAttempts      int
	Questions        []Question
}

// Question is a single multiple-choice question. The correct option is
// deliberately absent here: scoring is owned by the answer key service,
// not by quiz-taking code.
type Question struct {
	ID      string
	Text    string
	Points  int
	Options []QuestionOption
}

// QuestionOption is one selectable answer.
type QuestionOption struct {
	ID   string
	Text string
}

// HasOption reports whether the question contains the given option ID.
func (q Question) HasOption(optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// TotalPoints returns the sum of all question points.
func (q Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
