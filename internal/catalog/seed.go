package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed content.json
var contentJSON []byte

// Wire types for the embedded content file. The answer key is split off
// during loading so the exported Question type never carries it.
type contentFile struct {
	Courses []contentCourse `json:"courses"`
}

type contentCourse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	PriceCents  int             `json:"price_cents"`
	Lessons     []contentLesson `json:"lessons"`
	Quiz        *contentQuiz    `json:"quiz,omitempty"`
}

type contentLesson struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MediaRef     string `json:"media_ref"`
	DurationMins int    `json:"duration_mins"`
	Free         bool   `json:"free"`
}

type contentQuiz struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	PassingScore     int               `json:"passing_score"`
	TimeLimitMinutes int               `json:"time_limit_minutes"`
	MaxAttempts      int               `json:"max_attempts"`
	Questions        []contentQuestion `json:"questions"`
}

type contentQuestion struct {
	ID             string          `json:"id"`
	Text           string          `json:"text"`
	Points         int             `json:"points"`
	Options        []contentOption `json:"options"`
	AnswerOptionID string          `json:"answer_option_id"`
}

type contentOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func init() {
	ct, err := loadContent(contentJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded content: %v", err))
	}
	c = ct
}

// loadContent validates and parses raw content JSON into a catalog.
func loadContent(raw []byte) (*catalog, error) {
	if err := validateContentJSON(raw); err != nil {
		return nil, err
	}

	var file contentFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	courses := make([]Course, 0, len(file.Courses))
	answerKey := make(map[string]map[string]string)

	for _, cc := range file.Courses {
		course := Course{
			ID:          cc.ID,
			Title:       cc.Title,
			Description: cc.Description,
			Category:    Category(cc.Category),
			PriceCents:  cc.PriceCents,
		}
		for _, cl := range cc.Lessons {
			course.Lessons = append(course.Lessons, Lesson(cl))
		}
		if cc.Quiz != nil {
			quiz := Quiz{
				ID:               cc.Quiz.ID,
				Title:            cc.Quiz.Title,
				PassingScore:     cc.Quiz.PassingScore,
				TimeLimitMinutes: cc.Quiz.TimeLimitMinutes,
				MaxAttempts:      cc.Quiz.MaxAttempts,
			}
			key := make(map[string]string, len(cc.Quiz.Questions))
			for _, cq := range cc.Quiz.Questions {
				question := Question{
					ID:     cq.ID,
					Text:   cq.Text,
					Points: cq.Points,
				}
				for _, co := range cq.Options {
					question.Options = append(question.Options, QuestionOption(co))
				}
				quiz.Questions = append(quiz.Questions, question)
				key[cq.ID] = cq.AnswerOptionID
			}
			course.Quiz = &quiz
			answerKey[quiz.ID] = key
		}
		courses = append(courses, course)
	}

	if err := validateCourses(courses, answerKey); err != nil {
		return nil, err
	}

	return buildCatalog(courses, answerKey), nil
}
